package assets

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/automoto/chaser/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="16" tileheight="16" infinite="0" nextlayerid="4" nextobjectid="10">
 <objectgroup id="1" name="Obstacles">
  <object id="1" x="0" y="0" width="160" height="16"/>
  <object id="2" x="64" y="48" width="32" height="16"/>
  <object id="3" x="10" y="10"><point/></object>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="4" x="40" y="100"><point/></object>
  <object id="5" x="140" y="100"><point/></object>
 </objectgroup>
 <objectgroup id="3" name="EnemySpawn">
  <object id="6" x="120" y="40">
   <properties><property name="type" value="Runner"/></properties>
   <point/>
  </object>
  <object id="7" x="20" y="40"><point/></object>
 </objectgroup>
</map>
`

const noSpawnMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="Obstacles">
  <object id="1" x="0" y="0" width="64" height="16"/>
 </objectgroup>
</map>
`

func TestLoadLevel(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testMap)}}

	level, err := LoadLevel(fsys, "levels/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, "test", level.Name)
	assert.Equal(t, 160, level.Width)
	assert.Equal(t, 128, level.Height)
	assert.Equal(t, []geom.Rect{
		geom.NewRect(0, 0, 160, 16),
		geom.NewRect(64, 48, 32, 16),
	}, level.Obstacles, "point objects are not obstacles; order is file order")
	assert.Equal(t, geom.Vec{X: 40, Y: 100}, level.PlayerSpawn, "first spawn wins")
	require.Len(t, level.EnemySpawns, 2)
	assert.Equal(t, EnemySpawn{Pos: geom.Vec{X: 120, Y: 40}, EnemyType: "Runner"}, level.EnemySpawns[0])
	assert.Equal(t, "", level.EnemySpawns[1].EnemyType)
	assert.Equal(t, geom.NewRect(0, 0, 160, 128), level.Bounds())
}

func TestLoadLevelRequiresPlayerSpawn(t *testing.T) {
	fsys := fstest.MapFS{"levels/empty.tmx": {Data: []byte(noSpawnMap)}}

	_, err := LoadLevel(fsys, "levels/empty.tmx")
	assert.True(t, errors.Is(err, ErrNoPlayerSpawn))
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx":      {Data: []byte(testMap)},
		"levels/a.tmx":      {Data: []byte(testMap)},
		"levels/readme.txt": {Data: []byte("not a level")},
	}

	levels, names, err := LoadAllLevels(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, levels, 2)

	_, _, err = LoadAllLevels(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}

func TestEmbeddedLevels(t *testing.T) {
	names := LevelNames()
	require.Contains(t, names, "arena")
	require.Contains(t, names, "maze")

	for _, name := range names {
		level, err := LoadEmbeddedLevel(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, level.Obstacles, name)
		assert.NotEmpty(t, level.EnemySpawns, name)
		for _, o := range level.Obstacles {
			assert.False(t, o.Intersects(geom.CenteredAt(level.PlayerSpawn, 32, 32)), "%s: player spawn inside %v", name, o)
		}
	}

	_, err := LoadEmbeddedLevel("nope")
	assert.True(t, errors.Is(err, ErrLevelNotFound))
}
