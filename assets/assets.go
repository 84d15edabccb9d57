// Package assets loads level geometry from Tiled (.tmx) maps.
//
// Only collision and spawn data is read. Obstacles come from rectangle
// objects in the "Obstacles" object group and from every tile in the
// "wg-tiles" layer; they are kept in file order, which is the order
// collisions are resolved in.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/chaser/geom"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed levels/*.tmx
	levelFS embed.FS
)

const levelsDir = "levels"

var (
	ErrLevelNotFound = errors.New("level not found")
	ErrNoPlayerSpawn = errors.New("no player spawn points defined in map")
)

type Level struct {
	Name        string
	Width       int
	Height      int
	Obstacles   []geom.Rect
	PlayerSpawn geom.Vec // Center of the player's render rect
	EnemySpawns []EnemySpawn
}

// EnemySpawn places one enemy. Pos is the center of its render rect.
type EnemySpawn struct {
	Pos       geom.Vec
	EnemyType string // Empty means the configured default type
}

// Bounds returns the level area.
func (l *Level) Bounds() geom.Rect {
	return geom.NewRect(0, 0, float64(l.Width), float64(l.Height))
}

// LoadLevel parses a TMX file from fsys.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	playerSpawns := 0
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Obstacles":
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				level.Obstacles = append(level.Obstacles, geom.NewRect(o.X, o.Y, o.Width, o.Height))
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				if playerSpawns == 0 {
					level.PlayerSpawn = geom.Vec{X: o.X, Y: o.Y}
				}
				playerSpawns++
			}
		case "EnemySpawn":
			for _, o := range og.Objects {
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{
					Pos:       geom.Vec{X: o.X, Y: o.Y},
					EnemyType: o.Properties.GetString("type"),
				})
			}
		}
	}

	// Solid tiles from the wg-tiles layer
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != "wg-tiles" {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				level.Obstacles = append(level.Obstacles, geom.NewRect(float64(x)*tileW, float64(y)*tileH, tileW, tileH))
			}
		}
		break
	}

	if playerSpawns == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoPlayerSpawn)
	}
	return level, nil
}

// LoadAllLevels discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, dir string) (map[string]*Level, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		level, err := LoadLevel(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// LevelNames lists the embedded levels.
func LevelNames() []string {
	matches, _ := fs.Glob(levelFS, levelsDir+"/*.tmx")
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		names = append(names, strings.TrimSuffix(path.Base(p), ".tmx"))
	}
	sort.Strings(names)
	return names
}

// LoadEmbeddedLevel loads one of the levels compiled into the binary.
func LoadEmbeddedLevel(name string) (*Level, error) {
	p := path.Join(levelsDir, name+".tmx")
	if _, err := fs.Stat(levelFS, p); err != nil {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrLevelNotFound, name, strings.Join(LevelNames(), ", "))
	}
	return LoadLevel(levelFS, p)
}

// MustLoadEmbeddedLevel is LoadEmbeddedLevel for levels that ship with the
// binary.
func MustLoadEmbeddedLevel(name string) *Level {
	level, err := LoadEmbeddedLevel(name)
	if err != nil {
		panic(err)
	}
	return level
}

// ResolveLevel loads name as an embedded level, or as a TMX file on disk when
// it ends in ".tmx".
func ResolveLevel(name string) (*Level, error) {
	if strings.HasSuffix(name, ".tmx") {
		return LoadLevel(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	}
	return LoadEmbeddedLevel(name)
}
