package scenes

import (
	"sync"

	"github.com/automoto/chaser/assets"
	cfg "github.com/automoto/chaser/config"
	"github.com/automoto/chaser/logging"
	"github.com/automoto/chaser/steering"
	"github.com/automoto/chaser/systems"
	"github.com/automoto/chaser/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ChaseScene is the single play scene: one level, one player, the level's
// enemies.
type ChaseScene struct {
	ecs     *ecs.ECS
	level   *assets.Level
	rng     steering.Rand
	reloads <-chan cfg.Reload
	onLoad  func(*cfg.Snapshot)
	once    sync.Once
}

// SceneOption configures a ChaseScene.
type SceneOption func(*ChaseScene)

// WithReloads makes the scene apply config reloads from ch on its own tick.
// fix, if set, is run on every reloaded snapshot before it is applied, so
// command-line overrides survive a reload.
func WithReloads(ch <-chan cfg.Reload, fix func(*cfg.Snapshot)) SceneOption {
	return func(cs *ChaseScene) {
		cs.reloads = ch
		cs.onLoad = fix
	}
}

// WithRand replaces the steering random source.
func WithRand(rng steering.Rand) SceneOption {
	return func(cs *ChaseScene) {
		cs.rng = rng
	}
}

func NewChaseScene(level *assets.Level, opts ...SceneOption) *ChaseScene {
	cs := &ChaseScene{level: level}
	for _, opt := range opts {
		opt(cs)
	}
	return cs
}

func (cs *ChaseScene) Update() {
	cs.once.Do(cs.configure)
	cs.drainReloads()
	cs.ecs.Update()
}

func (cs *ChaseScene) Draw(screen *ebiten.Image) {
	if cs.ecs == nil {
		screen.Fill(cfg.UI.BackgroundColor)
		return
	}
	cs.ecs.Draw(screen)
}

// Quit reports whether the player asked to leave.
func (cs *ChaseScene) Quit() bool {
	return cs.ecs != nil && systems.QuitRequested(cs.ecs)
}

func (cs *ChaseScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)

	// Game systems wrapped with pause checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateFades))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawActors)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.HUD, systems.DrawHUD)
	ecs.AddRenderer(cfg.HUD, systems.DrawPause)

	cs.ecs = ecs

	systems.ApplySavedSettings(systems.GetOrCreateSettings(ecs), systems.LoadSettings())

	factory.CreateSteering(ecs, cs.rng)
	factory.CreateLevel(ecs, cs.level)
	factory.CreatePlayer(ecs, cs.level.PlayerSpawn)
	factory.SpawnEnemies(ecs, cs.level)

	logging.L().Infow("level loaded",
		"level", cs.level.Name,
		"obstacles", len(cs.level.Obstacles),
		"enemies", len(cs.level.EnemySpawns),
		"seed", cfg.Steering.Seed,
	)
}

func (cs *ChaseScene) drainReloads() {
	for {
		select {
		case r, ok := <-cs.reloads:
			if !ok {
				cs.reloads = nil
				return
			}
			if r.Err != nil {
				logging.L().Warnw("config reload rejected", "err", r.Err)
				continue
			}
			s := r.Snapshot
			if cs.onLoad != nil {
				cs.onLoad(&s)
			}
			cfg.Apply(s)
			systems.ApplyConfig(cs.ecs)
			logging.L().Infow("config reloaded")
		default:
			return
		}
	}
}
