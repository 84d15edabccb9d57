package main

import (
	"flag"
	"image"

	"github.com/automoto/chaser/assets"
	"github.com/automoto/chaser/config"
	"github.com/automoto/chaser/fonts"
	"github.com/automoto/chaser/logging"
	"github.com/automoto/chaser/scenes"
	"github.com/automoto/chaser/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Quit() bool
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

type flags struct {
	configPath string
	level      string
	seed       int64
	logFile    string
	debug      bool
}

// apply writes command-line overrides over a loaded snapshot.
func (f flags) apply(s *config.Snapshot) {
	if f.level != "" {
		s.Level.Name = f.level
	}
	if f.seed != 0 {
		s.Steering.Seed = f.seed
	}
	if f.debug {
		s.Debug.ShowHitboxes = true
		s.Debug.ShowProbes = true
		s.Debug.LogDecisions = true
	}
}

func main() {
	var f flags
	flag.StringVar(&f.configPath, "config", "", "YAML file with config overrides; reloaded on change")
	flag.StringVar(&f.level, "level", "", "embedded level name or path to a .tmx file")
	flag.Int64Var(&f.seed, "seed", 0, "steering random seed (0 keeps the configured seed)")
	flag.StringVar(&f.logFile, "log", "", "write logs to this file instead of stderr")
	flag.BoolVar(&f.debug, "debug", false, "enable overlays and debug logging")
	flag.Parse()

	if err := logging.Init(logging.Options{File: f.logFile, Debug: f.debug}); err != nil {
		panic(err)
	}
	defer logging.Sync()
	log := logging.L()

	snapshot := config.Defaults()
	if f.configPath != "" {
		s, err := config.LoadFile(f.configPath)
		if err != nil {
			log.Fatalw("load config", "err", err)
		}
		snapshot = s
	}
	f.apply(&snapshot)
	config.Apply(snapshot)

	level, err := assets.ResolveLevel(config.Level.Name)
	if err != nil {
		log.Fatalw("load level", "err", err)
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.HUDTitleSize); err != nil {
		log.Fatalw("load fonts", "err", err)
	}

	// Initialize persistence; saved settings are applied by the scene
	if err := systems.InitPersistence(); err != nil {
		log.Warnw("settings will not be saved", "err", err)
	}

	opts := []scenes.SceneOption{}
	if f.configPath != "" {
		w, err := config.Watch(f.configPath)
		if err != nil {
			log.Warnw("config hot reload disabled", "err", err)
		} else {
			defer w.Close()
			opts = append(opts, scenes.WithReloads(w.Reloads, f.apply))
		}
	}

	g := &Game{}
	g.ChangeScene(scenes.NewChaseScene(level, opts...))

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalw("run game", "err", err)
	}
}
