// Command chaseterm runs the chase in a terminal. Each cell covers one
// level tile.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/automoto/chaser/assets"
	"github.com/automoto/chaser/config"
	"github.com/automoto/chaser/geom"
	"github.com/automoto/chaser/logging"
	"github.com/automoto/chaser/sim"
	"github.com/automoto/chaser/steering"
	"github.com/gdamore/tcell/v2"
)

// Terminals only report key presses, so a press keeps moving the player for
// this many ticks.
const holdTicks = 8

func main() {
	configPath := flag.String("config", "", "YAML file with config overrides")
	levelName := flag.String("level", "", "embedded level name or path to a .tmx file")
	seed := flag.Int64("seed", 0, "steering random seed (0 keeps the configured seed)")
	logFile := flag.String("log", "", "write logs to this file")
	debug := flag.Bool("debug", false, "draw probes and log at debug level")
	flag.Parse()

	if *logFile != "" {
		if err := logging.Init(logging.Options{File: *logFile, Debug: *debug}); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	defer logging.Sync()

	if err := run(*configPath, *levelName, *seed, *debug); err != nil {
		logging.L().Errorw("chaseterm failed", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, levelName string, seed int64, debug bool) error {
	snapshot := config.Defaults()
	if configPath != "" {
		s, err := config.LoadFile(configPath)
		if err != nil {
			return err
		}
		snapshot = s
	}
	if levelName != "" {
		snapshot.Level.Name = levelName
	}
	if seed != 0 {
		snapshot.Steering.Seed = seed
	}
	snapshot.Debug.ShowProbes = snapshot.Debug.ShowProbes || debug
	config.Apply(snapshot)

	level, err := assets.ResolveLevel(config.Level.Name)
	if err != nil {
		return err
	}
	world := sim.New(level, nil)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	logging.L().Infow("level loaded", "level", level.Name, "enemies", len(level.EnemySpawns), "seed", config.Steering.Seed)

	ticker := time.NewTicker(time.Second / time.Duration(config.C.TPS))
	defer ticker.Stop()

	v := &viewer{screen: screen, world: world, probes: config.Debug.ShowProbes}
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !v.handleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			world.Step(v.direction())
			v.draw()
		}
	}
}

type viewer struct {
	screen tcell.Screen
	world  *sim.World
	probes bool
	dir    geom.Vec
	hold   int
}

// handleKey returns false when the viewer should exit.
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		v.press(geom.Left)
	case tcell.KeyRight:
		v.press(geom.Right)
	case tcell.KeyUp:
		v.press(geom.Up)
	case tcell.KeyDown:
		v.press(geom.Down)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'a':
			v.press(geom.Left)
		case 'd':
			v.press(geom.Right)
		case 'w':
			v.press(geom.Up)
		case 's':
			v.press(geom.Down)
		case ' ':
			v.dir, v.hold = geom.Zero, 0
		case 'r':
			v.world.Respawn()
		case 'p':
			v.probes = !v.probes
		}
	}
	return true
}

func (v *viewer) press(d geom.Vec) {
	v.dir = d
	v.hold = holdTicks
}

func (v *viewer) direction() geom.Vec {
	if v.hold == 0 {
		return geom.Zero
	}
	v.hold--
	return v.dir
}

var (
	wallStyle   = tcell.StyleDefault.Background(tcell.ColorGray)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	enemyStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	probeStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	hitStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

func (v *viewer) draw() {
	s := v.screen
	s.Clear()

	level := v.world.Level
	cols, rows := s.Size()
	rows-- // status line
	if cols <= 0 || rows <= 0 {
		s.Show()
		return
	}
	scale := math.Max(float64(level.Width)/float64(cols), float64(level.Height)/float64(rows))
	scale = math.Max(scale, 1)

	cell := func(p geom.Vec) (int, int) {
		return int(p.X / scale), int(p.Y / scale)
	}

	for _, o := range level.Obstacles {
		x0, y0 := cell(geom.Vec{X: o.X, Y: o.Y})
		x1, y1 := cell(geom.Vec{X: o.Right() - 1, Y: o.Bottom() - 1})
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				s.SetContent(x, y, ' ', nil, wallStyle)
			}
		}
	}

	for _, e := range v.world.Enemies {
		if v.probes && e.Decision.Probe.W > 0 {
			style := probeStyle
			if e.Decision.ProbeHit {
				style = hitStyle
			}
			x, y := cell(e.Decision.Probe.Center())
			s.SetContent(x, y, '.', nil, style)
		}
		x, y := cell(e.Hitbox.Center())
		s.SetContent(x, y, modeGlyph(e.Mode()), nil, enemyStyle)
	}

	px, py := cell(v.world.Player.Hitbox.Center())
	s.SetContent(px, py, '@', nil, playerStyle)

	drawText(s, 0, rows, status(v.world), textStyle)
	s.Show()
}

func modeGlyph(m steering.Mode) rune {
	switch m {
	case steering.WanderUp:
		return '^'
	case steering.WanderDown:
		return 'v'
	case steering.WanderLeft:
		return '<'
	case steering.WanderRight:
		return '>'
	case steering.Following:
		return 'E'
	}
	return 'e'
}

func status(w *sim.World) string {
	counts := w.ModeCounts()
	parts := []string{fmt.Sprintf("%s tick %d", w.Level.Name, w.Ticks)}
	for m := steering.Idle; m <= steering.Following; m++ {
		if n := counts[m]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", m, n))
		}
	}
	parts = append(parts, "wasd/arrows move  r respawn  p probes  q quit")
	return strings.Join(parts, "  ")
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
