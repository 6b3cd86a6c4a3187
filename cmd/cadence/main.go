package main

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/cadence/audio"
	"github.com/lixenwraith/cadence/clock"
	"github.com/lixenwraith/cadence/engine"
	"github.com/lixenwraith/cadence/parameter"
	"github.com/lixenwraith/cadence/render"
)

// 3D view world units; the resolver formulas are identical, only the unit
// system changes
const (
	worldUnit   = 1.0
	worldExtent = 24.0
)

// App owns the clock and the frame configuration. Input mutates both through
// the control surface; the tick handler reads a consistent snapshot, so
// config changes between ticks never require pausing
type App struct {
	screen tcell.Screen
	clk    *clock.Clock
	sched  *engine.Scheduler
	player *audio.Player

	lane  *render.LaneRenderer
	scene *render.SceneRenderer

	mu     sync.Mutex
	cfg    engine.FrameConfig
	view3D bool

	// Leader trigger count from the previous tick, for audio edges.
	// Tick-local state only; frame output never depends on it
	lastLeaderTrigger float64

	quit chan struct{}
}

func main() {
	cfg := loadConfig()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen creation failed: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init failed: %v", err)
	}

	app := &App{
		screen: screen,
		clk:    clock.New(clock.NewMonotonicTimeProvider()),
		player: audio.NewPlayer(cfg.Audio),
		lane:   render.NewLaneRenderer(),
		scene:  render.NewSceneRenderer(),
		cfg:    cfg.Frame,
		view3D: cfg.View3D,
		quit:   make(chan struct{}),
	}
	app.clk.SetVelocity(cfg.Velocity)

	width, height := screen.Size()
	app.applyScreenSize(width, height)

	if cfg.Audio {
		if err := app.player.Init(); err != nil {
			// Non-fatal, the visualizer runs without sound
			log.Printf("audio initialization failed: %v", err)
		}
	}

	app.sched = engine.NewScheduler(time.Second/time.Duration(cfg.FPS), app.tick)
	app.sched.Start()

	go app.inputLoop()

	<-app.quit
	app.sched.Stop()
	screen.Fini()
	os.Exit(0)
}

// applyScreenSize recomputes the viewport extent from the terminal size
func (a *App) applyScreenSize(width, height int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	extent := float64(width - render.GutterWidth)
	if extent < a.cfg.UnitSize {
		extent = a.cfg.UnitSize
	}
	a.cfg.ViewportExtent = extent
}

// tick produces one frame: advance the clock, snapshot the config, compute,
// paint. Runs on the scheduler goroutine only, never reentrant
func (a *App) tick(now time.Time) {
	step := a.clk.Tick()

	a.mu.Lock()
	cfg := a.cfg
	view3D := a.view3D
	a.mu.Unlock()

	if view3D {
		cfg.UnitSize = worldUnit
		cfg.ViewportExtent = worldExtent
	}

	rows := engine.MakeRows(cfg.RowCount)
	result := engine.ComputeFrame(step, rows, cfg)

	a.playTriggerEdge(step)

	width, height := a.screen.Size()
	ctx := render.Context{
		Width:  width,
		Height: height,
		Step:   step,
		Config: cfg,
		Result: &result,
	}

	a.screen.Fill(' ', tcell.StyleDefault.Background(render.BackgroundColor(cfg.Palette)))
	if view3D {
		a.scene.Render(a.screen, ctx)
	} else {
		a.lane.Render(a.screen, ctx)
	}
	a.drawStatus(ctx)
	a.screen.Show()
}

// playTriggerEdge clicks once each time the leader arrives at a new slot
func (a *App) playTriggerEdge(step float64) {
	trigger := engine.ComputePosition(step, 1, 1).Trigger
	if trigger > a.lastLeaderTrigger {
		a.player.PlayTrigger(1)
	}
	a.lastLeaderTrigger = trigger
}

// drawStatus paints the HUD line at the bottom of the screen
func (a *App) drawStatus(ctx render.Context) {
	mode := a.clk.Mode().String()
	if mode == "manual" {
		if a.clk.Playing() {
			mode = "playing"
		} else {
			mode = "paused"
		}
	}

	view := "2d"
	if a.isView3D() {
		view = "3d"
	}

	status := fmt.Sprintf(
		" %s | step %d | vel %.3f | tail %s | rows %d | %s%s%s| q quit",
		mode,
		ctx.Result.LeaderStep,
		a.clk.Velocity(),
		ctx.Config.TailType,
		ctx.Config.RowCount,
		view,
		flag(" wrap", ctx.Config.WrapEnabled),
		flag(" follow", ctx.Config.FollowEnabled),
	)

	style := tcell.StyleDefault.
		Foreground(tcell.ColorGray).
		Background(render.BackgroundColor(ctx.Config.Palette))
	render.DrawText(a.screen, 0, ctx.Height-1, ctx.Width, status, style)
}

func flag(name string, on bool) string {
	if on {
		return name + " "
	}
	return " "
}

func (a *App) isView3D() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view3D
}

// inputLoop translates key events into control calls. It owns all mutation
// of the clock and the frame config
func (a *App) inputLoop() {
	for {
		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			width, height := ev.Size()
			a.applyScreenSize(width, height)
			a.screen.Sync()

		case *tcell.EventKey:
			if a.handleKey(ev) {
				close(a.quit)
				return
			}
		}
	}
}

// handleKey applies one key press; returns true on quit
func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		a.clk.TogglePlayPause()
	case 's':
		a.clk.Step()
	case 'r':
		a.clk.Reset()
	case '+', '=':
		a.clk.SetVelocity(clampFloat(a.clk.Velocity()+0.002,
			parameter.VelocityMin, parameter.VelocityMax))
	case '-', '_':
		a.clk.SetVelocity(clampFloat(a.clk.Velocity()-0.002,
			parameter.VelocityMin, parameter.VelocityMax))
	case 'm':
		a.cycleSyncMode()
	case 'w':
		a.updateConfig(func(cfg *engine.FrameConfig) { cfg.WrapEnabled = !cfg.WrapEnabled })
	case 'f':
		a.updateConfig(func(cfg *engine.FrameConfig) { cfg.FollowEnabled = !cfg.FollowEnabled })
	case 't':
		a.updateConfig(func(cfg *engine.FrameConfig) { cfg.TailType = cfg.TailType.Next() })
	case 'T':
		a.updateConfig(func(cfg *engine.FrameConfig) { cfg.TailEnabled = !cfg.TailEnabled })
	case 'p':
		a.updateConfig(func(cfg *engine.FrameConfig) { cfg.Palette++ })
	case ']':
		a.updateConfig(func(cfg *engine.FrameConfig) {
			cfg.RowCount = clampInt(cfg.RowCount+1, 1, parameter.RowCountMax)
		})
	case '[':
		a.updateConfig(func(cfg *engine.FrameConfig) {
			cfg.RowCount = clampInt(cfg.RowCount-1, 1, parameter.RowCountMax)
		})
	case 'v':
		a.mu.Lock()
		a.view3D = !a.view3D
		a.mu.Unlock()
	case 'a':
		a.toggleAudio()
	}
	return false
}

// cycleSyncMode walks manual -> seconds -> millis -> manual
func (a *App) cycleSyncMode() {
	switch a.clk.Mode() {
	case clock.SyncManual:
		a.clk.SetSyncMode(clock.SyncWallSeconds)
	case clock.SyncWallSeconds:
		a.clk.SetSyncMode(clock.SyncWallMillis)
	default:
		a.clk.SetSyncMode(clock.SyncManual)
	}
}

func (a *App) updateConfig(mutate func(cfg *engine.FrameConfig)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	mutate(&a.cfg)
}

// toggleAudio lazily initializes the speaker on first enable
func (a *App) toggleAudio() {
	if a.player.Enabled() {
		a.player.SetEnabled(false)
		return
	}
	a.player.SetEnabled(true)
	if err := a.player.Init(); err != nil {
		log.Printf("audio initialization failed: %v", err)
	}
}
