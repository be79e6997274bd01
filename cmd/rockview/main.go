// Command rockview animates the falling-rock simulation in the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/rockfall/audio"
	"github.com/lixenwraith/rockfall/logging"
	"github.com/lixenwraith/rockfall/parameter"
	"github.com/lixenwraith/rockfall/render"
	"github.com/lixenwraith/rockfall/status"
	"github.com/lixenwraith/rockfall/tower"
	"github.com/lixenwraith/rockfall/wind"
)

var (
	inputFlag = flag.String("input", "input.txt", "Wind pattern file")
	depthFlag = flag.Int("depth", 0, "Rows of reachable surface in the cycle fingerprint (0 = configured default)")
	muteFlag  = flag.Bool("mute", false, "Disable sound cues")
	debugFlag = flag.Bool("debug", false, "Write logs to "+filepath.Join(parameter.LogDir, parameter.LogFileName))
)

// Viewer owns the screen, the simulator and the sound cues
type Viewer struct {
	screen   tcell.Screen
	sim      *tower.Simulator
	registry *status.Registry
	renderer *render.TowerRenderer
	sound    *audio.SoundManager

	interval  time.Duration
	lastStep  time.Time
	paused    bool
	announced bool
}

// NewViewer wires a simulator to screen; sound may be nil
func NewViewer(screen tcell.Screen, sim *tower.Simulator, sound *audio.SoundManager) *Viewer {
	reg := status.NewRegistry()
	sim.Attach(reg)
	return &Viewer{
		screen:   screen,
		sim:      sim,
		registry: reg,
		renderer: render.NewTowerRenderer(render.DefaultStyles()),
		sound:    sound,
		interval: parameter.ViewerStepInterval,
	}
}

// advance runs one simulation phase and fires cues for what it produced
func (v *Viewer) advance() {
	if v.sim.Step() == tower.PhaseSettled {
		v.settled()
	}
}

// settled fires the cues for a committed rock
func (v *Viewer) settled() {
	v.play(audio.SoundSettle)

	if _, ok := v.sim.FirstCycle(); ok && !v.announced {
		v.announced = true
		v.play(audio.SoundCycle)
	}
}

func (v *Viewer) play(s audio.Sound) {
	if v.sound != nil {
		v.sound.Play(s)
	}
}

// handleInput applies a key; false means quit
func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}

		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			v.paused = !v.paused
		case '+':
			v.interval = max(v.interval/2, parameter.ViewerStepIntervalMin)
		case '-':
			v.interval = min(v.interval*2, parameter.ViewerStepIntervalMax)
		case 'd':
			v.sim.Drop()
			v.settled()
		}

	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// frame collects what the renderer needs
func (v *Viewer) frame() render.Frame {
	rock, falling := v.sim.Falling()
	f := render.Frame{
		Chamber: v.sim.Chamber(),
		Rock:    rock,
		Falling: falling,
		Status:  render.StatusLines(v.registry),
	}

	f.Status = append(f.Status,
		"",
		fmt.Sprintf("next: %s  wind: %d", v.sim.NextShape(), v.sim.WindPhase()),
		fmt.Sprintf("step: %s%s", v.interval, pausedSuffix(v.paused)),
		"space pause  +/- speed  d drop  q quit",
	)

	if c, ok := v.sim.FirstCycle(); ok {
		f.Banner = fmt.Sprintf("cycle: %d rocks add %d rows", c.Period, c.Gain)
	}
	return f
}

func pausedSuffix(paused bool) string {
	if paused {
		return " (paused)"
	}
	return ""
}

// tick runs the phases due since the last step, at most one frame's worth of catch-up
func (v *Viewer) tick(now time.Time) {
	if v.lastStep.IsZero() {
		v.lastStep = now
		v.advance()
		return
	}

	due := int(now.Sub(v.lastStep) / v.interval)
	if due == 0 {
		return
	}
	for range min(due, parameter.ViewerMaxStepsPerFrame) {
		v.advance()
	}
	v.lastStep = now
}

func (v *Viewer) draw() {
	v.screen.Clear()
	v.renderer.Draw(v.screen, v.frame())
	v.screen.Show()
}

func (v *Viewer) run() {
	ticker := time.NewTicker(parameter.ViewerFrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		// A crash here would otherwise leave the terminal in raw mode
		defer func() {
			if r := recover(); r != nil {
				v.screen.Fini()
				fmt.Fprintf(os.Stderr, "\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			if !v.paused {
				v.tick(now)
			}
			v.draw()
		}
	}
}

func loadPattern(path string) (wind.Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	line, _, _ := strings.Cut(string(data), "\n")
	pattern, err := wind.Parse(strings.TrimSpace(line))
	if err != nil {
		return nil, fmt.Errorf("input %s: %w", path, err)
	}
	return pattern, nil
}

func main() {
	flag.Parse()
	os.Exit(execute())
}

// execute runs the viewer and returns its exit status.
// Deferred cleanup runs before main exits.
func execute() int {
	if logFile := logging.Setup(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	pattern, err := loadPattern(*inputFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rockview: %v\n", err)
		return 1
	}

	cfg := tower.LoadConfig()
	if *depthFlag > 0 {
		cfg.SkylineDepth = *depthFlag
	}
	sim, err := tower.NewSimulator(pattern, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rockview: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		return 1
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mROCKVIEW CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	audioCfg := audio.LoadConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the viewer runs silently
		log.Printf("Audio initialization failed: %v", err)
	}

	viewer := NewViewer(screen, sim, sound)
	viewer.run()

	sound.Cleanup()
	screen.Fini()
	return 0
}
