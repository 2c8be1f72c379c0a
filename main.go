package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termstrike/arena"
	"github.com/lixenwraith/termstrike/audio"
	"github.com/lixenwraith/termstrike/component"
	"github.com/lixenwraith/termstrike/engine"
	"github.com/lixenwraith/termstrike/event"
	"github.com/lixenwraith/termstrike/input"
	"github.com/lixenwraith/termstrike/mode"
	"github.com/lixenwraith/termstrike/parameter"
	"github.com/lixenwraith/termstrike/render"
	"github.com/lixenwraith/termstrike/vmath"
)

func main() {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "simulation seed (same seed, same run)")
	modesPath := flag.String("modes", "", "mode config YAML, watched for live changes")
	keymapPath := flag.String("keymap", "", "keymap override YAML")
	flag.Parse()

	if err := run(*seed, *modesPath, *keymapPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(seed uint64, modesPath, keymapPath string) error {
	modes := mode.Builtin()
	if modesPath != "" {
		data, err := os.ReadFile(modesPath)
		if err != nil {
			return fmt.Errorf("read mode config: %w", err)
		}
		modes, err = mode.Load(data)
		if err != nil {
			return err
		}
	}

	keymap := input.DefaultKeyTable()
	if keymapPath != "" {
		data, err := os.ReadFile(keymapPath)
		if err != nil {
			return fmt.Errorf("read keymap: %w", err)
		}
		overrides, err := input.LoadKeyConfig(data)
		if err != nil {
			return err
		}
		keymap.Merge(overrides)
	}

	tscreen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	if err := tscreen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer tscreen.Fini()
	tscreen.HideCursor()

	cfg, ok := chooseMode(tscreen, modes)
	if !ok {
		return nil
	}
	grid, ok := chooseMap(tscreen, cfg, seed)
	if !ok {
		return nil
	}

	return play(tscreen, grid, cfg, seed, modesPath, keymap)
}

// play wires the simulation and runs the game loop until quit
func play(tscreen tcell.Screen, grid *arena.Grid, cfg mode.Mode, seed uint64, modesPath string, keymap *input.KeyTable) error {
	queue := event.NewQueue()
	state, err := engine.NewState(grid, cfg, seed, queue)
	if err != nil {
		return err
	}

	sound := audio.NewService()
	if err := sound.Initialize(); err != nil {
		// A machine without audio still plays
		log.Printf("audio unavailable: %v", err)
	}
	defer sound.Cleanup()

	// Live mode reload: the watcher goroutine parses and stashes, the
	// loop applies on its own goroutine via the ConfigReloaded event
	var reloadMu sync.Mutex
	var reloaded []mode.Mode
	if modesPath != "" {
		watcher, err := mode.Watch(modesPath, queue, func(fresh []mode.Mode) {
			reloadMu.Lock()
			reloaded = fresh
			reloadMu.Unlock()
		})
		if err != nil {
			log.Printf("mode watch unavailable: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	actions := make(chan input.Action, 64)
	go pollInput(tscreen, keymap, actions)

	frame := newFrameRenderer(state, tscreen)
	loop := engine.NewLoop(state, queue, engine.SystemClock{}, actions)
	loop.Render = frame.render
	loop.Handle = func(ev event.Event) {
		if ev.Type == event.ConfigReloaded {
			reloadMu.Lock()
			fresh := reloaded
			reloadMu.Unlock()
			for _, m := range fresh {
				if m.Name == state.Mode().Name {
					state.SetMode(m)
				}
			}
		}
		sound.Handle(ev)
	}

	loop.Run()
	return nil
}

// pollInput forwards translated key events to the game loop. A full
// channel drops the action; stale input is worse than lost input.
func pollInput(tscreen tcell.Screen, keymap *input.KeyTable, actions chan<- input.Action) {
	for {
		ev := tscreen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			tscreen.Sync()
			continue
		}
		if a := keymap.Translate(ev); a != input.ActionNone {
			select {
			case actions <- a:
			default:
			}
		}
	}
}

// frameRenderer owns the per-frame buffers and composes one frame
type frameRenderer struct {
	screen     *render.Screen
	buf        *render.Buffer
	projector  *render.Projector
	compositor *render.Compositor
	sprites    []render.Sprite
}

var enemyStyles = map[component.EnemyKind]tcell.Style{
	component.Grunt:      tcell.StyleDefault.Foreground(tcell.ColorRed),
	component.Shotgunner: tcell.StyleDefault.Foreground(tcell.ColorOrange),
	component.Sniper:     tcell.StyleDefault.Foreground(tcell.ColorPurple),
	component.Boss:       tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
}

var powerupStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)

func newFrameRenderer(state *engine.State, tscreen tcell.Screen) *frameRenderer {
	depth := render.NewDepthBuffer(parameter.ScreenWidth)
	return &frameRenderer{
		screen:     render.NewScreen(tscreen),
		buf:        render.NewBuffer(parameter.ScreenWidth, parameter.ViewportHeight),
		projector:  render.NewProjector(state.Caster(), depth),
		compositor: render.NewCompositor(depth),
	}
}

func (f *frameRenderer) render(s *engine.State) {
	f.buf.Clear()
	f.projector.Project(f.buf, s.Player.Pose)

	f.sprites = f.sprites[:0]
	for _, e := range s.Enemies {
		if !e.Alive() {
			continue
		}
		f.sprites = append(f.sprites, render.Sprite{
			Pos:   e.Pose.Pos,
			Glyph: e.Class().Glyph,
			Style: enemyStyles[e.Kind],
		})
	}
	for _, pu := range s.Powerups {
		if !pu.Active {
			continue
		}
		f.sprites = append(f.sprites, render.Sprite{
			Pos:   pu.Pos,
			Glyph: component.PowerupClassFor(pu.Kind).Glyph,
			Style: powerupStyle,
		})
	}
	f.compositor.Compose(f.buf, s.Player.Pose, f.sprites)

	w := s.Player.Weapon()
	f.screen.Flush(f.buf, render.Status{
		Health:        s.Player.Health,
		Armor:         s.Player.Armor,
		Ammo:          s.Player.Ammo(s.Player.Equipped),
		MagazineSize:  w.MagazineSize,
		UnlimitedAmmo: w.Unlimited(),
		WeaponName:    w.Name,
		Score:         s.Player.Score,
		Wave:          s.Wave(),
		Mode:          s.Mode().Name,
		Paused:        s.Paused(),
		GameOver:      s.Over(),
	})
}

var menuStyles = struct {
	title    tcell.Style
	item     tcell.Style
	selected tcell.Style
	hint     tcell.Style
}{
	title:    tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	item:     tcell.StyleDefault.Foreground(tcell.ColorWhite),
	selected: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow),
	hint:     tcell.StyleDefault.Foreground(tcell.ColorGray),
}

// chooseMode runs the mode selection menu; false means quit
func chooseMode(tscreen tcell.Screen, modes []mode.Mode) (mode.Mode, bool) {
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.Name
	}
	idx := chooseOption(tscreen, "TERMSTRIKE", names)
	if idx < 0 {
		return mode.Mode{}, false
	}
	return modes[idx], true
}

// chooseMap runs the map selection menu; false means quit
func chooseMap(tscreen tcell.Screen, cfg mode.Mode, seed uint64) (*arena.Grid, bool) {
	idx := chooseOption(tscreen, "SELECT MAP", []string{"ARENA", "RANDOM"})
	switch idx {
	case 0:
		return arena.Arena(), true
	case 1:
		// Decorrelate the map from the simulation stream
		mapSeed := vmath.NewFastRand(seed).Next()
		return arena.Generate(arena.Config{
			Width:     parameter.MapWidth,
			Height:    parameter.MapHeight,
			WallCount: cfg.WallCount,
			Seed:      mapSeed,
		}), true
	default:
		return nil, false
	}
}

// chooseOption renders a vertical menu and blocks for a selection.
// Returns the chosen index, or -1 on quit.
func chooseOption(tscreen tcell.Screen, title string, options []string) int {
	selected := 0
	for {
		tscreen.Clear()
		drawText(tscreen, 4, 2, menuStyles.title, title)
		for i, opt := range options {
			style := menuStyles.item
			prefix := "  "
			if i == selected {
				style = menuStyles.selected
				prefix = "> "
			}
			drawText(tscreen, 4, 4+i, style, fmt.Sprintf("%s%d. %s", prefix, i+1, opt))
		}
		drawText(tscreen, 4, 6+len(options), menuStyles.hint, "UP/DOWN select, ENTER confirm, Q quit")
		tscreen.Show()

		ev := tscreen.PollEvent()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			if _, resize := ev.(*tcell.EventResize); resize {
				tscreen.Sync()
			}
			continue
		}
		switch key.Key() {
		case tcell.KeyUp:
			if selected > 0 {
				selected--
			}
		case tcell.KeyDown:
			if selected < len(options)-1 {
				selected++
			}
		case tcell.KeyEnter:
			return selected
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return -1
		case tcell.KeyRune:
			r := key.Rune()
			if r == 'q' || r == 'Q' {
				return -1
			}
			if n := int(r - '1'); n >= 0 && n < len(options) {
				return n
			}
			if r == 'w' || r == 'k' {
				if selected > 0 {
					selected--
				}
			}
			if r == 's' || r == 'j' {
				if selected < len(options)-1 {
					selected++
				}
			}
		}
	}
}

func drawText(tscreen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		tscreen.SetContent(x+i, y, r, nil, style)
	}
}
