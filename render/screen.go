package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termstrike/parameter"
)

// Status is the HUD snapshot drawn above the viewport
type Status struct {
	Health        int
	Armor         int
	Ammo          int
	MagazineSize  int
	UnlimitedAmmo bool
	WeaponName    string
	Score         int
	Wave          int
	Mode          string
	Paused        bool
	GameOver      bool
}

// Screen flushes frame buffers to the terminal and owns the HUD rows.
// The simulation never touches tcell directly.
type Screen struct {
	tscreen tcell.Screen
}

// NewScreen wraps an initialized tcell screen
func NewScreen(tscreen tcell.Screen) *Screen {
	return &Screen{tscreen: tscreen}
}

var (
	hudStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	pausedStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	overStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	controlStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Flush draws the HUD, the frame buffer and any overlays, then shows
// the result. The buffer renders below the status rows.
func (s *Screen) Flush(buf *Buffer, st Status) {
	s.tscreen.Clear()

	ammo := fmt.Sprintf("AMMO: %d/%d", st.Ammo, st.MagazineSize)
	if st.UnlimitedAmmo {
		ammo = "AMMO: --"
	}
	s.print(1, 0, hudStyle, fmt.Sprintf("HP: %d/%d", st.Health, parameter.PlayerMaxHealth))
	s.print(15, 0, hudStyle, fmt.Sprintf("ARMOR: %d", st.Armor))
	s.print(30, 0, hudStyle, ammo)
	s.print(45, 0, hudStyle, fmt.Sprintf("WEAPON: %s", st.WeaponName))
	s.print(1, 1, hudStyle, fmt.Sprintf("SCORE: %d  WAVE: %d", st.Score, st.Wave))
	s.print(45, 1, hudStyle, fmt.Sprintf("MODE: %s", st.Mode))

	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			cell := buf.Get(x, y)
			s.tscreen.SetContent(x, y+parameter.StatusRows, cell.Rune, nil, cell.Style)
		}
	}

	controls := "WASD:Move SPACE:Shoot 1-4:Weapon R:Reload P:Pause Q:Quit"
	s.print((buf.Width()-len(controls))/2, parameter.StatusRows+buf.Height()-1, controlStyle, controls)

	midY := parameter.StatusRows + buf.Height()/2
	if st.Paused {
		s.printCentered(buf.Width(), midY, pausedStyle, "PAUSED")
	}
	if st.GameOver {
		s.printCentered(buf.Width(), midY-1, overStyle, "GAME OVER")
		s.printCentered(buf.Width(), midY, hudStyle, fmt.Sprintf("Final Score: %d", st.Score))
		s.printCentered(buf.Width(), midY+1, hudStyle, fmt.Sprintf("Reached Wave: %d", st.Wave))
	}

	s.tscreen.Show()
}

func (s *Screen) print(x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.tscreen.SetContent(x+i, y, r, nil, style)
	}
}

func (s *Screen) printCentered(width, y int, style tcell.Style, text string) {
	s.print((width-len(text))/2, y, style, text)
}
