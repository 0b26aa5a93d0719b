package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-chips/internal/core"
	"github.com/vovakirdan/tui-chips/internal/sim"
)

// Glyph is how one tile or entity is drawn.
type Glyph struct {
	Rune  rune
	Color core.Color
}

var terrainGlyphs = map[sim.Terrain]Glyph{
	sim.Blank:         {' ', core.ColorDefault},
	sim.Floor:         {'·', core.ColorDarkGray},
	sim.Wall:          {'█', core.ColorGray},
	sim.BlueLock:      {'▒', core.ColorBrightBlue},
	sim.RedLock:       {'▒', core.ColorBrightRed},
	sim.GreenLock:     {'▒', core.ColorBrightGreen},
	sim.YellowLock:    {'▒', core.ColorBrightYellow},
	sim.Hint:          {'?', core.ColorBrightCyan},
	sim.Exit:          {'◎', core.ColorBrightMagenta},
	sim.Water:         {'≈', core.ColorBlue},
	sim.Fire:          {'▲', core.ColorOrange},
	sim.Dirt:          {'░', core.ColorBrown},
	sim.Gravel:        {'∴', core.ColorGray},
	sim.Ice:           {'░', core.ColorIce},
	sim.IceNW:         {'┌', core.ColorIce},
	sim.IceNE:         {'┐', core.ColorIce},
	sim.IceSW:         {'└', core.ColorIce},
	sim.IceSE:         {'┘', core.ColorIce},
	sim.ForceN:        {'↑', core.ColorGreen},
	sim.ForceW:        {'←', core.ColorGreen},
	sim.ForceS:        {'↓', core.ColorGreen},
	sim.ForceE:        {'→', core.ColorGreen},
	sim.ForceRandom:   {'✣', core.ColorGreen},
	sim.CloneMachine:  {'⊞', core.ColorRed},
	sim.ToggleFloor:   {'□', core.ColorGreen},
	sim.ToggleWall:    {'■', core.ColorGreen},
	sim.PanelN:        {'▔', core.ColorWhite},
	sim.PanelW:        {'▏', core.ColorWhite},
	sim.PanelS:        {'▁', core.ColorWhite},
	sim.PanelE:        {'▕', core.ColorWhite},
	sim.PanelSE:       {'▟', core.ColorWhite},
	sim.HiddenWall:    {'·', core.ColorDarkGray},
	sim.InvisibleWall: {'·', core.ColorDarkGray},
	sim.BlueWall:      {'▓', core.ColorBlue},
	sim.BlueFake:      {'▓', core.ColorBlue},
	sim.GreenButton:   {'●', core.ColorGreen},
	sim.RedButton:     {'●', core.ColorRed},
	sim.BrownButton:   {'●', core.ColorBrown},
	sim.BlueButton:    {'●', core.ColorBlue},
	sim.Teleport:      {'◈', core.ColorBrightCyan},
	sim.BearTrap:      {'⊗', core.ColorBrown},
	sim.RecessedWall:  {'▫', core.ColorGray},
}

var kindGlyphs = map[sim.Kind]Glyph{
	sim.Player:       {'@', core.ColorBrightWhite},
	sim.Chip:         {'$', core.ColorBrightYellow},
	sim.Socket:       {'#', core.ColorBrightYellow},
	sim.Block:        {'▣', core.ColorBrown},
	sim.Flippers:     {'f', core.ColorBlue},
	sim.FireBoots:    {'f', core.ColorRed},
	sim.IceSkates:    {'f', core.ColorIce},
	sim.SuctionBoots: {'f', core.ColorGreen},
	sim.BlueKey:      {'k', core.ColorBrightBlue},
	sim.RedKey:       {'k', core.ColorBrightRed},
	sim.GreenKey:     {'k', core.ColorBrightGreen},
	sim.YellowKey:    {'k', core.ColorBrightYellow},
	sim.Thief:        {'T', core.ColorMagenta},
	sim.Bomb:         {'ó', core.ColorRed},
	sim.Bug:          {'b', core.ColorBrightRed},
	sim.FireBall:     {'*', core.ColorOrange},
	sim.PinkBall:     {'o', core.ColorBrightMagenta},
	sim.Tank:         {'t', core.ColorBrightBlue},
	sim.Glider:       {'g', core.ColorCyan},
	sim.Teeth:        {'m', core.ColorBrightRed},
	sim.Walker:       {'w', core.ColorYellow},
	sim.Blob:         {'~', core.ColorBrightGreen},
	sim.Paramecium:   {'p', core.ColorMagenta},
}

// TerrainGlyph returns how a terrain is drawn.
func TerrainGlyph(t sim.Terrain) Glyph {
	if g, ok := terrainGlyphs[t]; ok {
		return g
	}
	return Glyph{'?', core.ColorRed}
}

// EntityGlyph returns how an entity is drawn. The Player's glyph shows its
// facing.
func EntityGlyph(e *sim.Entity) Glyph {
	g, ok := kindGlyphs[e.Kind]
	if !ok {
		return Glyph{'!', core.ColorRed}
	}
	if e.Kind == sim.Player {
		switch e.FaceDir {
		case core.DirUp:
			g.Rune = '▲'
		case core.DirLeft:
			g.Rune = '◀'
		case core.DirDown:
			g.Rune = '▼'
		case core.DirRight:
			g.Rune = '▶'
		}
	}
	return g
}

// Viewport returns the part of the field shown in a w×h board area,
// centered on the Player when there is one.
func Viewport(g *sim.Game, w, h int) core.Rect {
	w = min(w, g.Field.Width)
	h = min(h, g.Field.Height)
	center := core.V(g.Field.Width/2, g.Field.Height/2)
	if p, ok := g.Player(); ok {
		center = p.Pos
	}
	return core.CenterOn(center, w, h, g.Field.Width, g.Field.Height)
}

// DrawBoard draws the tiles in view at screen offset (ox, oy).
// Removed and hidden entities are not drawn; the Player is drawn on top.
func DrawBoard(s *core.Screen, g *sim.Game, view core.Rect, ox, oy int) {
	for y := view.Y; y < view.Bottom(); y++ {
		for x := view.X; x < view.Right(); x++ {
			gl := TerrainGlyph(g.Field.Get(core.V(x, y)))
			s.SetCell(ox+x-view.X, oy+y-view.Y, gl.Rune, gl.Color)
		}
	}

	player, hasPlayer := g.Player()
	draw := func(e *sim.Entity) {
		if e.Remove || e.Hidden || !view.Contains(e.Pos) {
			return
		}
		gl := EntityGlyph(e)
		s.SetCell(ox+e.Pos.X-view.X, oy+e.Pos.Y-view.Y, gl.Rune, gl.Color)
	}
	for _, e := range g.Ents.All() {
		if hasPlayer && e == player {
			continue
		}
		draw(e)
	}
	if hasPlayer {
		draw(player)
	}
}

// DrawBanner draws a boxed message centered on s, over whatever is there.
// sub is drawn uncolored on a second line when set.
func DrawBanner(s *core.Screen, title string, c core.Color, sub string) {
	w := max(utf8.RuneCountInString(title), utf8.RuneCountInString(sub)) + 4
	h := 3
	if sub != "" {
		h = 4
	}
	r := core.Rect{X: max(0, (s.Width()-w)/2), Y: max(0, (s.Height()-h)/2), W: w, H: h}

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		for x := r.X + 1; x < r.Right()-1; x++ {
			s.Set(x, y, ' ')
		}
	}
	s.DrawBox(r)
	s.DrawTextColored(r.X+2, r.Y+1, title, c)
	if sub != "" {
		s.DrawText(r.X+2, r.Y+2, sub)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(colorStyle(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// colorStyle maps core.Color to a lipgloss style.
func colorStyle(c core.Color) lipgloss.Style {
	code := c.ANSI()
	if code == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	loseStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
)
