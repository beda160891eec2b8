package lawn

import (
	"fmt"

	"github.com/vovakirdan/lawn-defense/internal/core"
	"github.com/vovakirdan/lawn-defense/internal/games/lawn/sim"
)

// kindStyle is the terminal look of a plant kind.
type kindStyle struct {
	glyph string
	color core.Color
}

var kindStyles = map[sim.Kind]kindStyle{
	sim.KindShooter:   {glyph: "P", color: core.ColorGreen},
	sim.KindSunflower: {glyph: "S", color: core.ColorOrange},
}

const (
	zombieGlyph = 'Z'
	bulletGlyph = '•'
	sunGlyph    = '☼'
	tileGlyph   = '░'
)

// Render draws the run into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	g.renderHUD(dst)

	if g.lay.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderLawn(dst)
	g.renderToolbar(dst)
	g.renderPlants(dst)
	g.renderZombies(dst)
	g.renderBullets(dst)
	g.renderSuns(dst)
	g.renderCursor(dst)
	g.renderFooter(dst)

	switch {
	case g.state.Over():
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Zombies defeated: %d  |  R: restart", g.state.Defeated))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	s := g.state
	title := " Lawn Defense | Sun: "
	sun := fmt.Sprintf("%d", s.SunPoints)
	dst.DrawTextColor(0, 0, title, core.ColorBrightGreen)
	dst.DrawTextColor(len(title), 0, sun, core.ColorGold)
	stats := fmt.Sprintf(" | Defeated: %d | Tick: %d | Planting: %s", s.Defeated, s.Tick, s.Selected.Label())
	dst.DrawTextColor(len(title)+len(sun), 0, stats, core.ColorWhite)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}
}

// renderLawn fills the lanes with a checkerboard of tiles.
func (g *Game) renderLawn(dst *core.Screen) {
	for row := 1; row < g.lay.rows; row++ {
		for col := 0; col < g.lay.cols; col++ {
			c := core.ColorTileA
			if (row+col)%2 == 0 {
				c = core.ColorTileB
			}
			dst.DrawRectColor(g.lay.cellRect(row, col), tileGlyph, c)
		}
	}
}

// renderToolbar draws one slot per plant kind in the top row, labelled with
// name and cost. The selected kind is bracketed; unaffordable kinds are grey.
func (g *Game) renderToolbar(dst *core.Screen) {
	strip := core.NewRect(g.lay.offX, g.lay.offY, g.lay.cols*g.lay.cellW, g.lay.cellH)
	dst.DrawRectColor(strip, ' ', core.ColorDefault)

	slotW := int(g.cfg.SlotWidth * float64(g.lay.cellW) / g.cfg.CellSize)
	for i, k := range sim.Kinds() {
		x := g.lay.offX + i*slotW
		y := g.lay.offY + (g.lay.cellH-1)/2

		color := kindStyles[k].color
		if !g.state.CanAfford(k) {
			color = core.ColorGray
		}
		selected := k == g.state.Selected
		if selected {
			color = core.ColorBrightYellow
		}
		dst.DrawTextColor(x, y, slotLabel(k, g.cfg.Cost(k), selected, slotW), color)
	}

	sun := fmt.Sprintf("☼ %d", g.state.SunPoints)
	dst.DrawTextColor(strip.Right()-len([]rune(sun))-1, g.lay.offY+(g.lay.cellH-1)/2, sun, core.ColorGold)
}

func (g *Game) renderPlants(dst *core.Screen) {
	for _, p := range g.state.Plants {
		r := g.lay.cellRect(p.Row+1, p.Col)
		st := kindStyles[p.Kind]
		cx, cy := r.Center()

		dst.DrawTextColor(cx-len(st.glyph)/2, cy, st.glyph, st.color)
		if g.lay.cellH >= 3 && g.lay.cellW >= 4 {
			hp := fmt.Sprintf("%d", p.Health)
			dst.DrawTextColor(cx-len(hp)/2, cy+1, hp, st.color)
		}
	}
}

func (g *Game) renderZombies(dst *core.Screen) {
	for _, z := range g.state.Zombies {
		tx, _ := g.lay.toScreen(z.X+g.cfg.CellSize/2, z.Y)
		_, cy := g.lay.cellRect(z.Row+1, 0).Center()

		color := core.ColorBrown
		if z.Attacking {
			color = core.ColorRed
		}
		dst.SetColor(tx, cy, zombieGlyph, color)
		if g.lay.cellH >= 3 {
			dst.DrawTextColor(tx-1, cy+1, fmt.Sprintf("%d", z.Health), core.ColorBrown)
		}
	}
}

func (g *Game) renderBullets(dst *core.Screen) {
	for _, b := range g.state.Bullets {
		tx, ty := g.lay.toScreen(b.X, b.Y)
		dst.SetColor(tx, ty, bulletGlyph, core.ColorYellow)
	}
}

func (g *Game) renderSuns(dst *core.Screen) {
	for _, u := range g.state.Suns {
		tx, ty := g.lay.toScreen(u.X, u.Y)
		dst.SetColor(tx, ty, sunGlyph, core.ColorGold)
	}
}

func (g *Game) renderCursor(dst *core.Screen) {
	r := g.lay.cellRect(g.cursorRow+1, g.cursorCol)
	_, cy := r.Center()
	dst.SetColor(r.X, cy, '[', core.ColorBrightWhite)
	dst.SetColor(r.Right()-1, cy, ']', core.ColorBrightWhite)
}

func (g *Game) renderFooter(dst *core.Screen) {
	hint := " Arrows: move | Enter: click | 1/2: plant | Mouse: click | P: pause | Q: quit"
	dst.DrawTextColor(0, dst.Height()-1, truncate(hint, dst.Width()), core.ColorGray)
}

// renderOverlay draws a centered two-line box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColor(box.X+(boxW-len([]rune(line1)))/2, box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextColor(box.X+(boxW-len([]rune(line2)))/2, box.Y+3, line2, core.ColorWhite)
}

// slotLabel picks the longest toolbar label that fits in width.
func slotLabel(k sim.Kind, cost int, selected bool, width int) string {
	glyph := kindStyles[k].glyph
	candidates := []string{
		fmt.Sprintf("%s %d", k.Label(), cost),
		k.Label(),
		fmt.Sprintf("%s %d", glyph, cost),
		glyph,
	}
	for _, c := range candidates {
		if selected {
			c = "[" + c + "]"
		}
		if len([]rune(c)) <= width {
			return c
		}
	}
	return truncate(candidates[len(candidates)-1], width)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
