package starfall

import (
	"fmt"

	"github.com/vovakirdan/starfall/internal/core"
)

const healthBarWidth = 20

// Render draws the full frame: HUD, field borders, and all entities. Entity
// coordinates are field-relative, so everything shifts right by the field
// offset.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBorders(dst)
	g.renderPickups(dst)
	g.renderEnemies(dst)
	g.renderProjectiles(dst)
	g.renderParticles(dst)
	g.renderPlayer(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d / Press R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar: score, health bar, weapon, run time.
func (g *Game) renderHUD(dst *core.Screen) {
	filled := 0
	if g.cfg.Player.Health > 0 {
		filled = g.player.Health * healthBarWidth / g.cfg.Player.Health
	}
	bar := make([]rune, healthBarWidth)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}

	barColor := core.ColorGreen
	switch {
	case g.player.Health <= g.cfg.Player.Health/4:
		barColor = core.ColorRed
	case g.player.Health <= g.cfg.Player.Health/2:
		barColor = core.ColorYellow
	}

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextColored(16, 0, string(bar), barColor)
	dst.DrawText(16+healthBarWidth+1, 0, fmt.Sprintf("%d HP", g.player.Health))

	elapsed := g.ElapsedSecs()
	right := fmt.Sprintf("%s  %02d:%02d", g.player.Weapon.Name(), elapsed/60, elapsed%60)
	dst.DrawText(core.Max(0, dst.Width()-len(right)-1), 0, right)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBorders draws the vertical field edges.
func (g *Game) renderBorders(dst *core.Screen) {
	left := g.fieldOffsetX - 1
	right := g.fieldOffsetX + g.fieldW
	dst.DrawVLine(left, 2, dst.Height()-2, '│')
	dst.DrawVLine(right, 2, dst.Height()-2, '│')
}

func (g *Game) renderPlayer(dst *core.Screen) {
	color := core.ColorCyan
	if g.player.FlashTicks > 0 {
		color = core.ColorWhite
	}
	g.drawSprite(dst, playerSprite, g.player.X, g.player.Y, color)
}

func (g *Game) renderEnemies(dst *core.Screen) {
	for i := range g.enemies {
		e := &g.enemies[i]
		color := enemyColor(e.Type)
		if e.FlashTicks > 0 {
			color = core.ColorWhite
		}
		g.drawSprite(dst, e.Type.Sprite(), e.X, e.Y, color)
	}
}

func enemyColor(t EnemyType) core.Color {
	switch t {
	case EnemyFast:
		return core.ColorMagenta
	case EnemyTank:
		return core.ColorRed
	default:
		return core.ColorGreen
	}
}

func (g *Game) renderProjectiles(dst *core.Screen) {
	for i := range g.projectiles {
		p := &g.projectiles[i]
		color := core.ColorYellow
		if p.Owner == OwnerEnemy {
			color = core.ColorRed
		}
		g.setField(dst, p.X, p.Y, p.Type.Glyph(p.Owner), color)
	}
}

func (g *Game) renderParticles(dst *core.Screen) {
	for i := range g.particles {
		p := &g.particles[i]
		g.setField(dst, p.X, p.Y, p.Glyph, core.ColorOrange)
	}
}

func (g *Game) renderPickups(dst *core.Screen) {
	for i := range g.pickups {
		p := &g.pickups[i]
		g.setField(dst, p.X, p.Y, p.Weapon.PickupGlyph(), core.ColorCyan)
	}
}

// drawSprite draws multi-line sprite text at a field position, skipping
// spaces so overlapping sprites don't punch holes in each other.
func (g *Game) drawSprite(dst *core.Screen, lines []string, x, y int, color core.Color) {
	for dy, line := range lines {
		for dx, r := range line {
			if r == ' ' {
				continue
			}
			g.setField(dst, x+dx, y+dy, r, color)
		}
	}
}

// setField writes one cell at field-relative coordinates, clipped to the
// field so entities never bleed into the side panels or HUD.
func (g *Game) setField(dst *core.Screen, x, y int, r rune, color core.Color) {
	if x < 0 || x >= g.fieldW || y < 2 || y >= g.fieldH {
		return
	}
	dst.SetColored(g.fieldOffsetX+x, y, r, color)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(boxX+(boxW-len(line1))/2, boxY+1, line1)
	dst.DrawText(boxX+(boxW-len(line2))/2, boxY+3, line2)
}
