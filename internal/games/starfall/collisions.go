package starfall

import (
	"sort"

	"github.com/vovakirdan/starfall/internal/core"
)

// resolveCollisions runs the per-tick collision pass in a fixed order:
// player projectiles against enemies, enemy projectiles against the player,
// enemy ships ramming the player, then the player touching pickups. Entities
// hit during the pass are collected by index and removed at the end of each
// stage, so earlier hits never shift later checks.
func (g *Game) resolveCollisions() {
	var deadProjectiles, deadEnemies []int

	playerBox := g.player.Bounds()

	// Player projectiles against enemies. A killed enemy stays in the
	// scan until the stage ends, so later projectiles landing on it this
	// tick re-award its points. That double scoring is intentional, not
	// a pruning bug.
	for pi := range g.projectiles {
		p := &g.projectiles[pi]
		if p.Owner != OwnerPlayer {
			continue
		}
		if p.Type == ProjectileBomb && p.Expired() {
			g.explodeBomb(pi, &deadProjectiles, &deadEnemies)
			continue
		}
		for ei := range g.enemies {
			e := &g.enemies[ei]
			if !e.Bounds().Contains(p.X, p.Y) {
				continue
			}
			e.TakeDamage(p.Damage)
			deadProjectiles = append(deadProjectiles, pi)
			if !e.Alive() {
				g.score += e.Type.Points()
				cx, cy := e.Center()
				g.particles = append(g.particles, explosionBurst(cx, cy)...)
				g.events = append(g.events, core.EventExplosion)
				deadEnemies = append(deadEnemies, ei)
			}
			break
		}
	}

	// Enemy projectiles against the player.
	for pi := range g.projectiles {
		p := &g.projectiles[pi]
		if p.Owner != OwnerEnemy {
			continue
		}
		if playerBox.Contains(p.X, p.Y) {
			g.player.TakeDamage(p.Damage, g.cfg.Player.HitFlashTicks)
			deadProjectiles = append(deadProjectiles, pi)
		}
	}

	// Enemy ships ramming the player.
	for ei := range g.enemies {
		e := &g.enemies[ei]
		if !e.Bounds().Intersects(playerBox) {
			continue
		}
		cx, cy := e.Center()
		g.particles = append(g.particles, explosionBurst(cx, cy)...)
		g.events = append(g.events, core.EventExplosion)
		g.player.TakeDamage(g.cfg.Combat.RamDamage, g.cfg.Player.HitFlashTicks)
		deadEnemies = append(deadEnemies, ei)
	}

	g.projectiles = removeByIndex(g.projectiles, deadProjectiles)
	g.enemies = removeByIndex(g.enemies, deadEnemies)

	// Player touching pickups.
	var takenPickups []int
	for pi := range g.pickups {
		p := &g.pickups[pi]
		if playerBox.Contains(p.X, p.Y) {
			g.player.Weapon = p.Weapon
			takenPickups = append(takenPickups, pi)
		}
	}
	g.pickups = removeByIndex(g.pickups, takenPickups)
}

// explodeBomb applies area damage around an expired bomb. The blast radius is
// inclusive: enemies whose center sits exactly on the radius are hit.
func (g *Game) explodeBomb(pi int, deadProjectiles, deadEnemies *[]int) {
	p := &g.projectiles[pi]
	radius := g.cfg.Combat.ExplosionRadius

	g.particles = append(g.particles, explosionBurst(p.X, p.Y)...)
	g.events = append(g.events, core.EventExplosion)

	for ei := range g.enemies {
		e := &g.enemies[ei]
		cx, cy := e.Center()
		dx, dy := cx-p.X, cy-p.Y
		if dx*dx+dy*dy > radius*radius {
			continue
		}
		e.TakeDamage(g.cfg.Combat.ExplosionDamage)
		if !e.Alive() {
			g.score += e.Type.Points()
			g.particles = append(g.particles, explosionBurst(cx, cy)...)
			g.events = append(g.events, core.EventExplosion)
			*deadEnemies = append(*deadEnemies, ei)
		}
	}
	*deadProjectiles = append(*deadProjectiles, pi)
}

// removeByIndex removes the elements at the given indices. Indices may repeat
// and arrive in any order; removal runs highest-first so the remaining
// indices stay valid.
func removeByIndex[T any](items []T, indices []int) []T {
	if len(indices) == 0 {
		return items
	}
	sort.Sort(sort.Reverse(sort.IntSlice(indices)))
	last := -1
	for _, idx := range indices {
		if idx == last || idx < 0 || idx >= len(items) {
			continue
		}
		last = idx
		items = append(items[:idx], items[idx+1:]...)
	}
	return items
}
