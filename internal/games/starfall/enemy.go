package starfall

import "github.com/vovakirdan/starfall/internal/core"

const enemyFlashTicks = 10

// EnemyID is a stable handle for one enemy. IDs are allocated from a
// monotonically increasing counter and never reused, so a stale ID held by a
// formation simply stops resolving once the enemy dies. Zero is never a valid
// ID.
type EnemyID uint64

// Enemy is one hostile ship. Coordinates are the top-left corner of the
// sprite, relative to the playfield.
//
// While bound to a formation the enemy does not move on its own: its position
// is re-derived from the formation center every tick. Unbound enemies descend
// at their type's cadence.
type Enemy struct {
	ID         EnemyID
	Type       EnemyType
	X          int
	Y          int
	Health     int
	Formation  FormationID
	OffsetX    int
	OffsetY    int
	Cooldown   int
	FlashTicks int
}

// NewEnemy creates an enemy of the given type at (x, y) with full health.
func NewEnemy(id EnemyID, t EnemyType, x, y int) Enemy {
	return Enemy{ID: id, Type: t, X: x, Y: y, Health: t.Health()}
}

// Bounds returns the enemy's collision box.
func (e *Enemy) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, e.Type.Width(), e.Type.Height())
}

// Center returns the center cell of the sprite.
func (e *Enemy) Center() (int, int) {
	return e.X + e.Type.Width()/2, e.Y + e.Type.Height()/2
}

// Advance runs one tick of enemy state. The cooldown counter drives both the
// fire cadence and, for unbound enemies, the descent cadence. Formation-bound
// enemies only tick the counter; their position is owned by the formation.
func (e *Enemy) Advance() {
	if e.FlashTicks > 0 {
		e.FlashTicks--
	}
	if e.Formation != 0 {
		e.Cooldown++
		return
	}
	if e.Cooldown%e.Type.MoveInterval() == 0 {
		e.Y++
	}
	e.Cooldown++
}

// Reposition derives the enemy's position from its formation center, clamped
// to non-negative coordinates.
func (e *Enemy) Reposition(centerX, centerY int) {
	e.X = core.Max(0, centerX+e.OffsetX)
	e.Y = core.Max(0, centerY+e.OffsetY)
}

// CanFire reports whether this tick is a firing opportunity. firePeriod is
// the cadence in ticks.
func (e *Enemy) CanFire(firePeriod int) bool {
	return e.Cooldown%firePeriod == 0
}

// TakeDamage subtracts damage from health without going below zero and starts
// the hit flash.
func (e *Enemy) TakeDamage(damage int) {
	e.Health = core.SatSub(e.Health, damage)
	e.FlashTicks = enemyFlashTicks
}

// Alive reports whether the enemy has health remaining.
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// Fire spawns a projectile from the bottom center of the sprite.
func (e *Enemy) Fire() Projectile {
	cx, _ := e.Center()
	return newBullet(cx, e.Y+e.Type.Height(), OwnerEnemy)
}
