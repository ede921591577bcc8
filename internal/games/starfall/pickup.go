package starfall

import "github.com/vovakirdan/starfall/internal/core"

const pickupFallEvery = 15

// Pickup is a weapon crate drifting slowly down the field. Touching it swaps
// the player's weapon.
type Pickup struct {
	X      int
	Y      int
	Weapon WeaponType
	frame  int
}

// NewPickup creates a pickup carrying the given weapon at (x, y).
func NewPickup(x, y int, w WeaponType) Pickup {
	return Pickup{X: x, Y: y, Weapon: w}
}

// Bounds returns the pickup's single-cell collision box.
func (p *Pickup) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, 1, 1)
}

// Advance drops the pickup one row every fifteenth tick.
func (p *Pickup) Advance() {
	p.frame++
	if p.frame%pickupFallEvery == 0 {
		p.Y++
	}
}

// OutOfBounds reports whether the pickup has fallen past the bottom edge.
func (p *Pickup) OutOfBounds(fieldH int) bool {
	return p.Y >= fieldH
}
