package starfall

import "github.com/vovakirdan/starfall/internal/core"

const (
	playerWidth  = 5
	playerHeight = 3
)

var playerSprite = []string{
	` /^\ `,
	`<|||>`,
	` ||| `,
}

// Player is the player ship. Coordinates are the top-left corner of the
// sprite, relative to the playfield.
type Player struct {
	X          int
	Y          int
	Health     int
	Weapon     WeaponType
	Cooldown   int
	FlashTicks int
}

// NewPlayer creates a player at the given position with the given health.
func NewPlayer(x, y, health int) Player {
	return Player{X: x, Y: y, Health: health, Weapon: WeaponBasicGun}
}

// Bounds returns the player's collision box.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, playerWidth, playerHeight)
}

// Advance runs one tick of passive state: cooldown and hit flash count down
// to zero and stop.
func (p *Player) Advance() {
	if p.Cooldown > 0 {
		p.Cooldown--
	}
	if p.FlashTicks > 0 {
		p.FlashTicks--
	}
}

// Move shifts the player by (dx, dy), clamped to the playfield. The top two
// rows are reserved for the HUD.
func (p *Player) Move(dx, dy, fieldW, fieldH int) {
	p.X = core.Clamp(p.X+dx, 0, fieldW-playerWidth)
	p.Y = core.Clamp(p.Y+dy, 2, fieldH-playerHeight)
}

// TakeDamage subtracts damage from health without going below zero and starts
// the hit flash.
func (p *Player) TakeDamage(damage, flashTicks int) {
	p.Health = core.SatSub(p.Health, damage)
	p.FlashTicks = flashTicks
}

// Alive reports whether the player has health remaining.
func (p *Player) Alive() bool {
	return p.Health > 0
}

// TryFire spawns the equipped weapon's projectiles if the cooldown has
// elapsed. It returns nil when the weapon is still cooling down.
func (p *Player) TryFire() []Projectile {
	if p.Cooldown > 0 {
		return nil
	}
	p.Cooldown = p.Weapon.FireCooldown()

	noseX := p.X + playerWidth/2
	switch p.Weapon {
	case WeaponSword:
		// Short-lived slash just above the ship.
		return []Projectile{newSlash(noseX, p.Y-1)}
	case WeaponBug:
		// Two shots drifting apart.
		return []Projectile{
			newBugShot(noseX, p.Y-1, -1),
			newBugShot(noseX, p.Y-1, 1),
		}
	case WeaponBomber:
		return []Projectile{newBomb(noseX, p.Y-1)}
	default:
		return []Projectile{newBullet(noseX, p.Y-1, OwnerPlayer)}
	}
}
