// Package starfall implements a frame-stepped space combat game: the player
// ship fights waves of enemies flying in rigid formations, trades projectile
// fire, collects weapon pickups, and scores points until destroyed.
//
// The simulation is pure: it advances one tick per Step call, all randomness
// comes from a seeded generator, and rendering reads state without mutating it.
package starfall

// WeaponType identifies the player's equipped weapon.
type WeaponType int

const (
	WeaponBasicGun WeaponType = iota
	WeaponSword
	WeaponBug
	WeaponBomber
	weaponCount // Sentinel for random draws
)

// Name returns the display name of the weapon.
func (w WeaponType) Name() string {
	switch w {
	case WeaponBasicGun:
		return "Basic Gun"
	case WeaponSword:
		return "Sword"
	case WeaponBug:
		return "Bug"
	case WeaponBomber:
		return "The Bomber"
	default:
		return "?"
	}
}

// FireCooldown returns the cooldown in ticks after firing this weapon.
func (w WeaponType) FireCooldown() int {
	switch w {
	case WeaponBasicGun:
		return 10
	case WeaponSword:
		return 8
	case WeaponBug:
		return 10
	case WeaponBomber:
		return 30 // Much slower fire rate (~0.5 s at 60 ticks/s)
	default:
		return 10
	}
}

// PickupGlyph returns the character drawn for a falling pickup of this weapon.
func (w WeaponType) PickupGlyph() rune {
	switch w {
	case WeaponBasicGun:
		return 'G'
	case WeaponSword:
		return 'S'
	case WeaponBug:
		return 'B'
	case WeaponBomber:
		return 'X'
	default:
		return '?'
	}
}

// EnemyType identifies an enemy variant. Health, size, points, and movement
// cadence are fixed per type.
type EnemyType int

const (
	EnemyBasic EnemyType = iota
	EnemyFast
	EnemyTank
)

// String returns the display name of the enemy type.
func (t EnemyType) String() string {
	switch t {
	case EnemyBasic:
		return "basic"
	case EnemyFast:
		return "fast"
	case EnemyTank:
		return "tank"
	default:
		return "unknown"
	}
}

// Health returns the starting health for this enemy type.
func (t EnemyType) Health() int {
	switch t {
	case EnemyBasic:
		return 15
	case EnemyFast:
		return 10
	case EnemyTank:
		return 30
	default:
		return 15
	}
}

// Points returns the score awarded for destroying this enemy type.
func (t EnemyType) Points() int {
	switch t {
	case EnemyBasic:
		return 10
	case EnemyFast:
		return 20
	case EnemyTank:
		return 30
	default:
		return 10
	}
}

// MoveInterval returns the descent cadence in ticks for unbound enemies.
func (t EnemyType) MoveInterval() int {
	switch t {
	case EnemyBasic:
		return 8
	case EnemyFast:
		return 5
	case EnemyTank:
		return 10
	default:
		return 8
	}
}

// Width returns the sprite width in cells.
func (t EnemyType) Width() int {
	switch t {
	case EnemyBasic:
		return 7
	case EnemyFast, EnemyTank:
		return 8
	default:
		return 7
	}
}

// Height returns the sprite height in cells.
func (t EnemyType) Height() int {
	switch t {
	case EnemyBasic:
		return 3
	case EnemyFast, EnemyTank:
		return 5
	default:
		return 3
	}
}

// Sprite returns the sprite lines for this enemy type.
func (t EnemyType) Sprite() []string {
	switch t {
	case EnemyBasic:
		return []string{`  \|/  `, ` {===} `, `  /_\  `}
	case EnemyFast:
		return []string{
			`  /==\  `,
			` //||\\ `,
			`<<|##|>>`,
			` \\||// `,
			`  \==/  `,
		}
	case EnemyTank:
		return []string{
			`[======]`,
			`|::##::|`,
			`|######|`,
			`|::##::|`,
			`[======]`,
		}
	default:
		return nil
	}
}

// ProjectileOwner identifies which side fired a projectile.
type ProjectileOwner int

const (
	OwnerPlayer ProjectileOwner = iota
	OwnerEnemy
)

// ProjectileType identifies a projectile variant.
type ProjectileType int

const (
	ProjectileBullet ProjectileType = iota
	ProjectileSlash
	ProjectileBugShot
	ProjectileBomb
)

// Glyph returns the character drawn for this projectile.
func (t ProjectileType) Glyph(owner ProjectileOwner) rune {
	if owner == OwnerEnemy {
		return 'v'
	}
	switch t {
	case ProjectileSlash:
		return '~'
	case ProjectileBugShot:
		return '\''
	case ProjectileBomb:
		return '@'
	default:
		return '^'
	}
}

// FormationType identifies a formation shape. Each shape is a fixed table of
// (dx, dy) offsets relative to the formation center.
type FormationType int

const (
	FormationVShape FormationType = iota
	FormationDiamond
	FormationWall
	FormationBlock
	formationCount // Sentinel for random draws
)

// String returns the display name of the formation shape.
func (t FormationType) String() string {
	switch t {
	case FormationVShape:
		return "v-shape"
	case FormationDiamond:
		return "diamond"
	case FormationWall:
		return "wall"
	case FormationBlock:
		return "block"
	default:
		return "unknown"
	}
}
