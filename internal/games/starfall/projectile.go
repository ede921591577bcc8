package starfall

const (
	bulletDamage = 10
	bombLifetime = 90
	bombDamage   = 5
	slashLife    = 10
)

// Projectile is a bullet, slash, bug shot, or bomb in flight. Player-owned
// projectiles move up one row per tick, enemy-owned ones move down. VelX adds
// horizontal drift; positions never go negative.
type Projectile struct {
	X        int
	Y        int
	Owner    ProjectileOwner
	Type     ProjectileType
	Damage   int
	VelX     int
	Lifetime int
	Timed    bool
}

func newBullet(x, y int, owner ProjectileOwner) Projectile {
	return Projectile{X: x, Y: y, Owner: owner, Type: ProjectileBullet, Damage: bulletDamage}
}

func newSlash(x, y int) Projectile {
	return Projectile{X: x, Y: y, Owner: OwnerPlayer, Type: ProjectileSlash, Damage: bulletDamage, Lifetime: slashLife, Timed: true}
}

func newBugShot(x, y, velX int) Projectile {
	return Projectile{X: x, Y: y, Owner: OwnerPlayer, Type: ProjectileBugShot, Damage: bulletDamage, VelX: velX}
}

func newBomb(x, y int) Projectile {
	return Projectile{X: x, Y: y, Owner: OwnerPlayer, Type: ProjectileBomb, Damage: bombDamage, Lifetime: bombLifetime, Timed: true}
}

// Advance moves the projectile one tick. Timed lifetimes count down to zero
// and stop. Bombs are heavy: they only move every third tick of remaining
// lifetime.
func (p *Projectile) Advance() {
	if p.Timed && p.Lifetime > 0 {
		p.Lifetime--
	}
	if p.Type == ProjectileBomb && p.Timed && p.Lifetime%3 != 0 {
		return
	}
	if p.Owner == OwnerPlayer {
		if p.Y > 0 {
			p.Y--
		}
	} else {
		p.Y++
	}
	if p.VelX != 0 {
		p.X += p.VelX
		if p.X < 0 {
			p.X = 0
		}
	}
}

// Expired reports whether a timed lifetime has run out.
func (p *Projectile) Expired() bool {
	return p.Timed && p.Lifetime == 0
}

// OutOfBounds reports whether the projectile has left the playfield.
func (p *Projectile) OutOfBounds(fieldW, fieldH int) bool {
	return p.Y == 0 || p.Y >= fieldH || p.X < 0 || p.X >= fieldW
}
