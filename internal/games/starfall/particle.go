package starfall

import "github.com/vovakirdan/starfall/internal/core"

// Particle is a short-lived visual effect cell. Particles never collide with
// anything.
type Particle struct {
	X        int
	Y        int
	VelX     int
	VelY     int
	Lifetime int
	Glyph    rune
}

// Advance moves the particle and counts its lifetime down. Coordinates are
// clamped at the field origin.
func (p *Particle) Advance() {
	p.X = core.Max(0, p.X+p.VelX)
	p.Y = core.Max(0, p.Y+p.VelY)
	if p.Lifetime > 0 {
		p.Lifetime--
	}
}

// Expired reports whether the particle's lifetime has run out.
func (p *Particle) Expired() bool {
	return p.Lifetime == 0
}

// OutOfBounds reports whether the particle has drifted off the field.
func (p *Particle) OutOfBounds(fieldW, fieldH int) bool {
	return p.X >= fieldW || p.Y >= fieldH
}

// explosionBurst spawns the standard nine-particle burst: eight sparks flying
// outward plus a flash at the center.
func explosionBurst(cx, cy int) []Particle {
	burst := make([]Particle, 0, 9)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			burst = append(burst, Particle{X: cx, Y: cy, VelX: dx, VelY: dy, Lifetime: 6, Glyph: '*'})
		}
	}
	burst = append(burst, Particle{X: cx, Y: cy, Lifetime: 4, Glyph: 'o'})
	return burst
}
