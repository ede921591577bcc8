package starfall

import (
	"math/rand"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the Starfall space combat game.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.StarfallConfig
	rng     *rand.Rand

	tick     uint64
	score    int
	gameOver bool
	paused   bool
	tooSmall bool

	// Playfield layout (computed from screen size). Entity coordinates are
	// relative to the field; rendering shifts them by fieldOffsetX.
	fieldW       int
	fieldH       int
	fieldOffsetX int

	player      Player
	enemies     []Enemy
	formations  []Formation
	projectiles []Projectile
	particles   []Particle
	pickups     []Pickup

	// ID counters. Never reset below their high-water mark within a session,
	// never reused across deaths.
	nextEnemyID     EnemyID
	nextFormationID FormationID

	waveTimer int

	events []core.Event
}

// New creates a new Starfall game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("starfall", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "starfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Starfall"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	cfg, err := config.LoadStarfall(configPath)
	if err != nil {
		cfg = config.DefaultStarfallConfig()
	}
	g.cfg = cfg

	g.calculateLayout()

	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.waveTimer = cfg.Spawning.WaveDelayTicks
	g.events = nil

	g.enemies = nil
	g.formations = nil
	g.projectiles = nil
	g.particles = nil
	g.pickups = nil

	g.player = NewPlayer(
		(g.fieldW-playerWidth)/2,
		g.fieldH-playerHeight-1,
		cfg.Player.Health,
	)

	// The opening wave is already on the field when play starts.
	g.spawnFormation()
}

// Resize adapts the playfield to a new terminal size without restarting the
// run. The player is clamped back inside the new field.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.calculateLayout()
	if !g.tooSmall {
		g.player.Move(0, 0, g.fieldW, g.fieldH)
	}
}

// calculateLayout computes the playfield from the screen size. Side panels
// flank the field so the combat lane stays narrower than the full terminal.
func (g *Game) calculateLayout() {
	const minScreenW, minScreenH = 60, 20

	g.tooSmall = g.runtime.ScreenW < minScreenW || g.runtime.ScreenH < minScreenH
	side := g.runtime.ScreenW / 8
	g.fieldOffsetX = side
	g.fieldW = g.runtime.ScreenW - 2*side
	g.fieldH = g.runtime.ScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.tooSmall {
		return g.stepResult()
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.gameOver {
		runtime := g.runtime
		runtime.Seed = g.rng.Int63()
		g.Reset(runtime)
		return g.stepResult()
	}

	// Pause and resume are distinct actions: resume only works while
	// paused, pause only while playing.
	if g.paused {
		if in.Has(core.ActionResume) {
			g.paused = false
		}
		return g.stepResult()
	}
	if g.gameOver {
		return g.stepResult()
	}
	if in.Has(core.ActionPause) {
		g.paused = true
		return g.stepResult()
	}

	g.tick++

	g.handleInput(in)
	g.player.Advance()

	g.spawnWaves()
	g.spawnPickups()

	g.advanceProjectiles()
	g.advanceParticles()
	g.advancePickups()
	g.advanceFormations()
	g.advanceEnemies()

	g.resolveCollisions()

	if !g.player.Alive() {
		g.gameOver = true
	}

	return g.stepResult()
}

func (g *Game) stepResult() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append([]core.Event(nil), g.events...)
	}
	return res
}

// handleInput applies movement and fire actions for this tick.
func (g *Game) handleInput(in core.InputFrame) {
	dx, dy := 0, 0
	if in.Has(core.ActionLeft) {
		dx--
	}
	if in.Has(core.ActionRight) {
		dx++
	}
	if in.Has(core.ActionUp) {
		dy--
	}
	if in.Has(core.ActionDown) {
		dy++
	}
	if dx != 0 || dy != 0 {
		g.player.Move(dx, dy, g.fieldW, g.fieldH)
	}

	if in.Has(core.ActionFire) {
		if shots := g.player.TryFire(); len(shots) > 0 {
			g.projectiles = append(g.projectiles, shots...)
			g.events = append(g.events, core.EventPlayerFired)
		}
	}
}

// advanceProjectiles moves projectiles and drops the ones that left the
// field. Expired bombs survive this pass so the collision pass can detonate
// them; other expired projectiles are dropped here.
func (g *Game) advanceProjectiles() {
	kept := g.projectiles[:0]
	for i := range g.projectiles {
		p := g.projectiles[i]
		p.Advance()
		if p.OutOfBounds(g.fieldW, g.fieldH) {
			continue
		}
		if p.Expired() && p.Type != ProjectileBomb {
			continue
		}
		kept = append(kept, p)
	}
	g.projectiles = kept
}

func (g *Game) advanceParticles() {
	kept := g.particles[:0]
	for i := range g.particles {
		p := g.particles[i]
		p.Advance()
		if p.Expired() || p.OutOfBounds(g.fieldW, g.fieldH) {
			continue
		}
		kept = append(kept, p)
	}
	g.particles = kept
}

func (g *Game) advancePickups() {
	kept := g.pickups[:0]
	for i := range g.pickups {
		p := g.pickups[i]
		p.Advance()
		if p.OutOfBounds(g.fieldH) {
			continue
		}
		kept = append(kept, p)
	}
	g.pickups = kept
}

// advanceFormations marches formations, re-derives member positions from the
// center, and drops formations that left the field or lost every member.
// Survivors of a dropped formation are unbound and fall back to solo descent.
func (g *Game) advanceFormations() {
	alive := make(map[EnemyID]*Enemy, len(g.enemies))
	for i := range g.enemies {
		alive[g.enemies[i].ID] = &g.enemies[i]
	}

	kept := g.formations[:0]
	for i := range g.formations {
		f := g.formations[i]
		f.Advance(g.fieldW)

		// Drop stale member IDs, reposition the rest.
		members := f.Members[:0]
		for _, id := range f.Members {
			e, ok := alive[id]
			if !ok {
				continue
			}
			e.Reposition(f.CenterX, f.CenterY)
			members = append(members, id)
		}
		f.Members = members

		if f.OffBottom(g.fieldH) || len(f.Members) == 0 {
			for _, id := range f.Members {
				alive[id].Formation = 0
			}
			continue
		}
		kept = append(kept, f)
	}
	g.formations = kept
}

// advanceEnemies ticks enemies, lets them fire, and drops the ones that fell
// past the bottom edge.
func (g *Game) advanceEnemies() {
	kept := g.enemies[:0]
	for i := range g.enemies {
		e := g.enemies[i]
		e.Advance()
		if e.Y >= g.fieldH {
			continue
		}
		if e.CanFire(g.cfg.Combat.EnemyFirePeriod) && g.rng.Float64() < g.cfg.Combat.EnemyFireChance {
			g.projectiles = append(g.projectiles, e.Fire())
			g.events = append(g.events, core.EventEnemyFired)
		}
		kept = append(kept, e)
	}
	g.enemies = kept
}

// ElapsedSecs returns run time in whole seconds. Time freezes on game over
// because ticks stop advancing.
func (g *Game) ElapsedSecs() uint64 {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return g.tick / uint64(rate)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
