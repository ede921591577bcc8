package starfall

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and
// replay. All collections are deep copies; mutating a snapshot never touches
// the live game.
type Snapshot struct {
	Tick        uint64
	Score       int
	ElapsedSecs uint64
	State       GameStateType
	Player      Player
	Weapon      WeaponType
	Enemies     []Enemy
	Formations  []Formation
	Projectiles []Projectile
	Particles   []Particle
	Pickups     []Pickup
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	formations := make([]Formation, len(g.formations))
	for i, f := range g.formations {
		formations[i] = f
		formations[i].Members = append([]EnemyID(nil), f.Members...)
	}

	return Snapshot{
		Tick:        g.tick,
		Score:       g.score,
		ElapsedSecs: g.ElapsedSecs(),
		State:       state,
		Player:      g.player,
		Weapon:      g.player.Weapon,
		Enemies:     append([]Enemy(nil), g.enemies...),
		Formations:  formations,
		Projectiles: append([]Projectile(nil), g.projectiles...),
		Particles:   append([]Particle(nil), g.particles...),
		Pickups:     append([]Pickup(nil), g.pickups...),
	}
}
