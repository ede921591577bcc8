package starfall

// spawnWaves counts down the wave timer and spawns a fresh formation when it
// expires. The timer only runs while the field is clear of enemies, so a new
// wave arrives a fixed delay after the previous one is gone.
func (g *Game) spawnWaves() {
	if len(g.enemies) > 0 {
		g.waveTimer = g.cfg.Spawning.WaveDelayTicks
		return
	}
	if g.waveTimer > 0 {
		g.waveTimer--
		return
	}
	g.spawnFormation()
	g.waveTimer = g.cfg.Spawning.WaveDelayTicks
}

// spawnFormation creates a formation of a random shape at a random horizontal
// position and fills every slot with enemies of a random type.
func (g *Game) spawnFormation() {
	shape := FormationType(g.rng.Intn(int(formationCount)))
	enemyType := g.rollEnemyType()

	pad := g.cfg.Spawning.FormationPadding
	minX, maxX := pad, g.fieldW-pad
	centerX := g.fieldW / 2
	if maxX > minX {
		centerX = minX + g.rng.Intn(maxX-minX)
	}
	centerY := g.cfg.Spawning.FormationStartY

	g.nextFormationID++
	f := NewFormation(g.nextFormationID, shape, centerX, centerY)

	for _, o := range shape.Offsets() {
		g.nextEnemyID++
		e := NewEnemy(g.nextEnemyID, enemyType, 0, 0)
		e.Formation = f.ID
		e.OffsetX = o.DX
		e.OffsetY = o.DY
		e.Reposition(centerX, centerY)
		f.Members = append(f.Members, e.ID)
		g.enemies = append(g.enemies, e)
	}
	g.formations = append(g.formations, f)
}

// rollEnemyType draws an enemy type with weights 70/20/10.
func (g *Game) rollEnemyType() EnemyType {
	switch roll := g.rng.Intn(10); {
	case roll < 7:
		return EnemyBasic
	case roll < 9:
		return EnemyFast
	default:
		return EnemyTank
	}
}

// spawnPickups periodically rolls for a weapon pickup near the top of the
// field.
func (g *Game) spawnPickups() {
	interval := uint64(g.cfg.Spawning.PickupIntervalTicks)
	if interval == 0 || g.tick%interval != 0 {
		return
	}
	if g.rng.Float64() >= g.cfg.Spawning.PickupChance {
		return
	}
	weapon := WeaponType(g.rng.Intn(int(weaponCount)))
	x := 3
	if g.fieldW > 6 {
		x = 3 + g.rng.Intn(g.fieldW-6)
	}
	g.pickups = append(g.pickups, NewPickup(x, 3, weapon))
}
