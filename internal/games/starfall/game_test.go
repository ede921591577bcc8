package starfall

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/starfall/internal/core"
)

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and the same inputs should stay in
	// lockstep for the entire run.
	cfg := core.RuntimeConfig{
		Seed:     12345,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 400; i++ {
		input.Clear()
		if i%10 == 0 {
			input.Set(core.ActionFire)
		}
		if i > 30 && i < 60 {
			input.Set(core.ActionLeft)
		}
		if i > 100 && i < 140 {
			input.Set(core.ActionRight)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("Snapshots diverged:\n%+v\nvs\n%+v", snap1, snap2)
	}
}

func TestOpeningWaveSpawnsAtReset(t *testing.T) {
	g := newTestGame()

	if len(g.formations) != 1 {
		t.Fatalf("Expected the opening formation at reset, got %d", len(g.formations))
	}
	f := g.formations[0]
	if len(f.Members) != len(f.Type.Offsets()) {
		t.Errorf("Expected %d members for %v, got %d", len(f.Type.Offsets()), f.Type, len(f.Members))
	}
	if len(g.enemies) != len(f.Members) {
		t.Errorf("Enemy count %d does not match member count %d", len(g.enemies), len(f.Members))
	}
}

func TestWaveSpawnsAfterDelay(t *testing.T) {
	g := newTestGame()
	input := core.NewInputFrame()

	// Clear the opening wave and park the player above the spawn rows so
	// the next formation arrives intact on its spawn tick.
	g.enemies = nil
	g.formations = nil
	g.player.Y = 2

	delay := g.cfg.Spawning.WaveDelayTicks
	for i := 0; i < delay; i++ {
		g.Step(input)
	}
	if len(g.enemies) != 0 {
		t.Fatalf("No enemies expected during the wave delay, got %d", len(g.enemies))
	}

	g.Step(input)
	if len(g.enemies) == 0 {
		t.Fatal("Expected a formation after the wave delay")
	}
	if len(g.formations) != 1 {
		t.Fatalf("Expected one formation, got %d", len(g.formations))
	}

	f := g.formations[0]
	if len(f.Members) != len(f.Type.Offsets()) {
		t.Errorf("Expected %d members for %v, got %d", len(f.Type.Offsets()), f.Type, len(f.Members))
	}
	if len(g.enemies) != len(f.Members) {
		t.Errorf("Enemy count %d does not match member count %d", len(g.enemies), len(f.Members))
	}
}

func TestWaveRespawnsWithFreshIDs(t *testing.T) {
	g := newTestGame()
	input := core.NewInputFrame()

	maxID := EnemyID(0)
	for i := range g.enemies {
		if g.enemies[i].ID > maxID {
			maxID = g.enemies[i].ID
		}
	}
	if maxID == 0 {
		t.Fatal("Expected the opening wave at reset")
	}

	// Clear the field; the next wave arrives one delay later.
	g.enemies = nil
	g.formations = nil
	for i := 0; i <= g.cfg.Spawning.WaveDelayTicks; i++ {
		g.Step(input)
	}
	if len(g.enemies) == 0 {
		t.Fatal("Expected a second wave after clearing the field")
	}
	for i := range g.enemies {
		if g.enemies[i].ID <= maxID {
			t.Fatalf("Enemy ID %d reused from the first wave (max was %d)", g.enemies[i].ID, maxID)
		}
	}
}

func TestPauseAndResumeAreDistinct(t *testing.T) {
	g := newTestGame()
	input := core.NewInputFrame()
	g.Step(input)

	input.Set(core.ActionPause)
	g.Step(input)
	if !g.paused {
		t.Fatal("Expected pause to take effect")
	}
	tickAtPause := g.tick

	// Pause again while paused: nothing happens, only resume unpauses.
	input.Clear()
	input.Set(core.ActionPause)
	g.Step(input)
	if !g.paused {
		t.Error("Pause while paused should not resume")
	}

	input.Clear()
	g.Step(input)
	g.Step(input)
	if g.tick != tickAtPause {
		t.Errorf("Ticks advanced while paused: %d -> %d", tickAtPause, g.tick)
	}

	input.Set(core.ActionResume)
	g.Step(input)
	if g.paused {
		t.Fatal("Expected resume to unpause")
	}

	input.Clear()
	g.Step(input)
	if g.tick != tickAtPause+1 {
		t.Errorf("Expected ticks to advance after resume, tick=%d", g.tick)
	}
}

func TestResumeWhilePlayingIsIgnored(t *testing.T) {
	g := newTestGame()
	input := core.NewInputFrame()
	input.Set(core.ActionResume)
	g.Step(input)

	if g.paused {
		t.Error("Resume while playing should not pause")
	}
	if g.tick != 1 {
		t.Errorf("Expected a normal tick, tick=%d", g.tick)
	}
}

func TestResizeKeepsTheRun(t *testing.T) {
	g := newTestGame()
	input := core.NewInputFrame()
	for i := 0; i < 50; i++ {
		g.Step(input)
	}
	tickBefore := g.tick

	g.Resize(100, 30)
	if g.tick != tickBefore {
		t.Errorf("Resize must not reset the run: tick %d -> %d", tickBefore, g.tick)
	}
	if g.fieldW != 100-2*(100/8) {
		t.Errorf("Field width not recomputed: %d", g.fieldW)
	}
	if g.player.X > g.fieldW-playerWidth || g.player.Y > g.fieldH-playerHeight {
		t.Errorf("Player outside the new field: (%d,%d)", g.player.X, g.player.Y)
	}

	g.Step(input)
	if g.tick != tickBefore+1 {
		t.Error("Expected the run to continue after resize")
	}
}

func TestTooSmallWindowPausesStepping(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 40, ScreenH: 15, TickRate: 60})

	if !g.tooSmall {
		t.Fatal("Expected too-small flag for a 40x15 screen")
	}

	input := core.NewInputFrame()
	g.Step(input)
	if g.tick != 0 {
		t.Error("Ticks must not advance while the window is too small")
	}
	if got := g.Snapshot().State; got != StatePausedSmall {
		t.Errorf("Expected %v, got %v", StatePausedSmall, got)
	}

	g.Resize(80, 24)
	g.Step(input)
	if g.tick != 1 {
		t.Error("Expected the run to continue once the window fits")
	}
}

func TestGameOverFreezesState(t *testing.T) {
	g := newTestGame()
	input := core.NewInputFrame()
	g.player.Health = 0
	g.Step(input)

	if !g.gameOver {
		t.Fatal("Expected game over with zero health")
	}
	tickAtDeath := g.tick
	scoreAtDeath := g.score

	for i := 0; i < 20; i++ {
		g.Step(input)
	}
	if g.tick != tickAtDeath || g.score != scoreAtDeath {
		t.Error("State must freeze after game over")
	}
	if !g.State().GameOver {
		t.Error("GameOver flag should be reported")
	}
}

func TestRestartStartsFreshButKeepsIDCounters(t *testing.T) {
	g := newTestGame()
	g.nextEnemyID = 500
	g.score = 40
	g.player.Health = 0
	input := core.NewInputFrame()
	g.Step(input)
	if !g.gameOver {
		t.Fatal("Expected game over")
	}

	input.Set(core.ActionRestart)
	g.Step(input)

	if g.gameOver || g.tick != 0 || g.score != 0 {
		t.Errorf("Expected a fresh run, gameOver=%v tick=%d score=%d", g.gameOver, g.tick, g.score)
	}
	if g.player.Health != g.cfg.Player.Health {
		t.Errorf("Expected full health, got %d", g.player.Health)
	}
	if g.nextEnemyID != 500 {
		t.Errorf("ID counter must survive restarts, got %d", g.nextEnemyID)
	}

	input.Clear()
	for len(g.enemies) == 0 {
		g.Step(input)
	}
	for i := range g.enemies {
		if g.enemies[i].ID <= 500 {
			t.Fatalf("Enemy ID %d reused across restart", g.enemies[i].ID)
		}
	}
}

func TestFireEmitsEvent(t *testing.T) {
	g := newTestGame()
	// Empty field so the shot stays in flight for both ticks.
	g.enemies = nil
	g.formations = nil
	input := core.NewInputFrame()
	input.Set(core.ActionFire)

	res := g.Step(input)

	found := false
	for _, ev := range res.Events {
		if ev == core.EventPlayerFired {
			found = true
		}
	}
	if !found {
		t.Error("Expected a player-fired event on the firing tick")
	}
	if len(g.projectiles) != 1 {
		t.Errorf("Expected one projectile in flight, got %d", len(g.projectiles))
	}

	// Cooldown not elapsed: no event, no shot.
	res = g.Step(input)
	for _, ev := range res.Events {
		if ev == core.EventPlayerFired {
			t.Error("No event expected while the weapon cools down")
		}
	}
}

func TestFormationMembersFollowCenter(t *testing.T) {
	g := newTestGame()
	input := core.NewInputFrame()

	// A few ticks so the formation has swept and descended at least once.
	for i := 0; i < 10; i++ {
		g.Step(input)
	}
	if len(g.formations) == 0 {
		t.Fatal("Expected a live formation")
	}
	f := &g.formations[0]

	// Members lost to collisions drop out of the roster, so check every
	// surviving bound enemy against its own stored offset.
	checked := 0
	for i := range g.enemies {
		e := &g.enemies[i]
		if e.Formation != f.ID {
			continue
		}
		wantX := core.Max(0, f.CenterX+e.OffsetX)
		wantY := core.Max(0, f.CenterY+e.OffsetY)
		if e.X != wantX || e.Y != wantY {
			t.Errorf("Member %d at (%d,%d), expected (%d,%d)", e.ID, e.X, e.Y, wantX, wantY)
		}
		checked++
	}
	if checked == 0 {
		t.Fatal("No bound members left to check")
	}
}

func TestRenderSmoke(t *testing.T) {
	g := newTestGame()
	input := core.NewInputFrame()
	for i := 0; i < 200; i++ {
		if i%5 == 0 {
			input.Set(core.ActionFire)
		}
		g.Step(input)
		input.Clear()
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if len(out) == 0 {
		t.Fatal("Expected non-empty render output")
	}
}
