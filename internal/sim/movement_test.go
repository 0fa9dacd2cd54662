package sim

import (
	"testing"

	"github.com/leofattal/smoking-crack/internal/maze"
)

func TestTryCommit_RejectsWallsAndTransit(t *testing.T) {
	g := corridorGrid(t)
	var m Mover
	m.Place(g.PlayerSpawn())
	m.Speed = 4

	if TryCommit(&m, g, maze.AgentPlayer, DirUp) {
		t.Fatal("committing into a wall should fail")
	}
	if m.InTransit || m.Target != m.Current {
		t.Fatal("failed commit must not change the mover")
	}
	if TryCommit(&m, g, maze.AgentPlayer, DirNone) {
		t.Fatal("DirNone should never commit")
	}
	if !TryCommit(&m, g, maze.AgentPlayer, DirRight) {
		t.Fatal("open tile should commit")
	}
	if !m.InTransit || m.Target != (maze.Point{X: 2, Y: 1}) || m.Facing != DirRight {
		t.Fatalf("unexpected mover after commit: %+v", m)
	}
	if TryCommit(&m, g, maze.AgentPlayer, DirDown) {
		t.Fatal("cannot recommit while in transit")
	}
}

func TestTryCommit_HouseIsAdversaryOnly(t *testing.T) {
	g := corridorGrid(t)
	var m Mover
	m.Place(g.AdversaryExit())
	if TryCommit(&m, g, maze.AgentPlayer, DirDown) {
		t.Fatal("player must not enter the house")
	}
	if !TryCommit(&m, g, maze.AgentAdversary, DirDown) {
		t.Fatal("adversary should enter the house")
	}
}

func TestAdvance_SnapsExactly(t *testing.T) {
	g := corridorGrid(t)
	var m Mover
	m.Place(g.PlayerSpawn())
	m.Speed = 4 // 250 ms per tile

	TryCommit(&m, g, maze.AgentPlayer, DirRight)
	for i := 0; i < 3; i++ {
		if arrived, _ := Advance(&m, g, 62.5); arrived {
			t.Fatalf("arrived early after %d ticks", i+1)
		}
		if m.Current != g.PlayerSpawn() {
			t.Fatal("current tile must not change mid-transit")
		}
	}
	arrived, teleported := Advance(&m, g, 62.5)
	if !arrived || teleported {
		t.Fatalf("expected plain arrival, got arrived=%v teleported=%v", arrived, teleported)
	}
	if m.Current != (maze.Point{X: 2, Y: 1}) || m.X != 2 || m.Y != 1 || m.InTransit {
		t.Fatalf("mover did not snap: %+v", m)
	}
}

func TestAdvance_SnapsWithUnevenTicks(t *testing.T) {
	g := corridorGrid(t)
	speeds := []float64{2.96875, 4.0625, 4.0625 * 1.4, 4.0625 * 2.8, 3.3}
	for _, speed := range speeds {
		var m Mover
		m.Place(g.PlayerSpawn())
		m.Speed = speed
		TryCommit(&m, g, maze.AgentPlayer, DirRight)

		need := 1000 / speed
		elapsed := 0.0
		for m.InTransit {
			Advance(&m, g, 1000.0/60.0)
			elapsed += 1000.0 / 60.0
			if elapsed > need+1000.0/60.0+1e-6 {
				t.Fatalf("speed %.3f: still in transit after %.1fms (need %.1fms)", speed, elapsed, need)
			}
		}
		if m.X != 2 || m.Y != 1 || m.Current != m.Target {
			t.Fatalf("speed %.3f: drift after arrival: %+v", speed, m)
		}
	}
}

func TestAdvance_LongTickDoesNotOvershoot(t *testing.T) {
	g := corridorGrid(t)
	var m Mover
	m.Place(g.PlayerSpawn())
	m.Speed = 10
	TryCommit(&m, g, maze.AgentPlayer, DirRight)
	Advance(&m, g, 5000)
	if m.Current != (maze.Point{X: 2, Y: 1}) || m.X != 2 {
		t.Fatalf("a long tick must stop on the target tile: %+v", m)
	}
}

func TestAdvance_TunnelTeleports(t *testing.T) {
	g := maze.MustGrid("tunnel", []string{
		"#######",
		"#..E..#",
		"T..P..T",
		"###H###",
	})
	var m Mover
	m.Place(maze.Point{X: 1, Y: 2})
	m.Speed = 4
	TryCommit(&m, g, maze.AgentPlayer, DirLeft)
	for i := 0; i < 4; i++ {
		Advance(&m, g, 62.5)
	}
	if m.Current != (maze.Point{X: 6, Y: 2}) || m.InTransit {
		t.Fatalf("expected teleport to (6,2) at rest, got %+v", m)
	}
	if m.Facing != DirLeft {
		t.Fatalf("teleport must preserve facing, got %s", m.Facing)
	}
	if !TryCommit(&m, g, maze.AgentPlayer, m.Facing) || m.Target != (maze.Point{X: 5, Y: 2}) {
		t.Fatalf("should keep moving left from the far tunnel, got %+v", m)
	}
}

func TestCheckMover_FlagsBrokenTransit(t *testing.T) {
	var m Mover
	m.Place(maze.Point{X: 3, Y: 3})
	if err := checkMover("p", &m); err != nil {
		t.Fatalf("resting mover should be valid: %v", err)
	}
	m.InTransit = true
	if err := checkMover("p", &m); err == nil {
		t.Fatal("in transit with current == target must be an invariant error")
	}
}

func TestDirection_Opposite(t *testing.T) {
	for _, d := range searchOrder {
		if d.Opposite().Opposite() != d {
			t.Fatalf("%s: opposite is not an involution", d)
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Fatalf("%s: deltas do not cancel", d)
		}
		if ParseDirection(d.String()) != d {
			t.Fatalf("%s: parse round trip failed", d)
		}
	}
	if DirNone.Opposite() != DirNone {
		t.Fatal("none has no opposite")
	}
}
