package maze

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// reachable flood-fills from start using agent walkability.
func reachable(g *Grid, start Point, a Agent) map[Point]bool {
	seen := map[Point]bool{start: true}
	queue := []Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			n := cur.Add(d[0], d[1])
			if seen[n] || !g.WalkableFor(n, a) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return seen
}

func TestDefaultCatalog_LayoutsAreConnected(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() < 2 {
		t.Fatalf("expected at least 2 built-in layouts, got %d", c.Len())
	}
	for day := 1; day <= c.Len(); day++ {
		g := c.ForDay(day)
		for _, a := range []Agent{AgentPlayer, AgentAdversary} {
			seen := reachable(g, g.PlayerSpawn(), a)
			for _, p := range g.WalkableTiles(a) {
				if !seen[p] {
					t.Fatalf("%s: tile %v unreachable for agent %d", g.Name(), p, a)
				}
			}
		}
		// Every house tile must lead out through the exit.
		for _, h := range g.AdversarySpawns() {
			if !reachable(g, h, AgentAdversary)[g.AdversaryExit()] {
				t.Fatalf("%s: house tile %v cannot reach exit", g.Name(), h)
			}
		}
		if len(g.Tunnels()) != 2 {
			t.Fatalf("%s: expected a tunnel pair", g.Name())
		}
		t.Logf("%s: %d path tiles, %d house tiles, %d consumables",
			g.Name(), len(g.PathTiles()), len(g.AdversarySpawns()), len(g.ConsumableTiles()))
	}
}

func TestCatalog_ForDayCycles(t *testing.T) {
	c := DefaultCatalog()
	if c.ForDay(1) != c.ForDay(1+c.Len()) {
		t.Fatal("ForDay should cycle through layouts")
	}
	if c.ForDay(0) != c.ForDay(1) {
		t.Fatal("non-positive day should clamp to day 1")
	}
	if _, ok := c.ByName("eastside"); !ok {
		t.Fatal("expected built-in layout eastside")
	}
}

func TestLoadCatalog_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mazes.yaml")
	doc := "mazes:\n  - name: tiny\n    rows:\n" +
		"      - \"#####\"\n" +
		"      - \"#.P.#\"\n" +
		"      - \"#.E.#\"\n" +
		"      - \"##H##\"\n" +
		"      - \"#####\"\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if c.Len() != 1 || c.ForDay(3).Name() != "tiny" {
		t.Fatalf("unexpected catalog: len=%d", c.Len())
	}
}

func TestParseCatalog_Errors(t *testing.T) {
	if _, err := ParseCatalog([]byte("mazes: []\n")); !errors.Is(err, ErrMalformedLayout) {
		t.Fatalf("empty catalog: got %v", err)
	}
	if _, err := ParseCatalog([]byte("mazes: [")); err == nil {
		t.Fatal("expected YAML decode error")
	}
}
