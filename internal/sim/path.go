package sim

import "github.com/leofattal/smoking-crack/internal/maze"

// pathNode is one frontier entry: the tile reached and the first step
// taken from the search origin to get there.
type pathNode struct {
	tile  maze.Point
	first Direction
	dist  int
}

// NextStep returns the first step of a shortest walkable path from start to
// goal for agent a. Neighbors are explored up, down, left, right so ties
// always break the same way. When start equals goal it returns DirNone and
// true; when goal is unreachable it returns DirNone and false.
func NextStep(g *maze.Grid, start, goal maze.Point, a maze.Agent) (Direction, bool) {
	if start == goal {
		return DirNone, true
	}
	n, ok := search(g, start, a, func(p maze.Point) bool { return p == goal })
	return n.first, ok
}

// Distance returns the walkable shortest-path length from start to goal,
// or -1 when goal is unreachable.
func Distance(g *maze.Grid, start, goal maze.Point, a maze.Agent) int {
	if start == goal {
		return 0
	}
	n, ok := search(g, start, a, func(p maze.Point) bool { return p == goal })
	if !ok {
		return -1
	}
	return n.dist
}

// NearestStep is NextStep toward whichever goal is closest. The returned
// point is the goal reached.
func NearestStep(g *maze.Grid, start maze.Point, goals []maze.Point, a maze.Agent) (Direction, maze.Point, bool) {
	if len(goals) == 0 {
		return DirNone, maze.Point{}, false
	}
	set := make(map[maze.Point]bool, len(goals))
	for _, p := range goals {
		set[p] = true
	}
	if set[start] {
		return DirNone, start, true
	}
	n, ok := search(g, start, a, func(p maze.Point) bool { return set[p] })
	return n.first, n.tile, ok
}

// search runs a breadth-first flood from start and returns the first node
// whose tile satisfies done.
func search(g *maze.Grid, start maze.Point, a maze.Agent, done func(maze.Point) bool) (pathNode, bool) {
	visited := make([]bool, g.Cols()*g.Rows())
	mark := func(p maze.Point) { visited[p.Y*g.Cols()+p.X] = true }
	seen := func(p maze.Point) bool { return visited[p.Y*g.Cols()+p.X] }

	if g.InBounds(start) {
		mark(start)
	}
	queue := make([]pathNode, 0, 64)
	for _, dir := range searchOrder {
		next := dir.Step(start)
		if !g.WalkableFor(next, a) || seen(next) {
			continue
		}
		n := pathNode{tile: next, first: dir, dist: 1}
		if done(next) {
			return n, true
		}
		mark(next)
		queue = append(queue, n)
	}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, dir := range searchOrder {
			next := dir.Step(cur.tile)
			if !g.WalkableFor(next, a) || seen(next) {
				continue
			}
			n := pathNode{tile: next, first: cur.first, dist: cur.dist + 1}
			if done(next) {
				return n, true
			}
			mark(next)
			queue = append(queue, n)
		}
	}
	return pathNode{}, false
}
