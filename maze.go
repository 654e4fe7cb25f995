package qsearch

import (
	"math/rand/v2"
	"strings"
)

// Cell addresses one square of a maze grid.
type Cell struct {
	X int
	Y int
}

func (c Cell) manhattan(other Cell) int {
	dx := c.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := c.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Maze is the external collaborator the oracle scores paths against. The
// core never generates or renders mazes itself; it only needs a validity
// view of the grid.
type Maze interface {
	IsWall(c Cell) bool
	Goal(c Cell) bool
	Start() Cell
	Dimensions() (width, height int)
}

// Grid is a simple randomly generated maze: each cell is free with a
// given probability, the start corner is always free, and the goal sits
// in the opposite corner.
type Grid struct {
	walls  [][]bool
	width  int
	height int
	start  Cell
	goal   Cell
}

// GenerateGrid builds a size×size grid where each cell is free with
// probability freeProb. There is no guarantee the goal is reachable;
// callers wanting a solvable instance should regenerate or raise
// freeProb.
func GenerateGrid(size int, freeProb float64, rng *rand.Rand) *Grid {
	walls := make([][]bool, size)
	for y := range walls {
		walls[y] = make([]bool, size)
		for x := range walls[y] {
			walls[y][x] = rng.Float64() >= freeProb
		}
	}
	g := &Grid{
		walls:  walls,
		width:  size,
		height: size,
		start:  Cell{0, 0},
		goal:   Cell{size - 1, size - 1},
	}
	g.walls[g.start.Y][g.start.X] = false
	g.walls[g.goal.Y][g.goal.X] = false
	return g
}

// OpenGrid builds a size×size grid with no walls at all, useful for
// experiments that only exercise path-length search.
func OpenGrid(size int) *Grid {
	walls := make([][]bool, size)
	for y := range walls {
		walls[y] = make([]bool, size)
	}
	return &Grid{
		walls:  walls,
		width:  size,
		height: size,
		start:  Cell{0, 0},
		goal:   Cell{size - 1, size - 1},
	}
}

func (g *Grid) IsWall(c Cell) bool {
	if c.X < 0 || c.Y < 0 || c.X >= g.width || c.Y >= g.height {
		return true
	}
	return g.walls[c.Y][c.X]
}

func (g *Grid) Goal(c Cell) bool {
	return c == g.goal
}

func (g *Grid) Start() Cell {
	return g.start
}

func (g *Grid) Dimensions() (int, int) {
	return g.width, g.height
}

// String renders the grid for console reporting: '#' walls, '.' free
// cells, 'S' start, 'E' goal.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Cell{x, y}
			switch {
			case c == g.start:
				sb.WriteByte('S')
			case c == g.goal:
				sb.WriteByte('E')
			case g.walls[y][x]:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

/*
MazeOracle scores a candidate as a walk through the maze.

The snapshot decodes to a move sequence, two bits per move. The walk
starts at the maze's start cell and applies moves in order; a move into a
wall or off the grid halts the walk at the last legal cell. Reaching the
goal at any point scores 1.0. Otherwise the score is the fraction of the
start-to-goal Manhattan distance the walk closed, scaled to 0.9 so an
unsolved candidate can never cross a 1.0 goal threshold.
*/
type MazeOracle struct {
	maze    Maze
	goal    Cell
	maxDist int
}

func NewMazeOracle(maze Maze) *MazeOracle {
	start := maze.Start()
	w, h := maze.Dimensions()
	goal := Cell{w - 1, h - 1}

	// Locate the goal by scanning; Maze only exposes a predicate.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if maze.Goal(Cell{x, y}) {
				goal = Cell{x, y}
			}
		}
	}

	maxDist := start.manhattan(goal)
	if maxDist == 0 {
		maxDist = 1
	}
	return &MazeOracle{maze: maze, goal: goal, maxDist: maxDist}
}

func (mo *MazeOracle) Score(s Snapshot) (float64, error) {
	moves, err := s.Moves()
	if err != nil {
		return WorstScore, err
	}

	pos := mo.maze.Start()
	if mo.maze.Goal(pos) {
		return 1.0, nil
	}

	for _, m := range moves {
		next := pos
		switch m {
		case MoveRight:
			next.X++
		case MoveDown:
			next.Y++
		case MoveLeft:
			next.X--
		case MoveUp:
			next.Y--
		}
		if mo.maze.IsWall(next) {
			// Collision ends the walk; the candidate is scored on
			// how far it got.
			break
		}
		pos = next
		if mo.maze.Goal(pos) {
			return 1.0, nil
		}
	}

	remaining := pos.manhattan(mo.goal)
	progress := 1.0 - float64(remaining)/float64(mo.maxDist)
	if progress < 0 {
		progress = 0
	}
	return progress * 0.9, nil
}
