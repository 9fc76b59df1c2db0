package grid

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds   = errors.New("coordinate out of bounds")
	ErrInvalidWeight = errors.New("weight must be at least 1")
	ErrInvalidTask   = errors.New("invalid task")
)

// Grid is a flat, row-major arena of cells. Cells refer to each other (parents,
// neighbours) by index, never by pointer.
type Grid struct {
	task    Task
	rows    int
	cols    int
	cells   []Cell
	start   int
	goal    int
	endGoal int
}

// New validates the task and builds its map.
func New(task Task) (*Grid, error) {
	if err := validateTask(task); err != nil {
		return nil, err
	}
	g := &Grid{task: task}
	g.Reset()
	return g, nil
}

func validateTask(task Task) error {
	rows, cols := task.dimensions()
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: map must have at least one row and column, got %dx%d", ErrInvalidTask, rows, cols)
	}
	for r, line := range task.Weights {
		if len(line) != cols {
			return fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalidTask, r, len(line), cols)
		}
		for c, w := range line {
			if w != BarrierWeight && w < 1 {
				return fmt.Errorf("%w: weight %d at (%d,%d)", ErrInvalidTask, w, r, c)
			}
		}
	}

	inBounds := func(c Coord) bool {
		return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
	}
	for name, pos := range map[string]*Coord{"start": task.Start, "goal": task.Goal, "end goal": task.EndGoal} {
		if pos == nil {
			continue
		}
		if !inBounds(*pos) {
			return fmt.Errorf("%w: %s %v outside %dx%d map", ErrInvalidTask, name, *pos, rows, cols)
		}
		if name != "end goal" && task.weightAt(pos.Row, pos.Col) == BarrierWeight {
			return fmt.Errorf("%w: %s %v is a barrier", ErrInvalidTask, name, *pos)
		}
	}
	if task.Start != nil && task.Goal != nil && task.Start.Equal(*task.Goal) {
		return fmt.Errorf("%w: start and goal are both %v", ErrInvalidTask, *task.Start)
	}
	return nil
}

// Reset rebuilds the map from its task, discarding edits and search state.
func (g *Grid) Reset() {
	g.rows, g.cols = g.task.dimensions()
	g.cells = make([]Cell, 0, g.rows*g.cols)
	g.start, g.goal, g.endGoal = NoCell, NoCell, NoCell

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			weight := g.task.weightAt(r, c)
			state := Standard
			if weight == BarrierWeight {
				state = Barrier
			}
			g.cells = append(g.cells, newCell(Coord{Row: r, Col: c}, state, weight))
		}
	}

	if g.task.Start != nil {
		g.setState(g.mustIndex(*g.task.Start), Start)
	}
	if g.task.Goal != nil {
		g.setState(g.mustIndex(*g.task.Goal), Goal)
	}
	switch {
	case g.task.EndGoal != nil:
		g.endGoal = g.mustIndex(*g.task.EndGoal)
	case g.task.Goal != nil:
		g.endGoal = g.goal
	}
}

// Clean clears everything a search wrote: Open, Closed and Path cells go back to
// Standard and every cell's scores and parent are reset. Map edits are kept.
func (g *Grid) Clean() {
	for i := range g.cells {
		cell := &g.cells[i]
		if cell.State.IsSearchMark() {
			cell.State = Standard
		}
		cell.ResetScores()
	}
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Len() int  { return len(g.cells) }

// Index maps a coordinate to its arena index.
func (g *Grid) Index(c Coord) (int, bool) {
	if c.Row < 0 || c.Row >= g.rows || c.Col < 0 || c.Col >= g.cols {
		return NoCell, false
	}
	return c.Row*g.cols + c.Col, true
}

func (g *Grid) mustIndex(c Coord) int {
	i, ok := g.Index(c)
	if !ok {
		panic(fmt.Sprintf("coordinate %v outside %dx%d map", c, g.rows, g.cols))
	}
	return i
}

// Cell returns the cell at arena index i. The pointer stays valid until Reset.
func (g *Grid) Cell(i int) *Cell {
	return &g.cells[i]
}

// At returns the cell at c.
func (g *Grid) At(c Coord) (*Cell, error) {
	i, ok := g.Index(c)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	return &g.cells[i], nil
}

// Neighbors returns the 4-connected neighbours of cell i in the order above,
// below, left, right. Barriers are included; callers decide what to skip.
func (g *Grid) Neighbors(i int) []int {
	row, col := i/g.cols, i%g.cols
	neighbors := make([]int, 0, 4)
	if row > 0 {
		neighbors = append(neighbors, i-g.cols)
	}
	if row < g.rows-1 {
		neighbors = append(neighbors, i+g.cols)
	}
	if col > 0 {
		neighbors = append(neighbors, i-1)
	}
	if col < g.cols-1 {
		neighbors = append(neighbors, i+1)
	}
	return neighbors
}

// Start returns the index of the start cell, or NoCell.
func (g *Grid) Start() int { return g.start }

// Goal returns the index of the goal cell, or NoCell.
func (g *Grid) Goal() int { return g.goal }

// EndGoal returns the index the goal moves toward, or NoCell.
func (g *Grid) EndGoal() int { return g.endGoal }

// SetState reclassifies the cell at c. There is at most one Start and one Goal:
// assigning either demotes the previous holder to Standard.
func (g *Grid) SetState(c Coord, state State) error {
	i, ok := g.Index(c)
	if !ok {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.setState(i, state)
	return nil
}

// Mark sets the state of cell i. Searches use it for Open, Closed and Path.
func (g *Grid) Mark(i int, state State) {
	g.setState(i, state)
}

func (g *Grid) setState(i int, state State) {
	cell := &g.cells[i]
	switch cell.State {
	case Start:
		g.start = NoCell
	case Goal:
		g.goal = NoCell
	}

	switch state {
	case Start:
		if g.start != NoCell {
			g.cells[g.start].State = Standard
		}
		g.start = i
	case Goal:
		if g.goal != NoCell {
			g.cells[g.goal].State = Standard
		}
		g.goal = i
	}

	if state != Barrier && cell.Weight < 1 {
		cell.Weight = 1
	}
	cell.State = state
}

// SetWeight sets the cost of entering the cell at c.
func (g *Grid) SetWeight(c Coord, weight int) error {
	if weight < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWeight, weight)
	}
	cell, err := g.At(c)
	if err != nil {
		return err
	}
	cell.Weight = weight
	return nil
}

// SetEndGoal sets where MoveGoal steers the goal.
func (g *Grid) SetEndGoal(c Coord) error {
	i, ok := g.Index(c)
	if !ok {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.endGoal = i
	return nil
}

// MoveGoal moves the goal one cell toward the end goal, closing the row gap
// before the column gap. The old goal becomes Standard. It reports whether the
// goal moved.
func (g *Grid) MoveGoal() bool {
	if g.goal == NoCell || g.endGoal == NoCell || g.goal == g.endGoal {
		return false
	}

	from := g.cells[g.goal].Coord
	to := g.cells[g.endGoal].Coord
	next := from
	switch {
	case from.Row < to.Row:
		next.Row++
	case from.Row > to.Row:
		next.Row--
	case from.Col < to.Col:
		next.Col++
	default:
		next.Col--
	}

	g.setState(g.goal, Standard)
	g.setState(g.mustIndex(next), Goal)
	return true
}
