package grid

// BarrierWeight in a task weight matrix marks an impassable cell.
const BarrierWeight = -1

// Task describes a map: either a blank Rows x Cols grid of weight 1, or the
// given weight matrix. EndGoal is where a moving goal travels to; nil keeps the
// goal in place.
type Task struct {
	Rows    int
	Cols    int
	Weights [][]int
	Start   *Coord
	Goal    *Coord
	EndGoal *Coord
}

// BlankTask returns a task for an empty rows x cols map with the given endpoints.
func BlankTask(rows, cols int, start, goal Coord) Task {
	return Task{Rows: rows, Cols: cols, Start: &start, Goal: &goal}
}

func (t Task) dimensions() (rows, cols int) {
	if len(t.Weights) == 0 {
		return t.Rows, t.Cols
	}
	return len(t.Weights), len(t.Weights[0])
}

func (t Task) weightAt(row, col int) int {
	if len(t.Weights) == 0 {
		return 1
	}
	return t.Weights[row][col]
}
