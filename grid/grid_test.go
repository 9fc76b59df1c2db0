package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func coord(row, col int) *Coord {
	return &Coord{Row: row, Col: col}
}

func TestNew(t *testing.T) {
	t.Run("building a blank map", func(t *testing.T) {
		g, err := New(BlankTask(3, 4, Coord{0, 0}, Coord{2, 3}))
		require.NoError(t, err)

		require.Equal(t, 3, g.Rows())
		require.Equal(t, 4, g.Cols())
		require.Equal(t, 12, g.Len())
		require.Equal(t, 0, g.Start(), "Start should be indexed row-major")
		require.Equal(t, 11, g.Goal(), "Goal should be indexed row-major")
		require.Equal(t, g.Goal(), g.EndGoal(), "End goal should default to the goal")
		for i := 0; i < g.Len(); i++ {
			cell := g.Cell(i)
			require.Equal(t, 1, cell.Weight, "Blank cells should weigh 1")
			require.True(t, math.IsInf(cell.G, 1), "g should start at +Inf")
			require.True(t, math.IsInf(cell.F, 1), "f should start at +Inf")
			require.Equal(t, NoCell, cell.Parent, "Cells should start without a parent")
		}
	})

	t.Run("building a weighted map", func(t *testing.T) {
		g, err := New(Task{
			Weights: [][]int{
				{1, 2, -1},
				{1, 3, 1},
			},
			Start: coord(0, 0),
			Goal:  coord(1, 2),
		})
		require.NoError(t, err)

		cell, err := g.At(Coord{0, 2})
		require.NoError(t, err)
		require.Equal(t, Barrier, cell.State, "-1 should become a barrier")

		cell, err = g.At(Coord{1, 1})
		require.NoError(t, err)
		require.Equal(t, 3, cell.Weight)
		require.Equal(t, Standard, cell.State)
	})

	t.Run("rejecting malformed tasks", func(t *testing.T) {
		tasks := map[string]Task{
			"empty map":        {Rows: 0, Cols: 3},
			"ragged weights":   {Weights: [][]int{{1, 1}, {1}}},
			"zero weight":      {Weights: [][]int{{1, 0}}},
			"start off map":    {Rows: 2, Cols: 2, Start: coord(2, 0)},
			"goal on barrier":  {Weights: [][]int{{1, -1}}, Goal: coord(0, 1)},
			"start equal goal": {Rows: 2, Cols: 2, Start: coord(1, 1), Goal: coord(1, 1)},
			"end goal off map": {Rows: 2, Cols: 2, Goal: coord(0, 0), EndGoal: coord(5, 5)},
		}
		for name, task := range tasks {
			_, err := New(task)
			require.ErrorIs(t, err, ErrInvalidTask, name)
		}
	})
}

func TestNeighbors(t *testing.T) {
	g, err := New(Task{Rows: 3, Cols: 3})
	require.NoError(t, err)

	t.Run("interior cell has four neighbours above, below, left, right", func(t *testing.T) {
		require.Equal(t, []int{1, 7, 3, 5}, g.Neighbors(4))
	})

	t.Run("corner cells have two neighbours", func(t *testing.T) {
		require.Equal(t, []int{3, 1}, g.Neighbors(0))
		require.Equal(t, []int{5, 7}, g.Neighbors(8))
	})
}

func TestSetState(t *testing.T) {
	t.Run("keeping a single start and goal", func(t *testing.T) {
		g, err := New(BlankTask(2, 2, Coord{0, 0}, Coord{1, 1}))
		require.NoError(t, err)

		require.NoError(t, g.SetState(Coord{0, 1}, Start))
		require.NoError(t, g.SetState(Coord{1, 0}, Goal))

		require.Equal(t, 1, g.Start())
		require.Equal(t, 2, g.Goal())
		require.Equal(t, Standard, g.Cell(0).State, "Old start should be demoted")
		require.Equal(t, Standard, g.Cell(3).State, "Old goal should be demoted")
	})

	t.Run("overwriting the start clears it", func(t *testing.T) {
		g, err := New(BlankTask(2, 2, Coord{0, 0}, Coord{1, 1}))
		require.NoError(t, err)

		require.NoError(t, g.SetState(Coord{0, 0}, Barrier))
		require.Equal(t, NoCell, g.Start())
	})

	t.Run("clearing a barrier restores a usable weight", func(t *testing.T) {
		g, err := New(Task{Weights: [][]int{{1, -1}}})
		require.NoError(t, err)

		require.NoError(t, g.SetState(Coord{0, 1}, Standard))
		require.Equal(t, 1, g.Cell(1).Weight)
	})

	t.Run("rejecting coordinates off the map", func(t *testing.T) {
		g, err := New(Task{Rows: 2, Cols: 2})
		require.NoError(t, err)

		require.ErrorIs(t, g.SetState(Coord{-1, 0}, Barrier), ErrOutOfBounds)
		require.ErrorIs(t, g.SetWeight(Coord{2, 0}, 3), ErrOutOfBounds)
		require.ErrorIs(t, g.SetWeight(Coord{0, 0}, 0), ErrInvalidWeight)
	})
}

func TestMoveGoal(t *testing.T) {
	t.Run("closing the row gap before the column gap", func(t *testing.T) {
		g, err := New(Task{Rows: 4, Cols: 4, Goal: coord(0, 0), EndGoal: coord(2, 2)})
		require.NoError(t, err)

		var visited []Coord
		for g.MoveGoal() {
			visited = append(visited, g.Cell(g.Goal()).Coord)
		}

		require.Equal(t, []Coord{{1, 0}, {2, 0}, {2, 1}, {2, 2}}, visited)
		require.Equal(t, Standard, g.Cell(0).State, "Old goal should become standard")
		require.Equal(t, Goal, g.Cell(10).State)
	})

	t.Run("moving up and left", func(t *testing.T) {
		g, err := New(Task{Rows: 3, Cols: 3, Goal: coord(2, 2), EndGoal: coord(1, 0)})
		require.NoError(t, err)

		require.True(t, g.MoveGoal())
		require.Equal(t, Coord{1, 2}, g.Cell(g.Goal()).Coord)
		require.True(t, g.MoveGoal())
		require.Equal(t, Coord{1, 1}, g.Cell(g.Goal()).Coord)
	})

	t.Run("staying put without an end goal", func(t *testing.T) {
		g, err := New(BlankTask(2, 2, Coord{0, 0}, Coord{1, 1}))
		require.NoError(t, err)

		require.False(t, g.MoveGoal())
		require.Equal(t, 3, g.Goal())
	})
}

func TestCleanAndReset(t *testing.T) {
	g, err := New(BlankTask(2, 2, Coord{0, 0}, Coord{1, 1}))
	require.NoError(t, err)

	g.Mark(1, Closed)
	g.Mark(2, Path)
	g.Cell(1).G, g.Cell(1).Parent = 1, 0
	require.NoError(t, g.SetState(Coord{0, 1}, Barrier))
	g.Mark(2, Open)

	t.Run("cleaning keeps map edits", func(t *testing.T) {
		g.Clean()

		require.Equal(t, Barrier, g.Cell(1).State, "Map edits should survive a clean")
		require.Equal(t, Standard, g.Cell(2).State, "Search marks should be cleared")
		require.True(t, math.IsInf(g.Cell(1).G, 1))
		require.Equal(t, NoCell, g.Cell(1).Parent)
		require.Equal(t, Start, g.Cell(0).State)
		require.Equal(t, Goal, g.Cell(3).State)
	})

	t.Run("resetting restores the task", func(t *testing.T) {
		g.Reset()

		require.Equal(t, Standard, g.Cell(1).State, "Map edits should be discarded")
	})
}

func TestManhattan(t *testing.T) {
	require.Equal(t, 4, Manhattan(Coord{0, 0}, Coord{2, 2}))
	require.Equal(t, 7, Manhattan(Coord{5, 1}, Coord{1, 4}))
	require.Equal(t, 0, Manhattan(Coord{3, 3}, Coord{3, 3}))
	require.True(t, Coord{1, 2}.Equal(Coord{1, 2}))
}
