package grid

import (
	"fmt"
	"math"
	"seeker/utils"
)

type State int

const (
	Standard State = iota
	Barrier
	Start
	Goal
	Open
	Closed
	Path
)

func (s State) String() string {
	switch s {
	case Standard:
		return "STANDARD"
	case Barrier:
		return "BARRIER"
	case Start:
		return "START"
	case Goal:
		return "GOAL"
	case Open:
		return "OPEN"
	case Closed:
		return "CLOSED"
	case Path:
		return "PATH"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// IsSearchMark reports whether s was set by a search rather than by the map.
func (s State) IsSearchMark() bool {
	return s == Open || s == Closed || s == Path
}

// Coord identifies a cell. Two cells are the same cell iff their coords are equal.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func (c Coord) Equal(other Coord) bool {
	return c.Row == other.Row && c.Col == other.Col
}

// Manhattan returns |r1-r2| + |c1-c2|.
func Manhattan(a, b Coord) int {
	return utils.Abs(a.Row-b.Row) + utils.Abs(a.Col-b.Col)
}

// NoCell is the index used for a missing cell, e.g. a cell without a parent.
const NoCell = -1

// Cell holds static map attributes (coord, weight, classification) and the
// scores an A* search writes in place. Parent is an index into the owning grid.
type Cell struct {
	Coord  Coord
	Weight int
	State  State
	G      float64
	H      float64
	F      float64
	Parent int
}

func newCell(coord Coord, state State, weight int) Cell {
	c := Cell{Coord: coord, State: state, Weight: weight}
	c.ResetScores()
	return c
}

// ResetScores restores g, h, f to +Inf and drops the parent.
func (c *Cell) ResetScores() {
	c.G = math.Inf(1)
	c.H = math.Inf(1)
	c.F = c.G + c.H
	c.Parent = NoCell
}
