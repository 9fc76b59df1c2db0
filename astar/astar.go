// Package astar implements a steppable A* search over a grid.Grid. Each call
// to Advance expands exactly one cell, so a driver can interleave steps with
// map edits such as goal relocation.
package astar

import (
	"errors"
	"seeker/experiments/metrics"
	"seeker/grid"
)

var (
	ErrNoStart = errors.New("grid has no start cell")
	ErrNoGoal  = errors.New("grid has no goal cell")
)

type Status int

const (
	Continuing Status = iota
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Continuing:
		return "continuing"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Heuristic estimates the remaining cost between two cells.
type Heuristic func(from, to grid.Coord) float64

// Manhattan is admissible and consistent on 4-connected grids with weights >= 1.
func Manhattan(from, to grid.Coord) float64 {
	return float64(grid.Manhattan(from, to))
}

type Option func(s *Search)

func WithHeuristic(h Heuristic) Option {
	return func(s *Search) {
		if h != nil {
			s.heuristic = h
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *Search) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

// Search owns one run over a grid. The grid is mutated in place; call
// Grid.Clean before starting another search on the same grid.
type Search struct {
	grid      *grid.Grid
	heuristic Heuristic
	metrics   metrics.Collector
	open      []int
	inOpen    []bool
	goal      int
	path      []grid.Coord
	status    Status
	steps     int
}

// New seeds the open list with the start cell.
func New(g *grid.Grid, options ...Option) (*Search, error) {
	if g.Start() == grid.NoCell {
		return nil, ErrNoStart
	}
	if g.Goal() == grid.NoCell {
		return nil, ErrNoGoal
	}

	s := &Search{
		grid:      g,
		heuristic: Manhattan,
		metrics:   metrics.NewDummyCollector(),
		inOpen:    make([]bool, g.Len()),
		goal:      g.Goal(),
		status:    Continuing,
	}
	for _, option := range options {
		option(s)
	}
	s.metrics.Start("astar", 0)

	start := g.Cell(g.Start())
	start.G = 0
	start.H = s.h(start.Coord)
	start.F = start.G + start.H
	s.push(g.Start())
	return s, nil
}

func (s *Search) h(c grid.Coord) float64 {
	return s.heuristic(c, s.grid.Cell(s.goal).Coord)
}

func (s *Search) push(i int) {
	s.open = append(s.open, i)
	s.inOpen[i] = true
}

// popMin removes the open cell with the lowest f. Ties go to the cell that
// entered the open list first.
func (s *Search) popMin() int {
	best := 0
	for i := 1; i < len(s.open); i++ {
		if s.grid.Cell(s.open[i]).F < s.grid.Cell(s.open[best]).F {
			best = i
		}
	}
	current := s.open[best]
	s.open = append(s.open[:best], s.open[best+1:]...)
	s.inOpen[current] = false
	return current
}

// Advance performs one expansion step. Once the search has succeeded or
// failed, further calls return the same status without doing any work.
func (s *Search) Advance() Status {
	if s.status != Continuing {
		return s.status
	}
	if s.grid.Goal() == grid.NoCell {
		s.status = Failed
		return s.status
	}
	if s.grid.Goal() != s.goal {
		s.Retarget()
	}
	if len(s.open) == 0 {
		s.status = Failed
		return s.status
	}

	s.steps++
	s.metrics.AddNode()

	current := s.popMin()
	cell := s.grid.Cell(current)
	if cell.State != grid.Start && cell.State != grid.Goal {
		s.grid.Mark(current, grid.Closed)
	}

	if current == s.goal {
		s.reconstruct(current)
		s.status = Succeeded
		return s.status
	}

	for _, n := range s.grid.Neighbors(current) {
		neighbor := s.grid.Cell(n)
		switch neighbor.State {
		case grid.Closed, grid.Barrier, grid.Start:
			continue
		}

		g := cell.G + float64(neighbor.Weight)
		if g >= neighbor.G {
			continue
		}
		neighbor.Parent = current
		neighbor.G = g
		neighbor.H = s.h(neighbor.Coord)
		neighbor.F = neighbor.G + neighbor.H

		if !s.inOpen[n] {
			s.push(n)
			if neighbor.State != grid.Goal {
				s.grid.Mark(n, grid.Open)
			}
		}
	}
	return s.status
}

func (s *Search) reconstruct(goal int) {
	for i := goal; i != grid.NoCell; i = s.grid.Cell(i).Parent {
		cell := s.grid.Cell(i)
		if cell.State != grid.Start && cell.State != grid.Goal {
			s.grid.Mark(i, grid.Path)
		}
		s.path = append(s.path, cell.Coord)
	}
}

// Retarget points the search at the grid's current goal and recomputes h and
// f for every open cell. Closed cells are not reopened, except a new goal that
// was already reached: it goes back on the open list so the next steps can
// finish on it.
func (s *Search) Retarget() {
	old := s.goal
	s.goal = s.grid.Goal()
	if s.goal == grid.NoCell || s.goal == old {
		return
	}
	if old != grid.NoCell && s.inOpen[old] && s.grid.Cell(old).State == grid.Standard {
		s.grid.Mark(old, grid.Open)
	}

	goal := s.grid.Cell(s.goal)
	if !s.inOpen[s.goal] && goal.Parent != grid.NoCell {
		s.push(s.goal)
	}

	for _, i := range s.open {
		cell := s.grid.Cell(i)
		cell.H = s.h(cell.Coord)
		cell.F = cell.G + cell.H
	}
}

// Solve advances until the search terminates.
func (s *Search) Solve() Status {
	for s.Advance() == Continuing {
	}
	return s.status
}

func (s *Search) Status() Status { return s.status }

// Path returns the reconstructed path from goal back to start, inclusive.
// It is empty unless the search succeeded.
func (s *Search) Path() []grid.Coord { return s.path }

// Cost returns the goal's g once the search has succeeded.
func (s *Search) Cost() float64 {
	if s.status != Succeeded {
		return 0
	}
	return s.grid.Cell(s.goal).G
}

// Steps returns how many cells have been expanded.
func (s *Search) Steps() int { return s.steps }

// OpenLen returns the current frontier size.
func (s *Search) OpenLen() int { return len(s.open) }

// Metrics returns the collector's view of the search so far.
func (s *Search) Metrics() metrics.SearchMetric { return s.metrics.Complete() }
