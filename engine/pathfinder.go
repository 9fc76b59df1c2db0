package engine

import (
	"seeker/astar"
	"seeker/experiments/metrics"
	"seeker/grid"
	"seeker/meta"

	"github.com/rs/zerolog/log"
)

type PathOption func(p *Pathfinder)

// WithMoveRate moves the goal one cell toward the end goal every rate ticks.
// Zero keeps the goal still.
func WithMoveRate(rate int) PathOption {
	return func(p *Pathfinder) {
		if rate >= 0 {
			p.moveRate = rate
		}
	}
}

// WithMaxSteps stops the run after the given number of A* steps.
func WithMaxSteps(steps int) PathOption {
	return func(p *Pathfinder) {
		if steps > 0 {
			p.maxSteps = steps
		}
	}
}

func WithSearchOptions(options ...astar.Option) PathOption {
	return func(p *Pathfinder) {
		p.searchOptions = append(p.searchOptions, options...)
	}
}

type PathResult struct {
	Status    astar.Status
	Path      []grid.Coord // goal to start
	Cost      float64
	Steps     int
	GoalMoves int
	Metric    metrics.SearchMetric
}

// Pathfinder drives one A* search a step at a time, the way a render loop
// would, and relocates the goal between steps.
type Pathfinder struct {
	grid          *grid.Grid
	moveRate      int
	maxSteps      int
	searchOptions []astar.Option
}

func NewPathfinder(g *grid.Grid, options ...PathOption) *Pathfinder {
	p := &Pathfinder{
		grid:     g,
		moveRate: meta.MOVE_RATE,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Run cleans the grid, then ticks until the search terminates or the step
// limit is hit. On every moveRate-th tick the goal moves before the step.
func (p *Pathfinder) Run() (PathResult, error) {
	p.grid.Clean()
	search, err := astar.New(p.grid, p.searchOptions...)
	if err != nil {
		return PathResult{}, err
	}

	result := PathResult{Status: astar.Continuing}
	for tick := 1; result.Status == astar.Continuing; tick++ {
		if p.maxSteps > 0 && search.Steps() >= p.maxSteps {
			log.Warn().Msgf("A* stopped after %d steps without a result", search.Steps())
			break
		}
		if p.moveRate > 0 && tick%p.moveRate == 0 && p.grid.MoveGoal() {
			result.GoalMoves++
			log.Debug().Msgf("goal moved to %v", p.grid.Cell(p.grid.Goal()).Coord)
		}
		result.Status = search.Advance()
	}

	result.Path = search.Path()
	result.Cost = search.Cost()
	result.Steps = search.Steps()
	result.Metric = search.Metrics()

	log.Info().Msgf("A* %s after %d steps, %d goal moves, path cost %.0f", result.Status, result.Steps, result.GoalMoves, result.Cost)
	return result, nil
}
