package experiments

import (
	"fmt"
	"seeker/astar"
	"seeker/engine"
	"seeker/experiments/metrics"
	"seeker/grid"
	"slices"

	"github.com/rs/zerolog/log"
)

func at(row, col int) *grid.Coord {
	return &grid.Coord{Row: row, Col: col}
}

// PathTasks are the built-in A* maps. -1 is a barrier, other weights are
// entry costs.
var PathTasks = map[string]grid.Task{
	"blank": {Rows: 12, Cols: 12, Start: at(0, 0), Goal: at(11, 11)},
	"walls": {
		Weights: [][]int{
			{1, 1, 1, 1, 1, 1, 1, 1},
			{1, -1, -1, -1, -1, -1, -1, 1},
			{1, 1, 1, 1, 1, 1, -1, 1},
			{-1, -1, -1, -1, -1, 1, -1, 1},
			{1, 1, 1, 1, 1, 1, -1, 1},
			{1, -1, -1, -1, -1, -1, -1, 1},
			{1, 1, 1, 1, 1, 1, 1, 1},
		},
		Start: at(2, 0),
		Goal:  at(4, 0),
	},
	"weighted": {
		Weights: [][]int{
			{1, 1, 4, 4, 4, 1},
			{1, 1, 4, 4, 4, 1},
			{1, 1, 4, 4, 4, 1},
			{1, 1, 1, 1, 1, 1},
		},
		Start: at(0, 0),
		Goal:  at(0, 5),
	},
	"moving": {Rows: 10, Cols: 14, Start: at(0, 0), Goal: at(0, 9), EndGoal: at(9, 13)},
	"enclosed": {
		Weights: [][]int{
			{1, 1, 1, 1, 1},
			{1, 1, -1, -1, -1},
			{1, 1, -1, 1, 1},
			{1, 1, -1, 1, 1},
		},
		Start: at(0, 0),
		Goal:  at(3, 4),
	},
}

func PathTaskNames() []string {
	names := make([]string, 0, len(PathTasks))
	for name := range PathTasks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// RunPaths runs the Pathfinder over the named tasks. The goal moves every
// moveRate steps on tasks that have an end goal.
func RunPaths(outDir string, names []string, moveRate int) ([]metrics.PathRecord, error) {
	records := []metrics.PathRecord{}

	log.Info().Msgf("starting A* runs on %v...", names)
	for i, name := range names {
		task, ok := PathTasks[name]
		if !ok {
			return nil, fmt.Errorf("unknown path task %q", name)
		}
		g, err := grid.New(task)
		if err != nil {
			return nil, fmt.Errorf("task %s: %w", name, err)
		}

		result, err := engine.NewPathfinder(g,
			engine.WithMoveRate(moveRate),
			engine.WithSearchOptions(astar.WithMetrics(metrics.NewCollector())),
		).Run()
		if err != nil {
			return nil, fmt.Errorf("task %s: %w", name, err)
		}

		records = append(records, metrics.PathRecord{
			ID:        i + 1,
			Task:      name,
			Status:    result.Status.String(),
			Cost:      result.Cost,
			Steps:     result.Steps,
			GoalMoves: result.GoalMoves,
			Duration:  result.Metric.Duration,
		})
	}
	log.Info().Msgf("completed %d A* runs", len(records))

	if outDir == "" {
		return records, nil
	}

	writer, err := metrics.NewWriter(outDir, "paths")
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WritePathRecords(records)
	if err != nil {
		return nil, fmt.Errorf("failed to write path records: %w", err)
	}
	log.Info().Msgf("stored path records in %s", writer.Dir())

	return records, nil
}
