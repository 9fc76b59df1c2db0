package engine

import (
	"seeker/experiments/metrics"
	"seeker/meta"
)

const MaxTurns = meta.MAX_TURNS

type Outcome string

const (
	Win  Outcome = "win"
	Lose Outcome = "lose"
	Draw Outcome = "draw"
)

type Engine interface {
	// Run plays a game till it is won, lost or a max number of turns is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
