package engine

import (
	"fmt"
	"seeker/agent"
	"seeker/experiments/metrics"
	"seeker/game"
	"seeker/utils"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// Local plays every agent in index order, one round per turn.
type Local struct {
	State    game.State
	Agents   []agent.Agent
	maxTurns int
}

func LocalEngine(state game.State, agents []agent.Agent, options ...Option) (*Local, error) {
	if len(agents) != state.AgentCount() {
		return nil, fmt.Errorf("game has %d agents but %d were provided", state.AgentCount(), len(agents))
	}

	e := &Local{
		State:    state,
		Agents:   agents,
		maxTurns: MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Run executes the game loop until the game ends or the turn limit is hit.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	log.Info().Msgf("starting game with %d agents", len(e.Agents))

	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	turn := 0
	for !game.IsTerminal(e.State) && turn < e.maxTurns {
		turn++
		for i, a := range e.Agents {
			if game.IsTerminal(e.State) {
				break
			}

			action, searchMetric, err := a.FindAction(e.State, i)
			if err != nil {
				return gameMetric, moveMetrics, fmt.Errorf("agent %d on turn %d: %w", i, turn, err)
			}

			legal := e.State.LegalActions(i)
			if utils.FindIndex(legal, action) < 0 {
				if len(legal) == 0 {
					return gameMetric, moveMetrics, fmt.Errorf("agent %d on turn %d: %w", i, turn, agent.ErrNoMoves)
				}
				log.Warn().Msgf("agent %d chose illegal action %q on turn %d, playing %q instead", i, action, turn, legal[0])
				action = legal[0]
			}

			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         turn,
				Agent:        i,
				SearchMetric: searchMetric,
			})
			e.State = e.State.Successor(i, action)
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Turns = turn
	gameMetric.Outcome = string(outcome(e.State))
	if scorer, ok := e.State.(game.Scorer); ok {
		gameMetric.Score = scorer.Score()
	}

	log.Info().Msgf("game over after %d turns: %s with score %.0f", turn, gameMetric.Outcome, gameMetric.Score)
	return gameMetric, moveMetrics, nil
}

func outcome(state game.State) Outcome {
	switch {
	case state.IsWin():
		return Win
	case state.IsLose():
		return Lose
	default:
		return Draw
	}
}
