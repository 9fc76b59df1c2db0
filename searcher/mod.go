package searcher

import (
	"errors"
	"fmt"
	"math"
	"seeker/experiments/metrics"
	"seeker/game"
	"seeker/meta"

	"github.com/rs/zerolog/log"
)

const (
	MinimaxName    = "minimax"
	AlphaBetaName  = "alphabeta"
	ExpectimaxName = "expectimax"
)

var (
	ErrNoLegalActions   = errors.New("maximizer has no legal actions")
	ErrUnknownAlgorithm = errors.New("unknown search algorithm")
)

// Decision is the outcome of one search from the maximizer's root.
type Decision struct {
	Action  game.Action
	Value   float64
	Metrics metrics.SearchMetric
}

type Searcher interface {
	FindAction(state game.State) (Decision, error)
}

type Option func(c *config)

type config struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

// WithDepth sets the lookahead in full rounds (every agent moves once per round).
func WithDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = metrics.NewCollector()
	}
}

func newConfig(options []Option) config {
	c := config{ // Default values
		depth:    meta.DEPTH,
		evaluate: game.EvaluateScore,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// New returns the searcher registered under name.
func New(name string, options ...Option) (Searcher, error) {
	switch name {
	case MinimaxName:
		return NewMinimax(options...), nil
	case AlphaBetaName:
		return NewAlphaBeta(options...), nil
	case ExpectimaxName:
		return NewExpectimax(options...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// next returns the agent that moves after agent, and the depth it moves at.
// Depth drops by one once the last adversary has moved.
func next(state game.State, agent, depth int) (int, int) {
	if agent+1 >= state.AgentCount() {
		return game.Maximizer, depth - 1
	}
	return agent + 1, depth
}

func isLeaf(state game.State, depth int) bool {
	return depth == 0 || game.IsTerminal(state)
}

// decide runs the maximizer's root: every legal action is scored by value and
// the first action with the strictly greatest score wins. alpha is the best
// score seen so far, for searchers that prune.
func (c *config) decide(name string, state game.State, value func(child game.State, agent, depth int, alpha float64) float64) (Decision, error) {
	actions := state.LegalActions(game.Maximizer)
	if len(actions) == 0 {
		return Decision{}, ErrNoLegalActions
	}

	c.metrics.Start(name, c.depth)
	agent, depth := next(state, game.Maximizer, c.depth)

	best := Decision{Value: math.Inf(-1)}
	alpha := math.Inf(-1)
	for i, action := range actions {
		child := state.Successor(game.Maximizer, action)
		v := value(child, agent, depth, alpha)
		if i == 0 || v > best.Value {
			best.Action = action
			best.Value = v
		}
		alpha = math.Max(alpha, v)
	}
	best.Metrics = c.metrics.Complete()

	log.Debug().Msgf("%s chose %q with value %.3f at depth %d", name, best.Action, best.Value, c.depth)
	return best, nil
}
