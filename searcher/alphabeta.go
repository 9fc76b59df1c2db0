package searcher

import (
	"math"
	"seeker/game"
)

// AlphaBeta returns the same action and value as Minimax while skipping
// subtrees that cannot change the result. Cutoffs are strict: a max node stops
// once its value exceeds beta, a min node once its value falls below alpha.
type AlphaBeta struct {
	config
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{config: newConfig(options)}
}

func (a *AlphaBeta) FindAction(state game.State) (Decision, error) {
	return a.decide(AlphaBetaName, state, func(child game.State, agent, depth int, alpha float64) float64 {
		return a.value(child, agent, depth, alpha, math.Inf(1))
	})
}

// alpha: best value the maximizer can guarantee on the path to the root.
// beta: best value the minimizers can guarantee on the path to the root.
func (a *AlphaBeta) value(state game.State, agent, depth int, alpha, beta float64) float64 {
	a.metrics.AddNode()

	if isLeaf(state, depth) {
		return a.evaluate(state)
	}
	actions := state.LegalActions(agent)
	if len(actions) == 0 {
		return a.evaluate(state)
	}

	nextAgent, nextDepth := next(state, agent, depth)
	if agent == game.Maximizer {
		value := math.Inf(-1)
		for i, action := range actions {
			value = math.Max(value, a.value(state.Successor(agent, action), nextAgent, nextDepth, alpha, beta))
			if value > beta {
				a.prune(i, len(actions))
				return value
			}
			alpha = math.Max(alpha, value)
		}
		return value
	}

	value := math.Inf(1)
	for i, action := range actions {
		value = math.Min(value, a.value(state.Successor(agent, action), nextAgent, nextDepth, alpha, beta))
		if value < alpha {
			a.prune(i, len(actions))
			return value
		}
		beta = math.Min(beta, value)
	}
	return value
}

// prune records a cutoff when it actually skipped siblings.
func (a *AlphaBeta) prune(i, n int) {
	if i < n-1 {
		a.metrics.AddPrune()
	}
}
