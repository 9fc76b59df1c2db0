package searcher

import (
	"math"
	"seeker/game"

	"gonum.org/v1/gonum/stat"
)

// Expectimax models every adversary as picking uniformly at random among its
// legal actions, so adversary nodes are worth the mean of their children.
type Expectimax struct {
	config
}

func NewExpectimax(options ...Option) *Expectimax {
	return &Expectimax{config: newConfig(options)}
}

func (e *Expectimax) FindAction(state game.State) (Decision, error) {
	return e.decide(ExpectimaxName, state, func(child game.State, agent, depth int, _ float64) float64 {
		return e.value(child, agent, depth)
	})
}

func (e *Expectimax) value(state game.State, agent, depth int) float64 {
	e.metrics.AddNode()

	if isLeaf(state, depth) {
		return e.evaluate(state)
	}
	actions := state.LegalActions(agent)
	if len(actions) == 0 {
		return e.evaluate(state)
	}

	nextAgent, nextDepth := next(state, agent, depth)
	if agent == game.Maximizer {
		value := math.Inf(-1)
		for _, action := range actions {
			value = math.Max(value, e.value(state.Successor(agent, action), nextAgent, nextDepth))
		}
		return value
	}

	outcomes := make([]float64, len(actions))
	for i, action := range actions {
		outcomes[i] = e.value(state.Successor(agent, action), nextAgent, nextDepth)
	}
	return stat.Mean(outcomes, nil)
}
