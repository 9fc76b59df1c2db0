package searcher

import (
	"math"
	"seeker/game"
)

// Minimax assumes every adversary plays the move that is worst for agent 0.
type Minimax struct {
	config
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{config: newConfig(options)}
}

func (m *Minimax) FindAction(state game.State) (Decision, error) {
	return m.decide(MinimaxName, state, func(child game.State, agent, depth int, _ float64) float64 {
		return m.value(child, agent, depth)
	})
}

func (m *Minimax) value(state game.State, agent, depth int) float64 {
	m.metrics.AddNode()

	if isLeaf(state, depth) {
		return m.evaluate(state)
	}
	actions := state.LegalActions(agent)
	if len(actions) == 0 { // Stuck agent, score the position as it stands
		return m.evaluate(state)
	}

	nextAgent, nextDepth := next(state, agent, depth)
	if agent == game.Maximizer {
		value := math.Inf(-1)
		for _, action := range actions {
			value = math.Max(value, m.value(state.Successor(agent, action), nextAgent, nextDepth))
		}
		return value
	}

	value := math.Inf(1)
	for _, action := range actions {
		value = math.Min(value, m.value(state.Successor(agent, action), nextAgent, nextDepth))
	}
	return value
}
