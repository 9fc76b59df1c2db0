package agent

import (
	"errors"
	"fmt"
	"seeker/experiments/metrics"
	"seeker/game"
	"seeker/searcher"

	"golang.org/x/exp/rand"
)

var ErrNoMoves = errors.New("agent has no legal actions")

type Agent interface {
	// FindAction returns the move for the agent at index, plus search metrics if any were collected
	FindAction(state game.State, index int) (game.Action, metrics.SearchMetric, error)
}

type searchAgent struct {
	searcher searcher.Searcher
}

// NewSearchAgent plays agent 0 with a lookahead searcher.
func NewSearchAgent(s searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindAction(state game.State, index int) (game.Action, metrics.SearchMetric, error) {
	if index != game.Maximizer {
		return "", metrics.SearchMetric{}, fmt.Errorf("search agent can only play agent %d, got %d", game.Maximizer, index)
	}
	decision, err := a.searcher.FindAction(state)
	if err != nil {
		return "", metrics.SearchMetric{}, err
	}
	return decision.Action, decision.Metrics, nil
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent picks uniformly among the legal actions, which is the
// adversary model expectimax assumes.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindAction(state game.State, index int) (game.Action, metrics.SearchMetric, error) {
	actions := state.LegalActions(index)
	if len(actions) == 0 {
		return "", metrics.SearchMetric{}, ErrNoMoves
	}
	return actions[a.rng.Intn(len(actions))], metrics.SearchMetric{}, nil
}

type firstAgent struct{}

// NewFirstAgent always plays the first legal action. Useful for reproducible games.
func NewFirstAgent() Agent {
	return firstAgent{}
}

func (firstAgent) FindAction(state game.State, index int) (game.Action, metrics.SearchMetric, error) {
	actions := state.LegalActions(index)
	if len(actions) == 0 {
		return "", metrics.SearchMetric{}, ErrNoMoves
	}
	return actions[0], metrics.SearchMetric{}, nil
}
