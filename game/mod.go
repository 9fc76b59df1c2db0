package game

import "fmt"

// Action is an agent's move, e.g. a compass direction.
type Action string

// Agent 0 maximizes; agents 1..AgentCount()-1 are its adversaries.
const Maximizer = 0

// State should be immutable - Successor always returns a new state
type State interface {
	LegalActions(agent int) []Action
	Successor(agent int, action Action) State
	IsWin() bool
	IsLose() bool
	AgentCount() int
}

// Scorer is implemented by states that keep a running game score.
type Scorer interface {
	Score() float64
}

// Evaluates a state from the maximizer's point of view; higher is better.
// Implementations must return a finite number for every state.
type Evaluate func(State) float64

// EvaluateScore returns the game's built-in score.
func EvaluateScore(s State) float64 {
	scorer, ok := s.(Scorer)
	if !ok {
		panic(fmt.Sprintf("state %T does not keep a score", s))
	}
	return scorer.Score()
}

// IsTerminal reports whether the game is over.
func IsTerminal(s State) bool {
	return s.IsWin() || s.IsLose()
}
