package pacman

import (
	"fmt"
	"math"
	"seeker/game"
	"seeker/grid"
)

// Weights for EvaluateBetter.
const (
	nearestFoodWeight = 10.0
	foodLeftWeight    = 4.0
	ghostWeight       = 2.0
	adjacentGhost     = 200.0
)

// EvaluateBetter adds positional terms to the game score: a pull toward the
// nearest food, a cost per remaining food, and a push away from ghosts that
// becomes a heavy penalty once a ghost is adjacent. Finished games are scored
// by the game score alone.
func EvaluateBetter(s game.State) float64 {
	st, ok := s.(*State)
	if !ok {
		panic(fmt.Sprintf("unexpected state type %T", s))
	}
	if st.win || st.lose {
		return st.score
	}

	pacman := st.Pacman()
	value := st.score - foodLeftWeight*float64(st.foodLeft)

	if nearest := nearestDistance(pacman, st.Food()); nearest > 0 {
		value += nearestFoodWeight / float64(nearest)
	}

	for _, ghost := range st.Ghosts() {
		d := grid.Manhattan(pacman, ghost)
		if d <= 1 {
			value -= adjacentGhost
			continue
		}
		value -= ghostWeight / float64(d)
	}
	return value
}

// nearestDistance returns the smallest Manhattan distance from from to any
// target, or 0 when there are none.
func nearestDistance(from grid.Coord, targets []grid.Coord) int {
	nearest := math.MaxInt
	for _, t := range targets {
		nearest = min(nearest, grid.Manhattan(from, t))
	}
	if nearest == math.MaxInt {
		return 0
	}
	return nearest
}
