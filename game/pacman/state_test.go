package pacman

import (
	"seeker/game"
	"seeker/grid"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("reading agents, walls and food", func(t *testing.T) {
		s, err := Parse([]string{
			"%%%%%",
			"%P.G%",
			"%. G%",
			"%%%%%",
		})
		require.NoError(t, err)

		require.Equal(t, 3, s.AgentCount(), "Pacman plus two ghosts")
		require.Equal(t, grid.Coord{Row: 1, Col: 1}, s.Pacman())
		require.Equal(t, []grid.Coord{{Row: 1, Col: 3}, {Row: 2, Col: 3}}, s.Ghosts())
		require.Equal(t, 2, s.FoodLeft())
		require.Equal(t, []grid.Coord{{Row: 1, Col: 2}, {Row: 2, Col: 1}}, s.Food())
		require.Equal(t, 0.0, s.Score())
	})

	t.Run("rendering back to the same text", func(t *testing.T) {
		lines := []string{
			"%%%%%",
			"%P.G%",
			"%%%%%",
		}
		s := MustParse(lines...)
		require.Equal(t, "%%%%%\n%P.G%\n%%%%%", s.String())
	})

	t.Run("rejecting malformed layouts", func(t *testing.T) {
		cases := map[string][]string{
			"empty":       {},
			"ragged":      {"%%%", "%P"},
			"no pacman":   {"%%%", "%.%", "%%%"},
			"two pacmans": {"%%%%", "%PP%", "%%%%"},
		}
		for name, lines := range cases {
			_, err := Parse(lines)
			require.ErrorIs(t, err, ErrInvalidLayout, name)
		}
	})

	t.Run("loading built-in layouts", func(t *testing.T) {
		for _, name := range LayoutNames() {
			s, err := Layout(name)
			require.NoError(t, err, name)
			require.GreaterOrEqual(t, s.AgentCount(), 2, name)
			require.Positive(t, s.FoodLeft(), name)
		}
		_, err := Layout("missing")
		require.ErrorIs(t, err, ErrInvalidLayout)
	})
}

func TestLegalActions(t *testing.T) {
	s := MustParse(
		"%%%%%",
		"%P %%",
		"% %G%",
		"%%%%%",
	)

	t.Run("pacman may stop", func(t *testing.T) {
		require.Equal(t, []game.Action{South, East, Stop}, s.LegalActions(0))
	})

	t.Run("boxed-in ghost can only stop", func(t *testing.T) {
		require.Equal(t, []game.Action{Stop}, s.LegalActions(1))
	})

	t.Run("unknown agents have no moves", func(t *testing.T) {
		require.Empty(t, s.LegalActions(2))
		require.Empty(t, s.LegalActions(-1))
	})
}

func TestSuccessor(t *testing.T) {
	t.Run("eating food and paying for time", func(t *testing.T) {
		s := MustParse(
			"%%%%%%",
			"%P..G%",
			"%%%%%%",
		)

		next := s.Successor(0, East).(*State)

		require.Equal(t, -TimePenalty+FoodReward, next.Score())
		require.Equal(t, 1, next.FoodLeft())
		require.Equal(t, grid.Coord{Row: 1, Col: 2}, next.Pacman())
		require.False(t, next.IsWin())

		require.Equal(t, 2, s.FoodLeft(), "Original state should not change")
		require.Equal(t, grid.Coord{Row: 1, Col: 1}, s.Pacman(), "Original state should not change")
		require.Equal(t, 0.0, s.Score(), "Original state should not change")
	})

	t.Run("winning on the last food", func(t *testing.T) {
		s := MustParse(
			"%%%%%",
			"%P.G%",
			"%%%%%",
		)

		next := s.Successor(0, East)

		require.True(t, next.IsWin())
		require.Equal(t, -TimePenalty+FoodReward+WinReward, game.EvaluateScore(next))
		require.Empty(t, next.LegalActions(0), "Finished games have no moves")
	})

	t.Run("losing when pacman walks into a ghost", func(t *testing.T) {
		s := MustParse(
			"%%%%%",
			"%PG.%",
			"%%%%%",
		)

		next := s.Successor(0, East)

		require.True(t, next.IsLose())
		require.Equal(t, -TimePenalty-LosePenalty, game.EvaluateScore(next))
	})

	t.Run("losing when a ghost catches pacman", func(t *testing.T) {
		s := MustParse(
			"%%%%%%",
			"%P G.%",
			"%%%%%%",
		)

		next := s.Successor(1, West).Successor(1, West)

		require.True(t, next.IsLose())
		require.Equal(t, -LosePenalty, game.EvaluateScore(next), "Ghost moves cost pacman nothing but the loss")
	})

	t.Run("panicking on illegal moves", func(t *testing.T) {
		s := MustParse(
			"%%%%",
			"%PG%",
			"%.%%",
			"%%%%",
		)

		require.Panics(t, func() { s.Successor(0, North) }, "Walking into a wall")
		require.Panics(t, func() { s.Successor(0, "Jump") }, "Unknown action")
		lost := s.Successor(0, East)
		require.Panics(t, func() { lost.Successor(1, West) }, "Moving after the game ended")
	})
}
