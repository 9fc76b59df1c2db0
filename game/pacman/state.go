// Package pacman is a small multi-agent maze game used to drive the
// adversarial searchers. Agent 0 is Pacman; every other agent is a ghost.
package pacman

import (
	"errors"
	"fmt"
	"seeker/game"
	"seeker/grid"
	"strings"
)

const (
	North game.Action = "North"
	South game.Action = "South"
	East  game.Action = "East"
	West  game.Action = "West"
	Stop  game.Action = "Stop"
)

// Scoring follows the classic Berkeley Pacman rules.
const (
	TimePenalty = 1.0
	FoodReward  = 10.0
	WinReward   = 500.0
	LosePenalty = 500.0
)

var ErrInvalidLayout = errors.New("invalid layout")

var directions = []struct {
	action     game.Action
	drow, dcol int
}{
	{North, -1, 0},
	{South, 1, 0},
	{East, 0, 1},
	{West, 0, -1},
}

type layout struct {
	rows  int
	cols  int
	walls []bool
}

func (l *layout) index(c grid.Coord) int {
	return c.Row*l.cols + c.Col
}

func (l *layout) isWall(c grid.Coord) bool {
	if c.Row < 0 || c.Row >= l.rows || c.Col < 0 || c.Col >= l.cols {
		return true
	}
	return l.walls[l.index(c)]
}

// State is immutable: Successor copies what it changes and shares the walls.
type State struct {
	layout   *layout
	food     []bool
	foodLeft int
	agents   []grid.Coord
	score    float64
	win      bool
	lose     bool
}

// Parse reads a text layout: '%' wall, '.' food, 'P' Pacman, 'G' ghost,
// anything else open floor. Rows must have equal length and there must be
// exactly one Pacman.
func Parse(lines []string) (*State, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidLayout)
	}

	l := &layout{rows: len(lines), cols: len(lines[0])}
	l.walls = make([]bool, l.rows*l.cols)
	s := &State{layout: l, food: make([]bool, l.rows*l.cols)}

	var pacman []grid.Coord
	var ghosts []grid.Coord
	for r, line := range lines {
		if len(line) != l.cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalidLayout, r, len(line), l.cols)
		}
		for c, ch := range line {
			pos := grid.Coord{Row: r, Col: c}
			switch ch {
			case '%':
				l.walls[l.index(pos)] = true
			case '.':
				s.food[l.index(pos)] = true
				s.foodLeft++
			case 'P':
				pacman = append(pacman, pos)
			case 'G':
				ghosts = append(ghosts, pos)
			}
		}
	}
	if len(pacman) != 1 {
		return nil, fmt.Errorf("%w: expected one Pacman, found %d", ErrInvalidLayout, len(pacman))
	}

	s.agents = append(pacman, ghosts...)
	return s, nil
}

// MustParse is Parse for layouts known to be valid.
func MustParse(lines ...string) *State {
	s, err := Parse(lines)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *State) AgentCount() int { return len(s.agents) }
func (s *State) IsWin() bool     { return s.win }
func (s *State) IsLose() bool    { return s.lose }
func (s *State) Score() float64  { return s.score }
func (s *State) FoodLeft() int   { return s.foodLeft }

func (s *State) Pacman() grid.Coord { return s.agents[game.Maximizer] }

func (s *State) Ghosts() []grid.Coord {
	return append([]grid.Coord(nil), s.agents[1:]...)
}

// Food lists the remaining food in row-major order.
func (s *State) Food() []grid.Coord {
	food := make([]grid.Coord, 0, s.foodLeft)
	for i, ok := range s.food {
		if ok {
			food = append(food, grid.Coord{Row: i / s.layout.cols, Col: i % s.layout.cols})
		}
	}
	return food
}

// LegalActions lists moves that do not walk into a wall. Pacman may also Stop;
// a ghost only stops when it is boxed in. A finished game has no moves.
func (s *State) LegalActions(agent int) []game.Action {
	if s.win || s.lose || agent < 0 || agent >= len(s.agents) {
		return nil
	}

	pos := s.agents[agent]
	actions := make([]game.Action, 0, len(directions)+1)
	for _, d := range directions {
		if !s.layout.isWall(grid.Coord{Row: pos.Row + d.drow, Col: pos.Col + d.dcol}) {
			actions = append(actions, d.action)
		}
	}
	if agent == game.Maximizer || len(actions) == 0 {
		actions = append(actions, Stop)
	}
	return actions
}

// Successor applies one agent's action. It panics on actions LegalActions
// would not offer.
func (s *State) Successor(agent int, action game.Action) game.State {
	if s.win || s.lose {
		panic("cannot move after the game is over")
	}
	target, ok := s.step(s.agents[agent], action)
	if !ok {
		panic(fmt.Sprintf("illegal action %q for agent %d", action, agent))
	}

	next := &State{
		layout:   s.layout,
		food:     s.food,
		foodLeft: s.foodLeft,
		agents:   append([]grid.Coord(nil), s.agents...),
		score:    s.score,
	}
	next.agents[agent] = target

	if agent == game.Maximizer {
		next.score -= TimePenalty
		if i := s.layout.index(target); s.food[i] {
			next.food = append([]bool(nil), s.food...)
			next.food[i] = false
			next.foodLeft--
			next.score += FoodReward
		}
		if next.foodLeft == 0 {
			next.win = true
			next.score += WinReward
			return next
		}
	}

	if next.collided() {
		next.lose = true
		next.score -= LosePenalty
	}
	return next
}

func (s *State) step(from grid.Coord, action game.Action) (grid.Coord, bool) {
	if action == Stop {
		return from, true
	}
	for _, d := range directions {
		if d.action == action {
			to := grid.Coord{Row: from.Row + d.drow, Col: from.Col + d.dcol}
			return to, !s.layout.isWall(to)
		}
	}
	return from, false
}

func (s *State) collided() bool {
	pacman := s.agents[game.Maximizer]
	for _, ghost := range s.agents[1:] {
		if ghost.Equal(pacman) {
			return true
		}
	}
	return false
}

func (s *State) String() string {
	var b strings.Builder
	for r := 0; r < s.layout.rows; r++ {
		for c := 0; c < s.layout.cols; c++ {
			pos := grid.Coord{Row: r, Col: c}
			b.WriteByte(s.glyph(pos))
		}
		if r < s.layout.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (s *State) glyph(pos grid.Coord) byte {
	if pos.Equal(s.agents[game.Maximizer]) {
		return 'P'
	}
	for _, ghost := range s.agents[1:] {
		if ghost.Equal(pos) {
			return 'G'
		}
	}
	switch i := s.layout.index(pos); {
	case s.layout.walls[i]:
		return '%'
	case s.food[i]:
		return '.'
	default:
		return ' '
	}
}
