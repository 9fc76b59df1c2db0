package searcher

import (
	"fmt"
	"seeker/game"
	"seeker/utils"

	"golang.org/x/exp/rand"
)

// mockState is an explicit game tree. Every node belongs to a game with the
// same number of agents; leaves carry the score.
type mockState struct {
	agents   int
	score    float64
	win      bool
	lose     bool
	actions  []game.Action
	children []*mockState
}

func (m *mockState) LegalActions(agent int) []game.Action {
	return m.actions
}

func (m *mockState) Successor(agent int, action game.Action) game.State {
	i := utils.FindIndex(m.actions, action)
	if i < 0 {
		panic(fmt.Sprintf("illegal action %q", action))
	}
	return m.children[i]
}

func (m *mockState) IsWin() bool     { return m.win }
func (m *mockState) IsLose() bool    { return m.lose }
func (m *mockState) AgentCount() int { return m.agents }
func (m *mockState) Score() float64  { return m.score }

type branch struct {
	action game.Action
	child  *mockState
}

func leaf(score float64) *mockState {
	return &mockState{score: score}
}

// tree builds an internal node and stamps the agent count onto the subtree.
func tree(agents int, branches ...branch) *mockState {
	node := &mockState{agents: agents}
	for _, b := range branches {
		node.actions = append(node.actions, b.action)
		node.children = append(node.children, b.child)
	}
	node.stamp(agents)
	return node
}

func (m *mockState) stamp(agents int) {
	m.agents = agents
	for _, child := range m.children {
		child.stamp(agents)
	}
}

func on(action game.Action, child *mockState) branch {
	return branch{action: action, child: child}
}

// leaves builds a node whose actions a0, a1, ... lead straight to scores.
func leaves(scores ...float64) *mockState {
	node := &mockState{}
	for i, s := range scores {
		node.actions = append(node.actions, game.Action(fmt.Sprintf("a%d", i)))
		node.children = append(node.children, leaf(s))
	}
	return node
}

// plyState is an endless game that scores a state by how many moves led to it.
type plyState struct {
	agents    int
	branching int
	ply       int
	winAt     int
}

func (p plyState) LegalActions(agent int) []game.Action {
	actions := make([]game.Action, p.branching)
	for i := range actions {
		actions[i] = game.Action(fmt.Sprintf("m%d", i))
	}
	return actions
}

func (p plyState) Successor(agent int, action game.Action) game.State {
	p.ply++
	return p
}

func (p plyState) IsWin() bool     { return p.winAt > 0 && p.ply >= p.winAt }
func (p plyState) IsLose() bool    { return false }
func (p plyState) AgentCount() int { return p.agents }
func (p plyState) Score() float64  { return float64(p.ply) }

// randomTree grows a full tree for the given number of rounds with random
// branching and integer leaf scores, so ties are common.
func randomTree(r *rand.Rand, agents, depth int) *mockState {
	var grow func(agent, depth int) *mockState
	grow = func(agent, depth int) *mockState {
		if depth == 0 {
			return leaf(float64(r.Intn(10)))
		}
		nextAgent, nextDepth := agent+1, depth
		if nextAgent == agents {
			nextAgent, nextDepth = 0, depth-1
		}
		node := &mockState{}
		for i, n := 0, 1+r.Intn(3); i < n; i++ {
			node.actions = append(node.actions, game.Action(fmt.Sprintf("m%d", i)))
			node.children = append(node.children, grow(nextAgent, nextDepth))
		}
		return node
	}
	root := grow(0, depth)
	root.stamp(agents)
	return root
}
