package searcher

import (
	"sync"
	"testing"

	"bao/game"

	"github.com/stretchr/testify/require"
)

/**
Tests tree parallel MCTS with virtual loss on decision nodes
- selection: fully expanded node -> max UCB child + loss, child position
- expansion: expandable node -> next unexplored move + loss, child position
- terminal node -> same node, same position
- backup: reverse loss, visits++, rewards updated up to the root
- concurrent expansion never duplicates a move
*/

func position(t *testing.T, mover, opponent string) game.Position {
	t.Helper()
	m, err := game.ParseBoardHalf(mover)
	require.NoError(t, err)
	o, err := game.ParseBoardHalf(opponent)
	require.NoError(t, err)
	return game.Position{Direction: game.CCW, Mode: game.Normal, Mover: m, Opponent: o}
}

const (
	twoMoves = "<2,0,0,0,0,2,0,0,0,0,0,0,0,0,0,0>"
	full     = "<2,2,2,2,2,2,2,2,2,2,2,2,2,2,2,2>"
)

func TestDecisionSelectOrExpand(t *testing.T) {
	t.Run("expanding node with unexplored moves", func(t *testing.T) {
		p := position(t, twoMoves, full)
		node := newDecision(nil, p, game.None)

		gotChild, gotPosition, stop := node.selectOrExpand(p)

		require.True(t, stop, "Descent should stop at a new child")
		require.Len(t, node.children, 1)
		require.Same(t, node.children[0], gotChild)
		require.Equal(t, Loss, gotChild.rewards, "Child should apply a temporary loss")
		require.Equal(t, 1.0, gotChild.visits, "Child should apply a temporary loss")
		want, _ := p.Play(0)
		require.Equal(t, want, gotPosition, "Position should advance by the first legal move")
		require.Equal(t, want.LegalIndices(), gotChild.moves, "Child should list the opponent's moves")
		require.Len(t, gotChild.moves, game.BoardSize)
	})

	t.Run("selecting fully expanded node", func(t *testing.T) {
		p := position(t, twoMoves, full)
		maxChild := &decision{rewards: 1, visits: 1}
		otherChild := &decision{rewards: 0, visits: 1}
		node := &decision{
			moves:    []int{0, 5},
			children: []*decision{otherChild, maxChild},
			rewards:  1,
			visits:   2,
		}

		gotChild, gotPosition, stop := node.selectOrExpand(p)

		require.False(t, stop, "Descent should continue past a selected child")
		require.Same(t, maxChild, gotChild, "Node should select child with max UCB value")
		require.Equal(t, 1+Loss, gotChild.rewards, "Child should apply a temporary loss")
		require.Equal(t, 2.0, gotChild.visits, "Child should apply a temporary loss")
		want, _ := p.Play(5)
		require.Equal(t, want, gotPosition, "Position should advance by the selected move")
		require.Equal(t, 1.0, node.rewards, "Node stats should not change")
		require.Equal(t, 2.0, node.visits, "Node stats should not change")
	})

	t.Run("terminal node", func(t *testing.T) {
		p := position(t, twoMoves, full)
		node := newDecision(nil, p, game.Won)

		gotChild, gotPosition, stop := node.selectOrExpand(p)

		require.True(t, stop)
		require.Same(t, node, gotChild, "Terminal node should return itself")
		require.Equal(t, p, gotPosition, "Position should not change")
		require.Empty(t, node.children)
	})

	t.Run("concurrent expansion", func(t *testing.T) {
		p := position(t, twoMoves, full)
		node := newDecision(nil, p, game.None)

		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				node.selectOrExpand(p)
			}()
		}
		wg.Wait()

		require.Len(t, node.children, 2, "Each move should be expanded once")
		require.Equal(t, [game.BoardSize]int{0: 1, 5: 1}, node.policy())
	})
}

func TestDecisionBackup(t *testing.T) {
	root := &decision{}
	child := &decision{parent: root}
	grandchild := &decision{parent: child}
	child.applyLoss()
	grandchild.applyLoss()

	backup(grandchild, Win)

	require.Equal(t, Win, grandchild.rewards, "Virtual loss should be reversed before the reward")
	require.Equal(t, 1.0, grandchild.visits)
	require.Equal(t, Loss, child.rewards, "Reward should flip sign at each level")
	require.Equal(t, 1.0, child.visits)
	require.Equal(t, Win, root.rewards)
	require.Equal(t, 1.0, root.visits)
}

func TestDecisionPolicy(t *testing.T) {
	node := &decision{
		moves:    []int{3, 9},
		children: []*decision{{visits: 4}, {visits: 7}},
	}

	require.Equal(t, [game.BoardSize]int{3: 4, 9: 7}, node.policy())
}
