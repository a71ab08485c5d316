package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPositionPlay(t *testing.T) {
	m, o := boards(t, "<2,0,0,0,0,2,0,0,0,0,0,0,0,0,0,0>", "<1,2,2,2,2,2,2,2,2,2,2,2,2,2,2,2>")
	p := Position{Direction: CCW, Mode: Normal, Mover: m, Opponent: o}

	next, result := p.Play(0)

	require.Equal(t, None, result.Outcome)
	require.Equal(t, o, next.Mover, "opponent moves next")
	require.Equal(t, "<0,1,1,0,0,2,0,0,0,0,0,0,0,0,0,0>", next.Opponent.String())
	require.Equal(t, m, p.Mover, "the original snapshot is untouched")
	require.Equal(t, CCW, next.Direction)
	require.Equal(t, Normal, next.Mode)
}

func TestPositionDryRun(t *testing.T) {
	m, o := boards(t, "<0,0,0,0,0,0,0,0,0,0,2,0,0,2,0,1>", "<2,0,0,0,0,0,0,0,2,0,0,0,0,0,0,0>")
	p := Position{Direction: CCW, Mode: Easy, Mover: m, Opponent: o}

	_, opponent, result := p.DryRun(13)

	require.Equal(t, Won, result.Outcome)
	require.Equal(t, 0, opponent[8])
	require.Equal(t, 2, p.Opponent[8], "dry runs work on copies")
	require.Equal(t, []int{10, 13}, p.LegalIndices())
	require.True(t, p.IsLegal(10))
	require.False(t, p.IsLegal(15))
}

func TestPositionFeatures(t *testing.T) {
	m, o := boards(t, "<0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15>", "<15,14,13,12,11,10,9,8,7,6,5,4,3,2,1,0>")

	features := Position{Direction: CCW, Mover: m, Opponent: o}.Features()

	require.Len(t, features, FeatureSize)
	require.Equal(t, 3.0, features[3])
	require.Equal(t, 15.0, features[BoardSize])
	require.Equal(t, 1.0, features[FeatureSize-1], "ccw encodes as 1")

	features = Position{Direction: CW, Mover: m, Opponent: o}.Features()
	require.Equal(t, 0.0, features[FeatureSize-1])
}

func TestEvaluateStones(t *testing.T) {
	require.Equal(t, 0.0, EvaluateStones(Position{Mover: NewBoardHalf(), Opponent: NewBoardHalf()}))
	require.Equal(t, 0.0, EvaluateStones(Position{}))

	var front BoardHalf
	front[8] = 4
	require.InDelta(t, 1.0, EvaluateStones(Position{Mover: front}), 1e-9)
	require.InDelta(t, -1.0, EvaluateStones(Position{Opponent: front}), 1e-9)

	var back BoardHalf
	back[0] = 4
	// 8 weighted front-row stones against 4 back-row stones
	require.InDelta(t, 1.0/3.0, EvaluateStones(Position{Mover: front, Opponent: back}), 1e-9)
}
