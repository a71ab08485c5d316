package trainer

import (
	"os"
	"path/filepath"
	"testing"

	"bao/game"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"
)

func TestNewModel(t *testing.T) {
	network := NewModel([]int{8})

	scores := network.Predict(game.Position{Mover: game.NewBoardHalf(), Opponent: game.NewBoardHalf()}.Features())

	require.Len(t, scores, game.BoardSize)
}

func TestSaveLoadModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "model.json")
	network := NewModel([]int{8, 4})
	features := game.Position{Direction: game.CCW, Mover: game.NewBoardHalf(), Opponent: game.NewBoardHalf()}.Features()

	require.NoError(t, SaveModel(path, network, []int{8, 4}))
	loaded, hidden, err := LoadModel(path)

	require.NoError(t, err)
	require.Equal(t, []int{8, 4}, hidden)
	require.InDeltaSlice(t, network.Predict(features), loaded.Predict(features), 1e-9)
}

func TestLoadModelErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, _, err := LoadModel(filepath.Join(dir, "absent.json"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

		_, _, err := LoadModel(path)
		require.Error(t, err)
	})

	t.Run("layer mismatch", func(t *testing.T) {
		path := filepath.Join(dir, "mismatch.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"hidden_layers":[8],"weights":[]}`), 0644))

		_, _, err := LoadModel(path)
		require.ErrorContains(t, err, "weight layers")
	})
}

func TestDefaultModelPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	xdg.Reload()
	defer xdg.Reload()

	path, err := DefaultModelPath()

	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "bao", "model.json"), path)
	require.DirExists(t, filepath.Join(dir, "bao"))
}
