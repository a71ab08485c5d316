package trainer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"bao/game"

	"github.com/adrg/xdg"
	"github.com/patrikeh/go-deep"
)

const modelFile = "bao/model.json"

// DefaultHidden is the hidden layout of new models.
var DefaultHidden = []int{64, 32}

// Model is the persisted form of a network
type Model struct {
	Hidden  []int         `json:"hidden_layers"`
	Weights [][][]float64 `json:"weights"`
}

// DefaultModelPath resolves the model file under the XDG data directory,
// creating parent directories as needed.
func DefaultModelPath() (string, error) {
	return xdg.DataFile(modelFile)
}

// NewModel builds an untrained network mapping position features to one
// score per bowl.
func NewModel(hidden []int) *deep.Neural {
	layout := append(append([]int{}, hidden...), game.BoardSize)
	return deep.NewNeural(&deep.Config{
		Inputs:     game.FeatureSize,
		Layout:     layout,
		Activation: deep.ActivationReLU,
		Mode:       deep.ModeRegression,
		Weight:     deep.NewNormal(0.0, 0.1),
		Bias:       true,
	})
}

func LoadModel(path string) (*deep.Neural, []int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read model: %w", err)
	}

	var model Model
	err = json.Unmarshal(data, &model)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode model %s: %w", path, err)
	}
	if len(model.Weights) != len(model.Hidden)+1 {
		return nil, nil, fmt.Errorf("model %s: %d weight layers for %d hidden layers", path, len(model.Weights), len(model.Hidden))
	}

	network := NewModel(model.Hidden)
	network.ApplyWeights(model.Weights)
	return network, model.Hidden, nil
}

func SaveModel(path string, network *deep.Neural, hidden []int) error {
	data, err := json.Marshal(Model{Hidden: hidden, Weights: network.Dump().Weights})
	if err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}
	err = os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return fmt.Errorf("failed to create model directory: %w", err)
	}
	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write model: %w", err)
	}
	return nil
}
