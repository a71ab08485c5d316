package searcher

import "math"

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const Win = 1.0   // Reward for winning outcome
const Loss = -Win // Reward for loss outcome (negate from opponent perspective)

const MaxCutoff = 300 // Default rollout depth before falling back to evaluation

func ucb(rewards float64, visits float64, c2LnN float64) float64 {
	if visits == 0 { // Prevent division by zero
		panic("cannot compute UCT: 0 visits")
	}
	// UCT = q/n + sqrt(c^2*ln(N)/n)
	return rewards/visits + math.Sqrt(c2LnN/visits)
}
