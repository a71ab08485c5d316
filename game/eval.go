package game

// Evaluate scores a position between -1 and 1 from the mover's perspective.
type Evaluate func(Position) float64

// EvaluateStones compares the stones each side holds. Front-row stones
// count twice since only they can be captured from or used to capture.
func EvaluateStones(p Position) float64 {
	mover := float64(p.Mover.Sum() + p.Mover.FrontRowSum())
	opponent := float64(p.Opponent.Sum() + p.Opponent.FrontRowSum())
	return normalize(mover, opponent)
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
