package searcher

import (
	"math"
	"sync"

	"bao/game"
)

// decision is a tree node for the position reached after a move. Rewards
// are kept from the perspective of the player who made that move, so a
// parent picks the child that is best for itself.
type decision struct {
	sync.Mutex
	parent   *decision
	outcome  game.Outcome // Outcome of the move leading here
	moves    []int
	children []*decision
	rewards  float64
	visits   float64
}

func newDecision(parent *decision, position game.Position, outcome game.Outcome) *decision {
	var moves []int
	if outcome == game.None {
		moves = position.LegalIndices()
	}
	return &decision{
		parent:   parent,
		outcome:  outcome,
		moves:    moves,
		children: make([]*decision, 0, len(moves)),
	}
}

// selectOrExpand descends one level. It returns the child and its position,
// and stop is true once the descent should end: a child was just added or
// the node is terminal.
func (d *decision) selectOrExpand(position game.Position) (child *decision, next game.Position, stop bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.moves) == 0 { // Terminal node
		return d, position, true
	}

	if len(d.moves) > len(d.children) { // Expandable node
		next, result := position.Play(d.moves[len(d.children)])
		child := newDecision(d, next, result.Outcome)
		d.children = append(d.children, child)
		child.applyLoss()
		return child, next, true
	}

	// Fully expanded node
	ith := d.pickChild()
	child = d.children[ith]
	child.applyLoss()
	next, _ = position.Play(d.moves[ith])
	return child, next, false
}

func (d *decision) pickChild() int {
	// Children always carry at least their virtual loss visit, so their
	// total stands in for the parent's visits while backups are in flight
	total := 0.0
	for _, child := range d.children {
		total += child.visitCount()
	}
	normalizer := CSquared * math.Log(total)

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		score := child.score(normalizer)
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

// applyLoss is a virtual loss steering parallel workers to other children
func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) score(normalizer float64) float64 {
	d.Lock()
	defer d.Unlock()

	return ucb(d.rewards, d.visits, normalizer)
}

func (d *decision) visitCount() float64 {
	d.Lock()
	defer d.Unlock()

	return d.visits
}

// backup records reward and returns the parent
func (d *decision) backup(reward float64) *decision {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.rewards -= Loss
		d.visits--
	}

	d.rewards += reward
	d.visits++

	return d.parent
}

// policy returns the visit count of every explored move
func (d *decision) policy() [game.BoardSize]int {
	d.Lock()
	defer d.Unlock()

	var visits [game.BoardSize]int
	for i, child := range d.children {
		visits[d.moves[i]] = int(child.visitCount())
	}
	return visits
}
