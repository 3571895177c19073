package mcts

import "math"

// UCB 1 : wins/visits + C * sqrt(ln(parent_visits)/visits)
// ucb1 = exploitation + exploration, unvisited nodes score +Inf
func UCB1(wins, visits, parentVisits int32, c float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	return float64(wins)/float64(visits) +
		c*math.Sqrt(math.Log(float64(parentVisits))/float64(visits))
}

// Select the child of 'parent' with the highest UCB1 score, given exploration constant.
// Ties go to the first child in expansion order. Returns NoParent if there are no children.
func (mcts *MCTS[T, P]) SelectChild(parent int, c float64) int {
	node := &mcts.nodes[parent]
	best := NoParent
	bestScore := math.Inf(-1)
	parentVisits := node.Stats.Visits()

	for _, id := range node.Children {
		child := &mcts.nodes[id]
		score := UCB1(child.Stats.Wins(), child.Stats.Visits(), parentVisits, c)
		if score > bestScore {
			bestScore = score
			best = id
		}
	}
	return best
}
