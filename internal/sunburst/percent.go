package sunburst

import "github.com/ruby4mag/testtracker-go-backend-ui/internal/models"

// neutralPercentage is assigned to nodes with no conclusive data underneath.
const neutralPercentage = 50.0

// Percentage computes the passing percentage of the subtree under n, in
// [0,100]. The boolean reports whether the node counts towards its parent's
// average at all: a test result that neither passed nor conclusively failed
// (skipped, blocked, not run, warning, info) is excluded and returns false.
// Exclusion stops at the result level; a branch whose results are all
// excluded scores the neutral 50 and still counts upwards.
//
// The function is pure and never mutates the node. It is recomputed on every
// call; trees are per-request and small, so no memoization is kept.
func Percentage(n *Node) (float64, bool) {
	if n.Type == TypeTestResult {
		switch n.Status {
		case models.ResultPassed:
			return 100, true
		case models.ResultFailed, models.ResultError:
			return 0, true
		}
		return 0, false
	}

	if len(n.Children) > 0 {
		sum := 0.0
		kept := 0
		for _, child := range n.Children {
			p, ok := Percentage(child)
			if !ok {
				continue
			}
			sum += p
			kept++
		}
		if kept == 0 {
			return neutralPercentage, true
		}
		// Unweighted mean: each child counts once at this level, depth
		// weighting happens by folding level by level.
		return sum / float64(kept), true
	}

	// A childless non-result node, e.g. a test case that never produced
	// results, has nothing to measure.
	return neutralPercentage, true
}
