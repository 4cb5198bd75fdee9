package logistics

// CostFunc reports the travel cost in seconds between two stations and
// whether that edge is known in the matrix.
type CostFunc func(from, to uint) (float64, bool)

const (
	// maxTwoOptPasses bounds the improvement loop so it always terminates.
	maxTwoOptPasses = 100
	// improvementThreshold ignores sub-second gains to avoid endless
	// micro-reversals on near-equal segments.
	improvementThreshold = 1.0
)

// NearestNeighborOrder greedily orders the given stations starting from the
// first one, always moving to the cheapest known unvisited station. When no
// remaining candidate has a known edge from the current station, the rest of
// the input order is appended as-is.
func NearestNeighborOrder(ids []uint, cost CostFunc) []uint {
	if len(ids) < 2 {
		return append([]uint(nil), ids...)
	}

	order := make([]uint, 0, len(ids))
	visited := make(map[uint]bool, len(ids))

	current := ids[0]
	order = append(order, current)
	visited[current] = true

	for len(order) < len(ids) {
		var next uint
		best := -1.0
		for _, id := range ids {
			if visited[id] {
				continue
			}
			c, ok := cost(current, id)
			if !ok {
				continue
			}
			if best < 0 || c < best {
				best = c
				next = id
			}
		}

		if best < 0 {
			// No travel data from here to anything unvisited; keep the
			// remaining stations in input order.
			for _, id := range ids {
				if !visited[id] {
					order = append(order, id)
					visited[id] = true
				}
			}
			break
		}

		order = append(order, next)
		visited[next] = true
		current = next
	}

	return order
}

// TwoOptImprove refines an order by reversing sub-segments that shorten the
// route, repeating passes until a pass yields no improvement or the pass cap
// is hit. Reversals touching an edge the matrix does not know are skipped, so
// the optimizer never trades verified travel time for unverified.
// Returns the improved order and the number of passes performed.
func TwoOptImprove(order []uint, cost CostFunc) ([]uint, int) {
	result := append([]uint(nil), order...)
	if len(result) < 4 {
		return result, 0
	}

	passes := 0
	for passes < maxTwoOptPasses {
		passes++
		improved := false

		for i := 1; i <= len(result)-3; i++ {
			for k := i + 1; k <= len(result)-2; k++ {
				before, ok1 := cost(result[i-1], result[i])
				after, ok2 := cost(result[k], result[k+1])
				newBefore, ok3 := cost(result[i-1], result[k])
				newAfter, ok4 := cost(result[i], result[k+1])
				if !ok1 || !ok2 || !ok3 || !ok4 {
					continue
				}

				delta := (before + after) - (newBefore + newAfter)
				if delta > improvementThreshold {
					reverse(result, i, k)
					improved = true
				}
			}
		}

		if !improved {
			break
		}
	}

	return result, passes
}

// RouteSeconds sums the known consecutive-edge costs of an order. hasData is
// false when no edge along the route exists in the matrix.
func RouteSeconds(order []uint, cost CostFunc) (total float64, hasData bool) {
	for i := 0; i+1 < len(order); i++ {
		if c, ok := cost(order[i], order[i+1]); ok {
			total += c
			hasData = true
		}
	}
	return total, hasData
}

func reverse(ids []uint, i, k int) {
	for i < k {
		ids[i], ids[k] = ids[k], ids[i]
		i++
		k--
	}
}
