package orthopack

import "time"

// maxNeighborsThrottle is the neighbour-count cap applied when throttle is
// enabled (spec.md §4.6, Design Notes §9's "~72 items instance" example).
const maxNeighborsThrottle = 2500

// swapPair is an unordered index pair (i<j) into an item sequence.
type swapPair struct{ i, j int }

// allSwapPairs enumerates every unordered pair (i,j), i<j, in lexicographic
// order over [0,n). Built once per local-search run and reused across every
// node, mirroring `combinations(range(seq_length), 2)` in the Python
// original (abstract.py).
func allSwapPairs(n int) []swapPair {
	pairs := make([]swapPair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, swapPair{i, j})
		}
	}
	return pairs
}

// localSearchResult is the retained outcome of one local-search run.
type localSearchResult struct {
	solution           Solution
	objValPerContainer map[string]float64
}

// runLocalSearch performs the 2-opt hill climb described in spec.md §4.6.
//
// It evaluates the initial sequence, then repeatedly walks the full
// swap-pair list from its start (index (0,1)) against the *current*
// incumbent sequence, adopting the first strictly-improving neighbour
// (first-improvement) and restarting the swap-pair walk from the top
// against the new incumbent — this "restart from (0,1), not from where the
// improvement was found" behaviour is deliberate (spec.md §9, Design Notes)
// and is preserved even though it looks unusual at first read.
//
// Grounded on original_source/hyperpack/abstract.py (AbstractLocalSearch.local_search)
// composed with mixins.py (LocalSearchMixin.compare_node/extra_node_operations).
func (p *Problem) runLocalSearch(throttle bool, startTime time.Time) localSearchResult {
	retained := p.getInitSolution()
	bestObj := p.calculateObjValue()
	optimum := optimumObjectiveVal()

	nodeSeq := p.itemIDOrder()
	n := len(nodeSeq)
	swaps := allSwapPairs(n)

	maxNeighbors := n * (n - 1) / 2
	if throttle && maxNeighbors > maxNeighborsThrottle {
		maxNeighbors = maxNeighborsThrottle
	}

	if p.stripPack {
		p.heightsHistory = []int{p.containerHeight}
	}

	for {
		neighborFound := false
		outOfTime := false
		globalOptima := false
		processed := 0

		for _, sw := range swaps {
			currentSeq := make([]string, n)
			copy(currentSeq, nodeSeq)
			currentSeq[sw.i], currentSeq[sw.j] = currentSeq[sw.j], currentSeq[sw.i]

			p.solve(currentSeq)
			newObj := p.calculateObjValue()
			processed++

			if p.acceptNode(newObj, bestObj) {
				nodeSeq = currentSeq
				bestObj = newObj
				retained = p.getSolution()

				if p.stripPack {
					p.extraNodeOperations()
				}

				neighborFound = true
				globalOptima = globalCheck(bestObj, optimum)
			}

			outOfTime = time.Since(startTime) >= time.Duration(p.settings.MaxTimeInSeconds)*time.Second
			hitCap := processed >= maxNeighbors

			if outOfTime || neighborFound || globalOptima || hitCap {
				break
			}
		}

		if !(neighborFound && !outOfTime && !globalOptima) {
			break
		}
	}

	return retained
}

// acceptNode implements the acceptance rule of spec.md §4.6
// (mixins.py LocalSearchMixin.compare_node): bin packing accepts any
// strict improvement; strip packing additionally requires every item to
// be placed when container_min_height is unset.
func (p *Problem) acceptNode(newObj, bestObj float64) bool {
	better := newObj > bestObj
	if !p.stripPack {
		return better
	}
	if p.containerMinHeight == nil {
		complete := len(p.solution[StripPackContainerID]) == len(p.items)
		return complete && better
	}
	return better
}

// extraNodeOperations updates the strip-pack container height to the
// height actually occupied by the just-accepted solution, and records it
// in the height history (spec.md §4.6).
func (p *Problem) extraNodeOperations() {
	h := solutionHeight(p.solution[StripPackContainerID])
	if h < 1 {
		h = 1
	}
	p.containerHeight = h
	p.heightsHistory = append(p.heightsHistory, h)
}

// solutionHeight returns the greatest Y-extent among a container's
// placements, or 0 if it is empty.
func solutionHeight(items map[string]Placement) int {
	h := 0
	for _, pl := range items {
		if top := pl.Y + pl.L; top > h {
			h = top
		}
	}
	return h
}

// optimumObjectiveVal is the global-optimum sentinel. The solver only
// operates in maximization mode, so this is +Inf and global_check never
// fires in practice (spec.md §9) — preserved for symmetry with a
// hypothetical future minimization variant.
func optimumObjectiveVal() float64 {
	return posInf
}

// globalCheck reports whether value has reached the optimum sentinel.
func globalCheck(value, optimum float64) bool {
	return value >= optimum
}
