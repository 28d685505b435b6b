package orthopack

// constructResult is the output of a single container's construction run:
// the items that remain unplaced (in their original relative order), the
// container's objective value, and the placements decided for it.
type constructResult struct {
	remaining  []Item
	objValue   float64
	placements map[string]Placement
}

// construct runs the point-generation construction heuristic for one
// container. W is the container's width; L is its *effective* length
// (container.L for bin packing, the current container height for strip
// packing). items is walked in order for each candidate point; rotation
// allows a 90-degree flip when the unrotated orientation doesn't fit.
//
// Grounded on mixins.py `_construct`.
func construct(W, L int, items []Item, rotation bool, strategy Strategy, stripPack bool) constructResult {
	grid := newOccupancyGrid(W, L)

	horizontals := newSegmentIndex()
	horizontals.add(0, segment{start: 0, end: W})

	verticals := newSegmentIndex()
	verticals.add(0, segment{start: 0, end: L})
	verticals.add(W, segment{start: 0, end: L})

	queues := newPointQueues()

	remaining := make([]Item, len(items))
	copy(remaining, items)

	placements := make(map[string]Placement)

	totalSurface := float64(W * L)
	objValue := 0.0
	itemsArea := 0

	point := origin
	hasPoint := true

	for {
		if !hasPoint || len(remaining) == 0 || objValue >= 1.0 {
			break
		}

		Xo, Yo := point.X, point.Y
		placedIdx := -1

		for idx, it := range remaining {
			w, l := it.W, it.L
			rotated := false

			ok := fits(W, L, Xo, Yo, w, l, grid)
			if !ok {
				if !rotation {
					continue
				}
				rotated = true
				w, l = l, w
				ok = fits(W, L, Xo, Yo, w, l, grid)
				if !ok {
					continue
				}
			}

			grid.fill(Xo, Yo, w, l)
			placements[it.ID] = Placement{X: Xo, Y: Yo, W: w, L: l, Rotated: rotated}

			itemsArea += w * l
			objValue += float64(w*l) / totalSurface

			generatePoints(W, L, horizontals, verticals, queues, Xo, Yo, w, l)
			appendSegments(horizontals, verticals, Xo, Yo, w, l)

			placedIdx = idx
			break
		}

		if placedIdx >= 0 {
			remaining = append(remaining[:placedIdx:placedIdx], remaining[placedIdx+1:]...)
		}

		var cat Category
		point, cat, hasPoint = nextPoint(queues, strategy)
		_ = cat
	}

	if stripPack {
		height := stripPackHeight(horizontals)
		objValue = float64(itemsArea) / float64(W*height)
	}

	return constructResult{remaining: remaining, objValue: objValue, placements: placements}
}

// stripPackHeight returns the occupied height of a strip-pack construction:
// the greatest Y-level recorded in the horizontal segment index, or 1 if
// nothing was placed (mirrors `max(set(horizontals)) or 1`).
func stripPackHeight(horizontals *segmentIndex) int {
	max := 0
	for _, lvl := range horizontals.levels {
		if lvl > max {
			max = lvl
		}
	}
	if max == 0 {
		return 1
	}
	return max
}
