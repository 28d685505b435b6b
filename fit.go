package orthopack

// fits decides whether a w×l rectangle placed at origin (Xo,Yo) lies
// within [0,W)×[0,L) and overlaps no cell already marked in grid.
//
// The scan order is a deliberate fast-reject contract (spec.md §4.1): the
// two near corners and two far corners are checked first (these are the
// cells most likely to already be occupied by an adjacent placement),
// followed by the top row and left column of the interior, followed by
// the remaining interior. The result is independent of this order; it
// only affects how quickly a non-fit is detected.
func fits(W, L, Xo, Yo, w, l int, grid *occupancyGrid) bool {
	if Xo+w > W || Yo+l > L {
		return false
	}

	x2, y2 := Xo+w-1, Yo+l-1

	// near corners: (Xo,Yo) and (Xo,y2); far corners: (x2,Yo) and (x2,y2)
	if grid.get(Xo, Yo) || grid.get(Xo, y2) || grid.get(x2, Yo) || grid.get(x2, y2) {
		return false
	}

	for x := Xo + 1; x < x2; x++ {
		if grid.get(x, y2) {
			return false
		}
	}
	for y := Yo + 1; y < y2; y++ {
		if grid.get(Xo, y) {
			return false
		}
	}

	for x := Xo + 1; x < x2; x++ {
		if grid.get(x, Yo) {
			return false
		}
	}
	for y := Yo + 1; y < y2; y++ {
		if grid.get(x2, y) {
			return false
		}
	}

	for y := Yo + 1; y < y2; y++ {
		for x := Xo + 1; x < x2; x++ {
			if grid.get(x, y) {
				return false
			}
		}
	}

	return true
}
