package orthopack

// Item is a rectangular piece to be placed. Its placement (origin and
// rotation) is not stored here — it lives in the Solution produced by a
// construction run, keeping the item definition itself immutable between
// solves.
type Item struct {
	ID string
	W  int
	L  int
}

func newItem(id string, w, l int) (Item, error) {
	if err := validateDims(w, l); err != nil {
		return Item{}, err
	}
	return Item{ID: id, W: w, L: l}, nil
}

// Area returns w*l.
func (it Item) Area() int {
	return it.W * it.L
}

// Perimeter returns 2*(w+l).
func (it Item) Perimeter() int {
	return 2 * (it.W + it.L)
}

// LongestSideRatio returns max(w,l)/min(w,l).
func (it Item) LongestSideRatio() float64 {
	w, l := float64(it.W), float64(it.L)
	if w > l {
		return w / l
	}
	return l / w
}

// placedItem pairs an item's static dimensions with a placement decision.
// construct records its placements as Placement values and does not use
// this type.
type placedItem struct {
	Item
	Xo, Yo   int
	Rotated  bool
}

// effective returns the item's placed footprint, accounting for rotation.
func (p placedItem) effective() (w, l int) {
	if p.Rotated {
		return p.L, p.W
	}
	return p.W, p.L
}
