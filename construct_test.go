package orthopack

import "testing"

// TestConstructTrivialFit mirrors spec.md §8 Scenario 1: a single 5x5 item
// fits exactly into a 10x10 container.
func TestConstructTrivialFit(t *testing.T) {
	items := []Item{mustItem(t, "a", 5, 5)}
	res := construct(10, 10, items, true, DefaultStrategy, false)

	if len(res.remaining) != 0 {
		t.Fatalf("expected all items placed, got %d remaining", len(res.remaining))
	}
	pl := res.placements["a"]
	if pl.X != 0 || pl.Y != 0 || pl.W != 5 || pl.L != 5 {
		t.Errorf("placement = %+v, want {0,0,5,5}", pl)
	}
	if res.objValue != 0.25 {
		t.Errorf("objValue = %v, want 0.25", res.objValue)
	}
}

// TestConstructRotationRequired mirrors spec.md §8 Scenario 2: a 3x2 item
// only fits a 2x3 container when rotated.
func TestConstructRotationRequired(t *testing.T) {
	items := []Item{mustItem(t, "a", 3, 2)}
	strategy := Strategy{CatB}
	res := construct(2, 3, items, true, strategy, false)

	if len(res.remaining) != 0 {
		t.Fatalf("expected item placed, got %d remaining", len(res.remaining))
	}
	pl := res.placements["a"]
	if !pl.Rotated {
		t.Error("expected rotated placement")
	}
	if pl.X != 0 || pl.Y != 0 || pl.W != 2 || pl.L != 3 {
		t.Errorf("placement = %+v, want {0,0,2,3,rotated}", pl)
	}
}

// TestConstructAPrimeProjection mirrors spec.md §8 Scenario 3: placing two
// tall, narrow items side by side from the left wall generates an A'
// candidate point at (0,3), where the second item's top-left corner
// projects left onto the container wall.
func TestConstructAPrimeProjection(t *testing.T) {
	items := []Item{mustItem(t, "a", 1, 2), mustItem(t, "b", 1, 3)}
	strategy := Strategy{CatB}

	grid := newOccupancyGrid(5, 5)
	horizontals := newSegmentIndex()
	horizontals.add(0, segment{0, 5})
	verticals := newSegmentIndex()
	verticals.add(0, segment{0, 5})
	verticals.add(5, segment{0, 5})
	queues := newPointQueues()

	remaining := items
	point := origin
	placements := make(map[string]Placement)

	for len(remaining) > 0 {
		var placedIdx = -1
		for idx, it := range remaining {
			if !fits(5, 5, point.X, point.Y, it.W, it.L, grid) {
				continue
			}
			grid.fill(point.X, point.Y, it.W, it.L)
			placements[it.ID] = Placement{X: point.X, Y: point.Y, W: it.W, L: it.L}
			generatePoints(5, 5, horizontals, verticals, queues, point.X, point.Y, it.W, it.L)
			appendSegments(horizontals, verticals, point.X, point.Y, it.W, it.L)
			placedIdx = idx
			break
		}
		if placedIdx < 0 {
			break
		}
		remaining = append(remaining[:placedIdx:placedIdx], remaining[placedIdx+1:]...)
		var hasPoint bool
		point, _, hasPoint = nextPoint(queues, strategy)
		if !hasPoint {
			break
		}
	}

	if placements["a"].X != 0 || placements["a"].Y != 0 {
		t.Fatalf("first item placement = %+v, want (0,0)", placements["a"])
	}
	if placements["b"].X != 1 || placements["b"].Y != 0 {
		t.Fatalf("second item placement = %+v, want (1,0)", placements["b"])
	}

	found := false
	for i := queues.head[CatAprime]; i < len(queues.items[CatAprime]); i++ {
		if queues.items[CatAprime][i] == (Point{0, 3}) {
			found = true
		}
	}
	if !found {
		t.Error("expected A' queue to contain (0,3)")
	}
}

// TestConstructContainerTooSmall: no item fits at the origin yields an
// empty per-container solution, not an error.
func TestConstructContainerTooSmall(t *testing.T) {
	items := []Item{mustItem(t, "a", 5, 5)}
	res := construct(2, 2, items, false, DefaultStrategy, false)
	if len(res.placements) != 0 {
		t.Errorf("expected no placements, got %v", res.placements)
	}
	if len(res.remaining) != 1 {
		t.Errorf("expected item to remain unplaced")
	}
}

// TestConstructNoOverlap is a randomized-shape invariant check: placed
// rectangles never overlap and never exceed the container bounds.
func TestConstructNoOverlap(t *testing.T) {
	items := []Item{
		mustItem(t, "a", 3, 2),
		mustItem(t, "b", 2, 2),
		mustItem(t, "c", 4, 1),
		mustItem(t, "d", 1, 1),
		mustItem(t, "e", 2, 3),
	}
	res := construct(6, 6, items, true, DefaultStrategy, false)

	var rects []Rect
	for _, pl := range res.placements {
		r := NewRect(pl.X, pl.Y, pl.W, pl.L)
		bound := NewRect(0, 0, 6, 6)
		if !bound.ContainsRect(r) {
			t.Errorf("placement %v escapes container bounds", r)
		}
		for _, other := range rects {
			if r.Intersects(other) {
				t.Errorf("placements %v and %v overlap", r, other)
			}
		}
		rects = append(rects, r)
	}
}

// TestConstructDeterministic checks that two independent runs with the
// same inputs produce identical placements (spec.md §8).
func TestConstructDeterministic(t *testing.T) {
	mk := func() []Item {
		return []Item{
			mustItem(t, "a", 3, 2),
			mustItem(t, "b", 2, 2),
			mustItem(t, "c", 1, 4),
		}
	}
	r1 := construct(6, 6, mk(), true, DefaultStrategy, false)
	r2 := construct(6, 6, mk(), true, DefaultStrategy, false)

	if r1.objValue != r2.objValue {
		t.Fatalf("objValue differs across runs: %v vs %v", r1.objValue, r2.objValue)
	}
	for id, pl := range r1.placements {
		if r2.placements[id] != pl {
			t.Errorf("placement for %q differs: %+v vs %+v", id, pl, r2.placements[id])
		}
	}
}

// TestConstructNoRotationNeverRotates: rotation disabled means no
// placement ever carries rotated=true (spec.md §8 boundary case).
func TestConstructNoRotationNeverRotates(t *testing.T) {
	items := []Item{mustItem(t, "a", 3, 2), mustItem(t, "b", 1, 5)}
	res := construct(6, 6, items, false, DefaultStrategy, false)
	for id, pl := range res.placements {
		if pl.Rotated {
			t.Errorf("item %q placed rotated with rotation disabled", id)
		}
	}
}

// TestConstructStripPackObjective checks the strip-pack objective is
// recomputed against the occupied height, not the nominal container
// length.
func TestConstructStripPackObjective(t *testing.T) {
	items := []Item{mustItem(t, "a", 2, 2)}
	res := construct(2, 100, items, false, DefaultStrategy, true)
	want := float64(4) / float64(2*2)
	if res.objValue != want {
		t.Errorf("strip-pack objValue = %v, want %v", res.objValue, want)
	}
}
