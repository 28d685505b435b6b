package orthopack

import "testing"

func TestSegmentIndexAddKeepsLevelsSorted(t *testing.T) {
	idx := newSegmentIndex()
	idx.add(5, segment{0, 1})
	idx.add(1, segment{0, 1})
	idx.add(3, segment{0, 1})

	want := []int{1, 3, 5}
	if len(idx.levels) != len(want) {
		t.Fatalf("levels = %v, want %v", idx.levels, want)
	}
	for i, lvl := range want {
		if idx.levels[i] != lvl {
			t.Errorf("levels[%d] = %d, want %d", i, idx.levels[i], lvl)
		}
	}
}

func TestSegmentIndexLevelsBelow(t *testing.T) {
	idx := newSegmentIndex()
	idx.add(0, segment{0, 1})
	idx.add(5, segment{0, 1})
	idx.add(10, segment{0, 1})

	below := idx.levelsBelow(6)
	want := []int{0, 5}
	if len(below) != len(want) {
		t.Fatalf("levelsBelow(6) = %v, want %v", below, want)
	}
	for i := range want {
		if below[i] != want[i] {
			t.Errorf("levelsBelow(6)[%d] = %d, want %d", i, below[i], want[i])
		}
	}
}

func TestSegmentIndexSortAt(t *testing.T) {
	idx := newSegmentIndex()
	idx.add(0, segment{5, 9})
	idx.add(0, segment{0, 3})
	idx.sortAt(0)

	segs, _ := idx.at(0)
	if segs[0].start != 0 || segs[1].start != 5 {
		t.Errorf("sortAt did not order segments by start: %v", segs)
	}
}

func TestPointQueuesFIFOAndRemove(t *testing.T) {
	q := newPointQueues()
	q.push(CatA, Point{0, 0})
	q.push(CatA, Point{1, 1})

	if q.empty(CatA) {
		t.Fatal("expected non-empty queue")
	}
	if got := q.pop(CatA); got != (Point{0, 0}) {
		t.Errorf("pop() = %v, want (0,0)", got)
	}

	q.push(CatBdbl, Point{2, 2})
	q.remove(CatBdbl, Point{2, 2})
	if !q.empty(CatBdbl) {
		t.Error("expected removed point to leave the queue empty")
	}
}
