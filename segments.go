package orthopack

import "sort"

// segment is a horizontal or vertical edge of a placed item. For a
// horizontal segment at Y-level y, it spans X in [X1, X2). For a vertical
// segment at X-level x, it spans Y in [Y1, Y2).
type segment struct {
	start, end int
}

// segmentIndex maintains, per coordinate level, the ordered list of edge
// segments of placed items. Horizontals are keyed by Y-level (each segment
// spans an X range); verticals are keyed by X-level (each segment spans a
// Y range). Grounded on mixins.py's `horizontals`/`verticals` dict-of-lists,
// reimplemented with an explicit sorted-level cache since Go maps don't
// iterate in order and the point generator repeatedly needs `sorted(keys)`.
type segmentIndex struct {
	byLevel map[int][]segment
	levels  []int // kept sorted ascending
}

func newSegmentIndex() *segmentIndex {
	return &segmentIndex{byLevel: make(map[int][]segment)}
}

// add appends a segment at the given level, inserting the level into the
// sorted cache if it is new.
func (s *segmentIndex) add(level int, seg segment) {
	segs, ok := s.byLevel[level]
	if !ok {
		i := sort.SearchInts(s.levels, level)
		s.levels = append(s.levels, 0)
		copy(s.levels[i+1:], s.levels[i:])
		s.levels[i] = level
	}
	s.byLevel[level] = append(segs, seg)
}

// at returns the segments recorded at the given level, in their stored
// order (insertion order unless sortAt has reordered that level), and
// whether the level has any segments at all.
func (s *segmentIndex) at(level int) ([]segment, bool) {
	segs, ok := s.byLevel[level]
	return segs, ok
}

// levelsBelow returns the recorded levels strictly less than the given
// coordinate, in ascending order (mirrors `[x for x in verts if x < Xo]`).
func (s *segmentIndex) levelsBelow(coord int) []int {
	i := sort.SearchInts(s.levels, coord)
	out := make([]int, i)
	copy(out, s.levels[:i])
	return out
}

// sortAt sorts the segments recorded at a level by (start, end), matching
// `segments.sort()` on the list-of-tuples representation in the original.
func (s *segmentIndex) sortAt(level int) {
	segs := s.byLevel[level]
	sort.Slice(segs, func(i, j int) bool {
		if segs[i].start != segs[j].start {
			return segs[i].start < segs[j].start
		}
		return segs[i].end < segs[j].end
	})
}
