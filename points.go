package orthopack

// pointQueues holds the ten per-category FIFO queues of candidate points.
// The O=(0,0) seed point is not queued here; construct starts from origin.
// Backed by a fixed-size array of slices (Design Notes §9) rather than a
// string-keyed map.
type pointQueues struct {
	items [numCategories][]Point
	head  [numCategories]int
}

func newPointQueues() *pointQueues {
	return &pointQueues{}
}

func (q *pointQueues) push(c Category, p Point) {
	q.items[c] = append(q.items[c], p)
}

func (q *pointQueues) empty(c Category) bool {
	return q.head[c] >= len(q.items[c])
}

// pop removes and returns the head of the category's queue.
func (q *pointQueues) pop(c Category) Point {
	p := q.items[c][q.head[c]]
	q.head[c]++
	return p
}

// remove deletes the first not-yet-consumed occurrence of p from category
// c's queue, if present. Used by the C/D rules to retract a previously
// queued A''/B'' fallback point that C/D supersedes.
func (q *pointQueues) remove(c Category, p Point) {
	items := q.items[c]
	for i := q.head[c]; i < len(items); i++ {
		if items[i] == p {
			q.items[c] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

// generatePoints inspects the horizontal/vertical segment indices after a
// placement at (Xo,Yo) with effective size w×l, and appends zero or more
// candidate points to the ten category queues. L is the container's
// current effective length (container_height for strip packing).
//
// This is a close, line-by-line port of the Python original's
// `_generate_points` (mixins.py): the control flow (loop direction,
// break/continue points, intersegment counting, continuation-segment
// lookahead) is preserved deliberately, since spec.md defers to the
// reference point test suites for exact semantics rather than a
// from-scratch redescription.
func generatePoints(W, L int, horizontals, verticals *segmentIndex, queues *pointQueues, Xo, Yo, w, l int) {
	A := Point{Xo, Yo + l}
	B := Point{Xo + w, Yo}
	Ay := Yo + l
	Bx := Xo + w

	AGen := false
	appendAdbl := true
	prohibitAprimeAndE := false

	// A POINT ON BIN WALL
	if Ay < L && Xo == 0 {
		AGen = true
		queues.push(CatA, A)
	} else if Ay < L {
		// A POINT NOT ON BIN WALL
		segs, _ := verticals.at(Xo)
		appendA := false
		for _, seg := range segs {
			if seg.start == Ay || Ay == seg.end {
				prohibitAprimeAndE = true
			}
			if seg.start <= Ay && seg.end > Ay {
				appendA = true
				break
			}
		}
		if hsegs, ok := horizontals.at(Ay); ok {
			for _, seg := range hsegs {
				if seg.start <= Xo && seg.end > Xo {
					appendA = false
					appendAdbl = false
					break
				}
			}
		}
		if appendA {
			queues.push(CatA, A)
			AGen = true
		}
	}

	// A' or E POINT
	vertsLtXo := verticals.levelsBelow(Xo)
	if !AGen && !prohibitAprimeAndE && len(vertsLtXo) > 0 {
		num := 0
		stop := false
		found := false
		for i := len(vertsLtXo) - 1; i >= 0; i-- {
			vertX := vertsLtXo[i]
			increasedNum := false
			verticals.sortAt(vertX)
			segs, _ := verticals.at(vertX)
			for si, seg := range segs {
				segStartY, segEndY, segStartX := seg.start, seg.end, vertX
				if segStartY > Ay {
					break
				}
				if segEndY == Ay {
					dontStop := false
					for _, subSeg := range segs[si+1:] {
						if subSeg.start == Ay {
							dontStop = true
							break
						}
					}
					if !dontStop {
						stop = true
						break
					}
				}
				if !increasedNum && segEndY > Yo && segEndY < Ay {
					num++
					increasedNum = true
				}
				if segStartY <= Ay && segEndY > Ay {
					p := Point{segStartX, Ay}
					if num <= 1 || (num <= 2 && increasedNum) {
						queues.push(CatAprime, p)
					} else {
						queues.push(CatE, p)
					}
					found = true
				}
			}
			if stop || found {
				break
			}
		}
	}

	// A'' POINT (fallback)
	if !AGen && Ay < L && appendAdbl {
		queues.push(CatAdbl, A)
	}

	// % ---------------------------------------------------------
	BGen := false
	prohibitBprimeAndF := false
	appendBdbl := true

	// B POINT ON BIN BOTTOM
	if Bx < W && Yo == 0 {
		BGen = true
		queues.push(CatB, B)
	} else if Bx < W {
		// B POINT NOT ON BIN BOTTOM
		segs, _ := horizontals.at(Yo)
		appendB := false
		for _, seg := range segs {
			if seg.start == Bx || seg.end == Bx {
				prohibitBprimeAndF = true
			}
			if seg.start <= Bx && seg.end > Bx {
				appendB = true
				break
			}
		}
		if vsegs, ok := verticals.at(Bx); ok {
			for _, seg := range vsegs {
				if seg.start <= Yo && seg.end > Yo {
					appendB = false
					appendBdbl = false
					break
				}
			}
		}
		if appendB {
			BGen = true
			queues.push(CatB, B)
		}
	}

	// B', F POINTS
	horsLtYo := horizontals.levelsBelow(Yo)
	if !BGen && !prohibitBprimeAndF && len(horsLtYo) > 0 {
		num := 0
		stop := false
		found := false
		for i := len(horsLtYo) - 1; i >= 0; i-- {
			horY := horsLtYo[i]
			increasedNum := false
			horizontals.sortAt(horY)
			segs, _ := horizontals.at(horY)
			for si, seg := range segs {
				segStartX, segEndX, segStartY := seg.start, seg.end, horY
				if segStartX > Bx {
					break
				}
				if segEndX == Bx {
					dontStop := false
					for _, subSeg := range segs[si+1:] {
						if subSeg.start == Bx {
							dontStop = true
							break
						}
					}
					if !dontStop {
						stop = true
						break
					}
				}
				if !increasedNum && segEndX > Xo && segEndX < Bx {
					num++
					increasedNum = true
				}
				if segStartX <= Bx && segEndX > Bx {
					p := Point{Bx, segStartY}
					if num <= 1 || (num <= 2 && increasedNum) {
						queues.push(CatBprime, p)
					} else {
						queues.push(CatF, p)
					}
					found = true
					break
				}
			}
			if stop || found {
				break
			}
		}
	}

	// B'' POINT (fallback)
	if !BGen && Bx < W && appendBdbl {
		queues.push(CatBdbl, B)
	}

	// % ---------------------------------------------------------
	// C POINT
	if _, ok := horizontals.at(Ay); ok {
		horizontals.sortAt(Ay)
		hsegs, _ := horizontals.at(Ay)
		appendC := false
		var cPoint Point
		var segEndXToAppend *int
		for _, seg := range hsegs {
			segStartX, segEndX := seg.start, seg.end
			if segEndXToAppend != nil && segStartX == *segEndXToAppend {
				appendC = false
				break
			}
			if segEndX > Xo && segEndX < Bx {
				appendC = true
				v := segEndX
				segEndXToAppend = &v
			}
		}
		if appendC {
			cPoint = Point{*segEndXToAppend, Ay}
			queues.push(CatC, cPoint)
			queues.remove(CatBdbl, cPoint)
		}
	}

	// % ---------------------------------------------------------
	// D POINT
	if vsegs, ok := verticals.at(Bx); ok {
		appendD := false
		var dPoint Point
		var endOfSegYToAppend *int
		for _, seg := range vsegs {
			segStartY, segEndY := seg.start, seg.end
			if segEndY > Yo && segEndY < Ay {
				appendD = true
				v := segEndY
				endOfSegYToAppend = &v
			}
			if segStartY < Ay && segEndY > Ay {
				appendD = false
				break
			}
		}
		if appendD {
			dPoint = Point{Bx, *endOfSegYToAppend}
			queues.push(CatD, dPoint)
			queues.remove(CatAdbl, dPoint)
		}
	}
}

// appendSegments records the four edges of a newly placed item into the
// horizontal and vertical segment indices.
func appendSegments(horizontals, verticals *segmentIndex, Xo, Yo, w, l int) {
	Ay, Bx := Yo+l, Xo+w

	verticals.add(Xo, segment{start: Yo, end: Ay})
	verticals.add(Bx, segment{start: Yo, end: Ay})

	horizontals.add(Yo, segment{start: Xo, end: Bx})
	horizontals.add(Ay, segment{start: Xo, end: Bx})
}
