package orthopack

import "testing"

func TestFitsWithinEmptyContainer(t *testing.T) {
	grid := newOccupancyGrid(10, 10)
	if !fits(10, 10, 0, 0, 5, 5, grid) {
		t.Error("expected 5x5 at origin to fit in empty 10x10 container")
	}
}

func TestFitsRejectsOutOfBounds(t *testing.T) {
	grid := newOccupancyGrid(10, 10)
	if fits(10, 10, 6, 6, 5, 5, grid) {
		t.Error("expected rectangle exceeding container bounds to be rejected")
	}
}

func TestFitsRejectsOverlap(t *testing.T) {
	grid := newOccupancyGrid(10, 10)
	grid.fill(0, 0, 5, 5)
	if fits(10, 10, 2, 2, 5, 5, grid) {
		t.Error("expected overlap with an occupied cell to be rejected")
	}
	if !fits(10, 10, 5, 0, 5, 5, grid) {
		t.Error("expected an adjacent, non-overlapping placement to fit")
	}
}

func TestFitsCornerRejectsFast(t *testing.T) {
	grid := newOccupancyGrid(10, 10)
	grid.fill(9, 9, 1, 1)
	if fits(10, 10, 5, 5, 5, 5, grid) {
		t.Error("expected far-corner occupancy to reject the candidate placement")
	}
}
