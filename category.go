package orthopack

import "fmt"

// Category classifies a candidate point by how the Point Generator derived
// it. Encoded as a small enum (rather than a string-keyed map, per the
// Design Notes) so per-category FIFO queues can live in a fixed-size array.
type Category uint8

const (
	CatA Category = iota
	CatB
	CatAprime  // A'
	CatBprime  // B'
	CatAdbl    // A''
	CatBdbl    // B''
	CatC
	CatD
	CatE
	CatF
	numCategories
)

// categoryNames mirrors the labels used in spec.md and the Python
// original's potential_points dict keys ("A", "B", "A_", "B_", "A__",
// "B__", "C", "D", "E", "F").
var categoryNames = [numCategories]string{
	CatA:      "A",
	CatB:      "B",
	CatAprime: "A_",
	CatBprime: "B_",
	CatAdbl:   "A__",
	CatBdbl:   "B__",
	CatC:      "C",
	CatD:      "D",
	CatE:      "E",
	CatF:      "F",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// ParseCategory resolves a category label back to its enum value. Returns
// false when the label is not one of the ten known categories.
func ParseCategory(label string) (Category, bool) {
	for i, name := range categoryNames {
		if name == label {
			return Category(i), true
		}
	}
	return 0, false
}

// Strategy is an ordered list of categories defining drain priority from
// the point queues (§4.3 Strategy Scheduler). It must be duplicate-free and
// every element must be a known category.
type Strategy []Category

// DefaultStrategy is the precedence order used unless a different strategy
// is selected, and is the baseline that hypersearch's permutable prefix
// (A, B, C, D, A', B') is concatenated with the fixed suffix (A'', B'', F, E)
// from — matching STRATEGIES_SUFFIX in the Python original.
var DefaultStrategy = Strategy{CatA, CatB, CatC, CatD, CatAprime, CatBprime, CatAdbl, CatBdbl, CatF, CatE}

// binPackSuffix / stripPackSuffix are the fixed suffixes hypersearch's
// exhaustive permutation concatenates onto the permutable prefix
// {A, B, C, D, A', B'}.
var (
	binPackSuffix   = Strategy{CatAdbl, CatBdbl, CatF, CatE}
	stripPackSuffix = Strategy{CatBdbl, CatAdbl, CatF, CatE}
)

// Validate checks the strategy is duplicate-free and contains only known
// categories, mirroring the potential_points_strategy setter.
func (s Strategy) Validate() error {
	seen := make(map[Category]bool, len(s))
	for _, c := range s {
		if int(c) >= int(numCategories) {
			return ErrStrategyUnknown
		}
		if seen[c] {
			return ErrStrategyDuplicate
		}
		seen[c] = true
	}
	return nil
}
