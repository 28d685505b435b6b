package orthopack

import (
	"cmp"
	"slices"
)

// SortItems orders a slice of items in place by the chosen key, mirroring
// ItemsUtilsMixin.sort_items (mixins.py). by must be one of "area",
// "perimeter", or "longest_side_ratio".
func SortItems(items []Item, by string, reverse bool) error {
	var less func(a, b Item) int

	switch by {
	case "area":
		less = func(a, b Item) int { return cmp.Compare(a.Area(), b.Area()) }
	case "perimeter":
		less = func(a, b Item) int { return cmp.Compare(a.Perimeter(), b.Perimeter()) }
	case "longest_side_ratio":
		less = func(a, b Item) int { return cmp.Compare(a.LongestSideRatio(), b.LongestSideRatio()) }
	default:
		return newError(KindItems, "unknown sort key: "+by)
	}

	if reverse {
		slices.SortFunc(items, func(a, b Item) int { return less(b, a) })
	} else {
		slices.SortFunc(items, less)
	}
	return nil
}

// OrientItems rotates each item in place so that its width/length satisfy
// the requested orientation: "wide" forces w >= l, "long" forces w <= l.
// Mirrors ItemsUtilsMixin.orient_items. Orientation "" is a no-op.
func OrientItems(items []Item, orientation string) error {
	switch orientation {
	case "":
		return nil
	case "wide":
		for i := range items {
			if items[i].L > items[i].W {
				items[i].W, items[i].L = items[i].L, items[i].W
			}
		}
	case "long":
		for i := range items {
			if items[i].L < items[i].W {
				items[i].W, items[i].L = items[i].L, items[i].W
			}
		}
	default:
		return newError(KindItems, "unknown orientation: "+orientation)
	}
	return nil
}
