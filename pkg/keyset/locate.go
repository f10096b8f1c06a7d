package keyset

import "slices"

// Locator answers nearest-group queries over a finalized group list. It
// holds only the start table, which stays in sync with the groups it was
// built from: same length, same order, starts[i] == groups[i][0].
type Locator struct {
	starts []uint32
	page   uint32
}

// NewLocator extracts the start table from groups. BuildGroups produces
// groups in ascending start order, so the table is already sorted and no
// sort pass is needed. page is the exclusive distance window for Locate;
// page == 0 makes every query miss.
func NewLocator(groups []Group, page uint32) *Locator {
	starts := make([]uint32, len(groups))
	for i, g := range groups {
		starts[i] = g.Start()
	}
	return &Locator{starts: starts, page: page}
}

// Len returns the number of indexed groups.
func (l *Locator) Len() int {
	return len(l.starts)
}

// Locate returns the index of the group whose start lies strictly within the
// page window of x. The candidates are the two groups bracketing x's
// insertion position; when both qualify the earlier group wins. The boolean
// is false when no group qualifies, including on an empty locator.
func (l *Locator) Locate(x uint32) (int, bool) {
	pos, _ := slices.BinarySearch(l.starts, x)
	if pos > 0 && l.within(l.starts[pos-1], x) {
		return pos - 1, true
	}
	if pos < len(l.starts) && l.within(l.starts[pos], x) {
		return pos, true
	}
	return -1, false
}

func (l *Locator) within(start, x uint32) bool {
	d := int64(start) - int64(x)
	if d < 0 {
		d = -d
	}
	return d < int64(l.page)
}
