package slicepager

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/samber/lo"
)

// RangeItem is an entry of a page range: either a page number or Ellipsis.
type RangeItem int

// Ellipsis marks two or more consecutive pages left out of a page range.
const Ellipsis RangeItem = 0

// IsEllipsis reports whether r stands for left out pages.
func (r RangeItem) IsEllipsis() bool {
	return r == Ellipsis
}

// String - implements fmt.Stringer.
func (r RangeItem) String() string {
	if r.IsEllipsis() {
		return "..."
	}

	return strconv.Itoa(int(r))
}

// PageRange returns the ordered page numbers to show in navigation controls
// for numPages pages with current selected.
//
// Pages 1..leftEdge, numPages-rightEdge+1..numPages and
// current-onEachSide..current+onEachSide are shown. A single left out page
// is shown as well, while two or more consecutive left out pages collapse into
// one Ellipsis. Two Ellipsis entries are therefore never adjacent.
//
// Example: PageRange(6, 12, 1, 1, 1) returns
//
//	[1 ... 5 6 7 ... 12]
func PageRange(current, numPages, leftEdge, rightEdge, onEachSide int) ([]RangeItem, error) {
	if leftEdge < 0 || rightEdge < 0 {
		return nil, fmt.Errorf("%w: negative page range edge (%d, %d)", ErrInvalidConfig, leftEdge, rightEdge)
	}
	if onEachSide < 1 {
		return nil, fmt.Errorf("%w: page range window %d must be positive", ErrInvalidConfig, onEachSide)
	}
	if current < 1 || current > numPages {
		return nil, fmt.Errorf("%w: page %d is not within [1, %d]", ErrOutOfRange, current, numPages)
	}

	// Bounds are clamped to the available pages before any arithmetic so
	// large edges or windows cannot overflow.
	spans := []span{
		{1, min(leftEdge, numPages)},
		{numPages - min(rightEdge, numPages) + 1, numPages},
		{current - min(onEachSide, current-1), current + min(onEachSide, numPages-current)},
	}
	spans = lo.FilterMap(spans, func(s span, _ int) (span, bool) {
		s = span{max(s.from, 1), min(s.to, numPages)}
		return s, s.from <= s.to
	})
	slices.SortFunc(spans, func(a, b span) int { return cmp.Compare(a.from, b.from) })

	var ret []RangeItem
	// last is the last page emitted so far, 0 before the first one.
	last := 0
	for _, s := range spans {
		if s.to <= last {
			continue
		}

		switch gap := s.from - last - 1; {
		case gap == 1:
			s.from = last + 1
		case gap > 1:
			ret = append(ret, Ellipsis)
		}

		for page := max(s.from, last+1); page <= s.to; page++ {
			ret = append(ret, RangeItem(page))
		}
		last = s.to
	}

	switch gap := numPages - last; {
	case gap == 1:
		ret = append(ret, RangeItem(numPages))
	case gap > 1:
		ret = append(ret, Ellipsis)
	}

	return ret, nil
}

type span struct {
	from, to int
}
