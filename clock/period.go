package clock

import (
	"fmt"

	"github.com/chronal/chronal/clock/leap"
	"github.com/chronal/chronal/clock/types"
)

// Period represents the interval between two points in time. The
// endpoints keep the order they were given in; start is not required
// to precede end.
type Period struct {
	start DateTime
	end   DateTime
}

// NewPeriod returns the Period from start to end.
func NewPeriod(start, end DateTime) Period {
	return Period{start: start, end: end}
}

// Start returns the opening endpoint of p.
func (p Period) Start() DateTime { return p.start }

// End returns the closing endpoint of p.
func (p Period) End() DateTime { return p.end }

// IsForward reports whether the start of p does not follow its end.
func (p Period) IsForward() bool {
	return p.start.IsBeforeOrEqual(p.end)
}

// Distance returns the absolute span between the endpoints of p,
// regardless of their order.
func (p Period) Distance() types.Unit {
	return p.end.UnixTimestamp().Sub(p.start.UnixTimestamp()).Abs()
}

// LeapSeconds returns the view of the historical leap-second table
// spanning p: every adjustment at or between its endpoints.
func (p Period) LeapSeconds() (*leap.Table, error) {
	table, err := leap.Load()
	if err != nil {
		return nil, err
	}
	lo, hi := p.start, p.end
	if !p.IsForward() {
		lo, hi = hi, lo
	}
	return table.Since(lo.GoTime()).Until(hi.GoTime()), nil
}

// Iterate returns the Sequence stepping from the start of p toward its
// end by the given span. Returns an error wrapping ErrInvalidArgument
// if by is zero, since the sequence would never terminate.
func (p Period) Iterate(by types.Unit) (Sequence, error) {
	return newSequence(p.start, p.end, by)
}

// IterateBackward returns the Sequence stepping from the end of p
// toward its start.
func (p Period) IterateBackward(by types.Unit) (Sequence, error) {
	return newSequence(p.end, p.start, by)
}

// Sequence is a lazy, finite sequence of DateTime values stepping from
// one endpoint of an interval toward the other. Each element is
// computed directly from the start instant, the step, and its index,
// so a Sequence can be re-iterated or indexed at random and always
// yields the same values.
type Sequence struct {
	start DateTime
	step  types.Unit
	size  int
}

// newSequence computes the signed step and element count for walking
// from origin to bound. The first element is always origin; no element
// past bound is ever produced.
func newSequence(origin, bound DateTime, by types.Unit) (Sequence, error) {
	if by.IsZero() {
		return Sequence{}, fmt.Errorf(
			"%w: iteration step must not be zero", ErrInvalidArgument,
		)
	}

	step := by.Abs()
	if origin.IsAfter(bound) {
		step = step.Negate()
	}

	span := bound.UnixTimestamp().Sub(origin.UnixTimestamp()).Abs()
	return Sequence{start: origin, step: step, size: spanCount(span, step.Abs())}, nil
}

// spanCount returns the number of sequence elements that fit in span
// when stepping by step: the origin plus one element per whole step.
func spanCount(span, step types.Unit) int {
	whole := span.InSeconds()*1_000_000 + int64(span.Microsecond())
	unit := step.InSeconds()*1_000_000 + int64(step.Microsecond())
	return int(whole/unit) + 1
}

// Len returns the number of elements in s.
func (s Sequence) Len() int { return s.size }

// At returns the i-th element of s. The second return value is false
// when i is out of range.
func (s Sequence) At(i int) (DateTime, bool) {
	if i < 0 || i >= s.size {
		return DateTime{}, false
	}
	return s.start.Add(s.step.Multiply(int64(i))), true
}

// Each calls fn with each element of s in order until fn returns
// false.
func (s Sequence) Each(fn func(int, DateTime) bool) {
	for i := 0; i < s.size; i++ {
		el, _ := s.At(i)
		if !fn(i, el) {
			return
		}
	}
}

// All materializes every element of s in order.
func (s Sequence) All() []DateTime {
	out := make([]DateTime, 0, s.size)
	for i := 0; i < s.size; i++ {
		el, _ := s.At(i)
		out = append(out, el)
	}
	return out
}
