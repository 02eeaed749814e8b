package search

import "fmt"

// RequestKind discriminates the forms an ordinal query can take.
type RequestKind int

const (
	// KindExact selects the single bucket for one value.
	KindExact RequestKind = iota
	// KindAnyOf unions the exact buckets of several values.
	KindAnyOf
	// KindAtLeast unions every bucket at or above a value.
	KindAtLeast
	// KindAtMost unions every bucket at or below a value.
	KindAtMost
)

// Request is a tagged ordinal query: one exact value, a list of values, or
// an open-ended threshold. The legacy signed-integer convention (negative
// magnitude means "threshold, direction per axis") is translated into this
// type at the public boundary by FromSigned and never travels further.
type Request struct {
	Kind   RequestKind
	Value  int
	Values []int
}

// Exact requests the single bucket for v.
func Exact(v int) Request { return Request{Kind: KindExact, Value: v} }

// AnyOf requests the union of the exact buckets for vs.
func AnyOf(vs ...int) Request { return Request{Kind: KindAnyOf, Values: vs} }

// AtLeast requests every bucket with value >= v.
func AtLeast(v int) Request { return Request{Kind: KindAtLeast, Value: v} }

// AtMost requests every bucket with value <= v.
func AtMost(v int) Request { return Request{Kind: KindAtMost, Value: v} }

func (r Request) String() string {
	switch r.Kind {
	case KindExact:
		return fmt.Sprintf("Exact(%d)", r.Value)
	case KindAnyOf:
		return fmt.Sprintf("AnyOf(%v)", r.Values)
	case KindAtLeast:
		return fmt.Sprintf("AtLeast(%d)", r.Value)
	case KindAtMost:
		return fmt.Sprintf("AtMost(%d)", r.Value)
	default:
		return fmt.Sprintf("Request(kind=%d)", r.Kind)
	}
}

// Polarity is the direction a signed threshold opens toward on an axis.
type Polarity int

const (
	// Ascending axes read a negated value n as "at least |n|". Counts,
	// scores, innings and frames all grow over an at-bat or a game, so the
	// open end points up.
	Ascending Polarity = iota
	// Descending axes read a negated value n as "at most |n|". Pitcher
	// stamina drains from full toward zero, so its open end points down.
	Descending
)

// FromSigned translates a legacy signed-integer list into a Request. A
// single non-negative value is an exact match, several are a union, and a
// negative value is a threshold whose direction depends on the axis's
// polarity. Mixing a negative with other values keeps the legacy meaning:
// each element contributes its own exact bucket or threshold range, and the
// results union.
func FromSigned(values []int, p Polarity) []Request {
	reqs := make([]Request, 0, len(values))
	for _, v := range values {
		switch {
		case v >= 0:
			reqs = append(reqs, Exact(v))
		case p == Ascending:
			reqs = append(reqs, AtLeast(-v))
		default:
			reqs = append(reqs, AtMost(-v))
		}
	}
	return reqs
}
