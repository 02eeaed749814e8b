package search

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/riolytics/matchsearch/internal/lookup"
)

// strAxis is a categorical index dimension: value name → event-id bucket.
// Buckets are pre-seeded from the axis's canonical domain so a value with
// zero occurrences answers with an empty set instead of a missing key.
type strAxis struct {
	name    string
	buckets map[string]Set
	order   []string
}

func newStrAxis(name string, table *lookup.Table) *strAxis {
	values := table.Values()
	a := &strAxis{
		name:    name,
		buckets: make(map[string]Set, len(values)),
		order:   values,
	}
	for _, v := range values {
		a.buckets[v] = make(Set)
	}
	return a
}

// insert files id under value. ok is false when the value is outside the
// seeded domain; the caller decides whether that is a tolerated skip.
func (a *strAxis) insert(id int, value string) bool {
	bucket, ok := a.buckets[value]
	if !ok {
		return false
	}
	bucket.Add(id)
	return true
}

// bucket returns the set for one value, validating the value against the
// axis domain.
func (a *strAxis) bucket(value string) (Set, error) {
	s, ok := a.buckets[value]
	if !ok {
		return nil, validationErrorf(a.name, value, a.domain())
	}
	return s.Clone(), nil
}

func (a *strAxis) domain() string {
	return strings.Join(a.order, ", ")
}

// intAxis is an ordinal index dimension: integer value → event-id bucket,
// with a fixed threshold polarity.
type intAxis struct {
	name     string
	buckets  map[int]Set
	polarity Polarity
}

// newIntAxis seeds buckets for lo..hi inclusive.
func newIntAxis(name string, lo, hi int, p Polarity) *intAxis {
	a := &intAxis{
		name:     name,
		buckets:  make(map[int]Set, hi-lo+1),
		polarity: p,
	}
	for v := lo; v <= hi; v++ {
		a.buckets[v] = make(Set)
	}
	return a
}

func (a *intAxis) insert(id, value int) bool {
	bucket, ok := a.buckets[value]
	if !ok {
		return false
	}
	bucket.Add(id)
	return true
}

// query evaluates one or more tagged requests against the axis and unions
// the results. An exact value outside the seeded range contributes nothing;
// historical files make out-of-range exact queries too common to reject.
func (a *intAxis) query(reqs ...Request) Set {
	result := make(Set)
	for _, req := range reqs {
		switch req.Kind {
		case KindExact:
			if bucket, ok := a.buckets[req.Value]; ok {
				for id := range bucket {
					result.Add(id)
				}
			}
		case KindAnyOf:
			for _, v := range req.Values {
				if bucket, ok := a.buckets[v]; ok {
					for id := range bucket {
						result.Add(id)
					}
				}
			}
		case KindAtLeast:
			for v, bucket := range a.buckets {
				if v >= req.Value {
					for id := range bucket {
						result.Add(id)
					}
				}
			}
		case KindAtMost:
			for v, bucket := range a.buckets {
				if v <= req.Value {
					for id := range bucket {
						result.Add(id)
					}
				}
			}
		}
	}
	return result
}

// querySigned translates a legacy signed-integer list through the axis's
// polarity and evaluates it.
func (a *intAxis) querySigned(values []int) Set {
	return a.query(FromSigned(values, a.polarity)...)
}

// bandAxis indexes a float-valued field banded to two decimal places. Only
// observed bands get buckets; there is no fixed domain to seed.
type bandAxis struct {
	name    string
	buckets map[float64]Set
}

func newBandAxis(name string) *bandAxis {
	return &bandAxis{name: name, buckets: make(map[float64]Set)}
}

// band rounds v to the axis's two-decimal banding.
func band(v float64) float64 {
	return math.Round(v*100) / 100
}

func (a *bandAxis) insert(id int, value float64) {
	key := band(value)
	bucket, ok := a.buckets[key]
	if !ok {
		bucket = make(Set)
		a.buckets[key] = bucket
	}
	bucket.Add(id)
}

// atLeastAbs unions every band whose absolute value is at least |min|. Both
// banded fields are signed offsets from a centerline, so distance from
// center is what callers filter on.
func (a *bandAxis) atLeastAbs(min float64) Set {
	result := make(Set)
	threshold := math.Abs(min)
	for key, bucket := range a.buckets {
		if math.Abs(key) >= threshold {
			for id := range bucket {
				result.Add(id)
			}
		}
	}
	return result
}

// bands returns the observed band keys in ascending order.
func (a *bandAxis) bands() []float64 {
	keys := make([]float64, 0, len(a.buckets))
	for k := range a.buckets {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	return keys
}

// roleSets holds one character's participation buckets.
type roleSets struct {
	AtBat    Set
	Pitching Set
	Fielding Set
}

func newRoleSets() *roleSets {
	return &roleSets{AtBat: make(Set), Pitching: make(Set), Fielding: make(Set)}
}

// intDomain formats an inclusive range for validation messages.
func intDomain(lo, hi int) string {
	return fmt.Sprintf("%d to %d", lo, hi)
}
