package ranking

import (
	"fmt"
	"sort"

	"github.com/mycolab/genbank/models/constants"
	"github.com/mycolab/genbank/models/constants/predicate"
	s "github.com/mycolab/genbank/models/constants/sort"
	sk "github.com/mycolab/genbank/models/constants/sort-key"
	"github.com/mycolab/genbank/models/genbank"

	. "github.com/ahmetb/go-linq"
)

// Predicate narrows a hit list on one numeric field.
// Range predicates use Min and optional Max (inclusive);
// set predicates test Field+Modifier against Values
type Predicate struct {
	Key      constants.SortKey
	Kind     constants.PredicateKind
	Min      float64
	Max      *float64
	Values   []float64
	Modifier float64
}

func (p Predicate) Matches(h genbank.Hit) bool {
	v, ok := h.Field(p.Key)
	if !ok {
		return false
	}

	switch p.Kind {
	case predicate.Membership:
		v += p.Modifier
		for _, candidate := range p.Values {
			if v == candidate {
				return true
			}
		}
		return false
	default:
		if v < p.Min {
			return false
		}
		return p.Max == nil || v <= *p.Max
	}
}

func (p Predicate) String() string {
	if p.Kind == predicate.Membership {
		return fmt.Sprintf("%s%+g in %v", p.Key, p.Modifier, p.Values)
	}
	if p.Max == nil {
		return fmt.Sprintf("%s >= %g", p.Key, p.Min)
	}
	return fmt.Sprintf("%g <= %s <= %g", p.Min, p.Key, *p.Max)
}

// DefaultPredicates keeps hits covering at least the given share of the query
func DefaultPredicates(minCoverage float64) []Predicate {
	return []Predicate{{Key: sk.Coverage, Kind: predicate.Range, Min: minCoverage}}
}

// Rank returns a new slice sorted by every key in turn. Each key is a
// full stable sort over the previous ordering, so the last key decides
// and earlier keys only break its ties. The direction applies to all keys
func Rank(hits []genbank.Hit, keys []constants.SortKey, direction constants.SortDirection) []genbank.Hit {
	ranked := make([]genbank.Hit, len(hits))
	copy(ranked, hits)

	for _, key := range keys {
		key := key
		sort.SliceStable(ranked, func(i, j int) bool {
			a, _ := ranked[i].Field(key)
			b, _ := ranked[j].Field(key)
			if direction == s.Ascending {
				return a < b
			}
			return a > b
		})
	}

	return ranked
}

// Filter returns the hits satisfying every predicate, keeping their order
func Filter(hits []genbank.Hit, predicates []Predicate) []genbank.Hit {
	query := From(hits)
	for _, p := range predicates {
		p := p
		query = query.WhereT(func(h genbank.Hit) bool {
			return p.Matches(h)
		})
	}

	filtered := []genbank.Hit{}
	query.ToSlice(&filtered)
	return filtered
}
