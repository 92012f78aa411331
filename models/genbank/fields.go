package genbank

import (
	"github.com/mycolab/genbank/models/constants"
	sk "github.com/mycolab/genbank/models/constants/sort-key"
)

// Field returns the numeric value of a hit for the given key
func (h Hit) Field(key constants.SortKey) (float64, bool) {
	switch key {
	case sk.PctIdentity:
		return h.PctIdentity, true
	case sk.Coverage:
		return h.Coverage, true
	case sk.AlignLen:
		return float64(h.Stats.AlignLen), true
	case sk.Identity:
		return float64(h.Stats.Identity), true
	case sk.Gaps:
		return float64(h.Stats.Gaps), true
	case sk.BitScore:
		return h.Stats.BitScore, true
	case sk.Evalue:
		return h.Stats.Evalue, true
	case sk.QueryFrom:
		return float64(h.Stats.QueryFrom), true
	case sk.QueryTo:
		return float64(h.Stats.QueryTo), true
	case sk.HitFrom:
		return float64(h.Stats.HitFrom), true
	case sk.HitTo:
		return float64(h.Stats.HitTo), true
	default:
		return 0, false
	}
}
