package sortKey

import (
	"strings"

	"github.com/mycolab/genbank/models/constants"
)

const (
	Unknown constants.SortKey = ""

	PctIdentity constants.SortKey = "pct_identity"
	Coverage    constants.SortKey = "coverage"
	AlignLen    constants.SortKey = "align_len"
	Identity    constants.SortKey = "identity"
	Gaps        constants.SortKey = "gaps"
	BitScore    constants.SortKey = "bit_score"
	Evalue      constants.SortKey = "evalue"
	QueryFrom   constants.SortKey = "query_from"
	QueryTo     constants.SortKey = "query_to"
	HitFrom     constants.SortKey = "hit_from"
	HitTo       constants.SortKey = "hit_to"
)

var All = []constants.SortKey{
	PctIdentity, Coverage, AlignLen, Identity, Gaps,
	BitScore, Evalue, QueryFrom, QueryTo, HitFrom, HitTo,
}

func CastToSortKey(text string) constants.SortKey {
	candidate := constants.SortKey(strings.ToLower(strings.TrimSpace(text)))
	for _, k := range All {
		if k == candidate {
			return k
		}
	}
	return Unknown
}

func IsKnownSortKey(text string) bool {
	return CastToSortKey(text) != Unknown
}

// CastToSortKeys splits a comma separated list of keys,
// returning the first unrecognised entry alongside
func CastToSortKeys(commaSeparated string) ([]constants.SortKey, string) {
	keys := []constants.SortKey{}
	for _, raw := range strings.Split(commaSeparated, ",") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		k := CastToSortKey(raw)
		if k == Unknown {
			return nil, raw
		}
		keys = append(keys, k)
	}
	return keys, ""
}
