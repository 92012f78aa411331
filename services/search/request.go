package search

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mycolab/genbank/models/constants"
	"github.com/mycolab/genbank/models/constants/predicate"
	s "github.com/mycolab/genbank/models/constants/sort"
	sk "github.com/mycolab/genbank/models/constants/sort-key"
	"github.com/mycolab/genbank/models/dtos"
	"github.com/mycolab/genbank/services/ranking"

	"github.com/mitchellh/mapstructure"
)

var ErrInvalidRequest = errors.New("invalid search request")

// DeriveId hashes the raw request body; identical bodies share an id
func DeriveId(body []byte) string {
	sum := md5.Sum(body)
	return hex.EncodeToString(sum[:])
}

// DecodeRequest applies the body on top of the request defaults.
// Scalars are weakly typed, so "results": "20" is accepted
func DecodeRequest(body []byte) (dtos.SearchRequestDto, error) {
	req := dtos.NewSearchRequestDto()

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return req, fmt.Errorf("%w: body is not a JSON object: %v", ErrInvalidRequest, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &req,
	})
	if err != nil {
		return req, err
	}
	if err := decoder.Decode(raw); err != nil {
		return req, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	return req, Validate(req)
}

func Validate(req dtos.SearchRequestDto) error {
	if strings.TrimSpace(req.Sequence) == "" {
		return fmt.Errorf("%w: sequence is required", ErrInvalidRequest)
	}
	if req.Results < 1 {
		return fmt.Errorf("%w: results must be at least 1", ErrInvalidRequest)
	}
	if req.Match < 0 || req.Match > 100 {
		return fmt.Errorf("%w: match must be between 0 and 100", ErrInvalidRequest)
	}
	if s.CastToSortDirection(req.SortDir) == s.Undefined {
		return fmt.Errorf("%w: unknown sort_dir %q", ErrInvalidRequest, req.SortDir)
	}
	if _, unknown := sk.CastToSortKeys(req.SortKey); unknown != "" {
		return fmt.Errorf("%w: unknown sort_key %q", ErrInvalidRequest, unknown)
	}
	for _, f := range req.Filters {
		if !sk.IsKnownSortKey(f.Key) {
			return fmt.Errorf("%w: unknown filter key %q", ErrInvalidRequest, f.Key)
		}
		if f.Min != nil && f.Max != nil && *f.Max < *f.Min {
			return fmt.Errorf("%w: filter on %s has max below min", ErrInvalidRequest, f.Key)
		}
	}
	return nil
}

// SortKeys of a validated request; an empty list falls back to percent identity
func SortKeys(req dtos.SearchRequestDto) []constants.SortKey {
	keys, _ := sk.CastToSortKeys(req.SortKey)
	if len(keys) == 0 {
		keys = []constants.SortKey{sk.PctIdentity}
	}
	return keys
}

// Predicates of a validated request; without explicit filters
// only the coverage floor applies
func Predicates(req dtos.SearchRequestDto) []ranking.Predicate {
	if len(req.Filters) == 0 {
		return ranking.DefaultPredicates(req.Coverage)
	}

	predicates := make([]ranking.Predicate, 0, len(req.Filters))
	for _, f := range req.Filters {
		p := ranking.Predicate{Key: sk.CastToSortKey(f.Key)}
		if len(f.Value) > 0 {
			p.Kind = predicate.Membership
			p.Values = f.Value
			p.Modifier = f.Modifier
		} else {
			p.Kind = predicate.Range
			if f.Min != nil {
				p.Min = *f.Min
			} else {
				p.Min = math.Inf(-1)
			}
			p.Max = f.Max
		}
		predicates = append(predicates, p)
	}
	return predicates
}
