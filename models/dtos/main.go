package dtos

import "time"

// SearchRequestDto is the body accepted by the query endpoint;
// fields left out by the caller keep the values from NewSearchRequestDto
type SearchRequestDto struct {
	Sequence  string         `json:"sequence" mapstructure:"sequence"`
	Location  bool           `json:"location" mapstructure:"location"`
	Clean     bool           `json:"clean" mapstructure:"clean"`
	Accession bool           `json:"accession" mapstructure:"accession"`
	Hsp       bool           `json:"hsp" mapstructure:"hsp"`
	Stamp     bool           `json:"stamp" mapstructure:"stamp"`
	Results   int            `json:"results" mapstructure:"results"`
	Match     float64        `json:"match" mapstructure:"match"`
	SortKey   string         `json:"sort_key" mapstructure:"sort_key"`
	SortDir   string         `json:"sort_dir" mapstructure:"sort_dir"`
	Coverage  float64        `json:"coverage" mapstructure:"coverage"`
	Filters   []PredicateDto `json:"filters" mapstructure:"filters"`
}

// PredicateDto is either a numeric range (Min/Max) or a
// set membership test (Value, shifted by Modifier)
type PredicateDto struct {
	Key      string    `json:"key" mapstructure:"key"`
	Min      *float64  `json:"min,omitempty" mapstructure:"min"`
	Max      *float64  `json:"max,omitempty" mapstructure:"max"`
	Value    []float64 `json:"value,omitempty" mapstructure:"value"`
	Modifier float64   `json:"modifier,omitempty" mapstructure:"modifier"`
}

func NewSearchRequestDto() SearchRequestDto {
	return SearchRequestDto{
		Location:  true,
		Clean:     true,
		Accession: false,
		Hsp:       false,
		Stamp:     true,
		Results:   50,
		Match:     90.0,
		SortKey:   "pct_identity",
		SortDir:   "desc",
		Coverage:  70.0,
	}
}

type IdResponseDto struct {
	Id string `json:"id"`
}

// -- errors
type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}

type GeneralError struct {
	Message string `json:"message"`
}
