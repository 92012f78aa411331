package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout the GenBank search
	service and it's associated services.
*/
type SortDirection string
type SortKey string
type PredicateKind string

const (
	// marks a label line in FASTA-like text
	LabelMarker = ">"

	// prepended to geographic annotations that are inferred
	ApproximateMarker = "~"
)

// symbols treated as alignment gaps
var GapCharacters = []string{"-", "."}
