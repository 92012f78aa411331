package predicate

import "github.com/mycolab/genbank/models/constants"

const (
	Range      constants.PredicateKind = "range"
	Membership constants.PredicateKind = "set"
)
