package records

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mycolab/genbank/models/genbank"

	"github.com/Jeffail/gabs"
	"github.com/clbanning/mxj"
)

var (
	ErrUnparseableRecord = errors.New("unparseable GenBank record")
	ErrMissingOrganism   = errors.New("GenBank record has no organism")
)

// ParseRecord decodes GenBank XML (GBSet/GBSeq) into a Record. The whole
// document is kept as Metadata; Location holds the value of the first
// feature's "country" qualifier when there is one
func ParseRecord(raw []byte) (genbank.Record, error) {
	m, err := mxj.NewMapXml(raw)
	if err != nil {
		return genbank.Record{}, fmt.Errorf("%w: %v", ErrUnparseableRecord, err)
	}
	metadata := map[string]interface{}(m)

	container, err := gabs.Consume(metadata)
	if err != nil {
		return genbank.Record{}, fmt.Errorf("%w: %v", ErrUnparseableRecord, err)
	}

	seq := first(container.S("GBSet", "GBSeq"))
	if seq.Data() == nil {
		return genbank.Record{}, fmt.Errorf("%w: missing GBSet.GBSeq", ErrUnparseableRecord)
	}

	organism, _ := seq.S("GBSeq_organism").Data().(string)
	if strings.TrimSpace(organism) == "" {
		return genbank.Record{}, ErrMissingOrganism
	}
	sequence, _ := seq.S("GBSeq_sequence").Data().(string)

	return genbank.Record{
		Organism: strings.TrimSpace(organism),
		Location: countryQualifier(seq),
		Sequence: strings.TrimSpace(sequence),
		Metadata: metadata,
	}, nil
}

func countryQualifier(seq *gabs.Container) string {
	feature := first(first(seq.S("GBSeq_feature-table")).S("GBFeature"))
	qualifiers := first(feature.S("GBFeature_quals")).S("GBQualifier")

	for _, q := range each(qualifiers) {
		name, _ := q.S("GBQualifier_name").Data().(string)
		value, _ := q.S("GBQualifier_value").Data().(string)
		if strings.Contains(name, "country") && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// repeated XML elements decode to arrays, single ones to objects
func first(c *gabs.Container) *gabs.Container {
	if _, ok := c.Data().([]interface{}); ok {
		return c.Index(0)
	}
	return c
}

func each(c *gabs.Container) []*gabs.Container {
	switch c.Data().(type) {
	case []interface{}:
		children, _ := c.Children()
		return children
	case map[string]interface{}:
		return []*gabs.Container{c}
	default:
		return nil
	}
}
