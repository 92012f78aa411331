package blast

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mycolab/genbank/models/genbank"

	"github.com/Jeffail/gabs"
	"github.com/mitchellh/mapstructure"
)

var ErrMalformedReport = errors.New("malformed BLAST report")

// ParseReport flattens a blastn JSON report into hits, using the
// first HSP of every hit. Hits keep the order of the report
func ParseReport(raw []byte) ([]genbank.Hit, error) {
	jsonParsed, err := gabs.ParseJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReport, err)
	}

	reports, ok := jsonParsed.S("BlastOutput2").Data().([]interface{})
	if !ok || len(reports) == 0 {
		return nil, malformed("BlastOutput2")
	}

	search := jsonParsed.S("BlastOutput2").Index(0).S("report", "results", "search")
	if search.Data() == nil {
		return nil, malformed("report.results.search")
	}

	queryLen, ok := search.S("query_len").Data().(float64)
	if !ok {
		return nil, malformed("query_len")
	}

	rawHits, ok := search.S("hits").Data().([]interface{})
	if !ok {
		return nil, malformed("hits")
	}

	hits := make([]genbank.Hit, 0, len(rawHits))
	for n := range rawHits {
		hit, err := parseHit(search.S("hits").Index(n), int(queryLen))
		if err != nil {
			return nil, fmt.Errorf("hit %d: %w", n, err)
		}
		hits = append(hits, hit)
	}

	return hits, nil
}

func parseHit(hc *gabs.Container, queryLen int) (genbank.Hit, error) {
	description := hc.S("description").Index(0)

	accession, ok := description.S("accession").Data().(string)
	if !ok {
		return genbank.Hit{}, malformed("description.accession")
	}
	ids, _ := description.S("id").Data().(string)
	title, _ := description.S("title").Data().(string)

	hsp, ok := hc.S("hsps").Index(0).Data().(map[string]interface{})
	if !ok {
		return genbank.Hit{}, malformed("hsps")
	}

	var stats genbank.HitStats
	if err := mapstructure.Decode(hsp, &stats); err != nil {
		return genbank.Hit{}, fmt.Errorf("%w: %v", ErrMalformedReport, err)
	}

	return genbank.Hit{
		AccessionId: AccessionId(accession, ids),
		Description: title,
		PctIdentity: PctIdentity(stats.Identity, stats.AlignLen),
		Coverage:    Coverage(stats.AlignLen, stats.Gaps, queryLen),
		Stats:       stats,
	}, nil
}

// AccessionId picks the pipe delimited element of ids that contains the
// accession number (the last one if several do), or the accession itself
func AccessionId(accession string, ids string) string {
	accessionId := accession
	for _, element := range strings.Split(ids, "|") {
		if element != "" && strings.Contains(element, accession) {
			accessionId = element
		}
	}
	return accessionId
}

func PctIdentity(identity int, alignLen int) float64 {
	if alignLen == 0 {
		return 0
	}
	return 100 * float64(identity) / float64(alignLen)
}

func Coverage(alignLen int, gaps int, queryLen int) float64 {
	if queryLen == 0 {
		return 0
	}
	return 100 * float64(alignLen-gaps) / float64(queryLen)
}

func malformed(path string) error {
	return fmt.Errorf("%w: missing %s", ErrMalformedReport, path)
}
