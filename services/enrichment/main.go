package enrichment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mycolab/genbank/logger"
	"github.com/mycolab/genbank/models/constants"
	"github.com/mycolab/genbank/models/genbank"
	"github.com/mycolab/genbank/repositories/sidefiles"
	"github.com/mycolab/genbank/services/execution"
	"github.com/mycolab/genbank/services/geography"
	"github.com/mycolab/genbank/services/records"
	"github.com/mycolab/genbank/services/sequence"

	"go.uber.org/zap"
)

type (
	RecordFetcher interface {
		Fetch(ctx context.Context, accessionId string, xmlFile string) execution.Result
	}

	Options struct {
		// annotate descriptions with the record's (approximate) country
		Location bool
		// strip gap characters from record sequences
		Clean bool
		// attach the decoded record
		Accession bool
		// attach the hit and its alignment statistics
		Hsp bool
	}

	// Enricher turns hits into annotated result records,
	// one GenBank fetch per hit
	Enricher struct {
		fetcher   RecordFetcher
		countries *geography.CountryTable
		store     *sidefiles.Store
	}
)

func NewEnricher(fetcher RecordFetcher, countries *geography.CountryTable, store *sidefiles.Store) *Enricher {
	return &Enricher{
		fetcher:   fetcher,
		countries: countries,
		store:     store,
	}
}

// Enrich processes hits in order. A hit whose record cannot be fetched
// or understood is logged and left out; it never fails the batch
func (e *Enricher) Enrich(ctx context.Context, queryId string, hits []genbank.Hit, opts Options) []genbank.ResultRecord {
	results := make([]genbank.ResultRecord, 0, len(hits))
	for _, hit := range hits {
		result, ok := e.enrichHit(ctx, queryId, hit, opts)
		if !ok {
			continue
		}
		results = append(results, result)
	}
	return results
}

func (e *Enricher) enrichHit(ctx context.Context, queryId string, hit genbank.Hit, opts Options) (genbank.ResultRecord, bool) {
	log := logger.With(zap.String("queryId", queryId), zap.String("accessionId", hit.AccessionId))

	xmlFile := e.store.RecordXmlPath(queryId, hit.AccessionId)
	defer e.store.Remove(xmlFile)

	res := e.fetcher.Fetch(ctx, hit.AccessionId, xmlFile)
	if !res.Succeeded() {
		log.Error("skipping hit, record fetch failed", zap.String("reason", res.Error()))
		return genbank.ResultRecord{}, false
	}

	raw, err := os.ReadFile(xmlFile)
	if err != nil {
		log.Error("skipping hit, record file unreadable", zap.Error(err))
		return genbank.ResultRecord{}, false
	}

	record, err := records.ParseRecord(raw)
	if err != nil {
		if errors.Is(err, records.ErrMissingOrganism) {
			log.Error("skipping hit, record has no organism")
		} else {
			log.Warn("skipping hit, record is malformed", zap.Error(err))
		}
		return genbank.ResultRecord{}, false
	}

	if err := e.store.WriteJSON(e.store.RecordJsonPath(queryId, hit.AccessionId), record.Metadata); err != nil {
		log.Warn("unable to persist record", zap.Error(err))
	}

	description := fmt.Sprintf("%s %s", hit.AccessionId, record.Organism)
	if opts.Location {
		if location := e.Locate(record); location != "" {
			description = fmt.Sprintf("%s %s", description, location)
		}
	}

	result := genbank.ResultRecord{
		Description: description,
		Sequence:    sequence.Clean(record.Sequence, opts.Clean),
	}
	if opts.Accession {
		result.Accession = record.Metadata
	}
	if opts.Hsp {
		h := hit
		result.Hsp = &h
	}
	return result, true
}

// Locate returns the record's country with the approximate marker, taken
// from its country qualifier or else searched for in the whole record
func (e *Enricher) Locate(record genbank.Record) string {
	if record.Location != "" {
		return constants.ApproximateMarker + record.Location
	}

	text, err := json.Marshal(record.Metadata)
	if err != nil {
		logger.Warn("unable to serialise record for country search", zap.Error(err))
		return ""
	}
	return e.countries.Search(string(text))
}
