package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mycolab/genbank/logger"
	"github.com/mycolab/genbank/models"
	s "github.com/mycolab/genbank/models/constants/sort"
	"github.com/mycolab/genbank/models/genbank"
	"github.com/mycolab/genbank/repositories/audit"
	"github.com/mycolab/genbank/repositories/sidefiles"
	"github.com/mycolab/genbank/services/blast"
	"github.com/mycolab/genbank/services/enrichment"
	"github.com/mycolab/genbank/services/execution"
	"github.com/mycolab/genbank/services/geography"
	"github.com/mycolab/genbank/services/ranking"
	"github.com/mycolab/genbank/services/records"
	"github.com/mycolab/genbank/services/sequence"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const stampIdLength = 10

var ErrAlignmentFailed = errors.New("alignment failed")

type (
	Aligner interface {
		Search(ctx context.Context, queryFile string, outFile string, params blast.SearchParameters) execution.Result
	}

	AuditRecorder interface {
		Record(ctx context.Context, search audit.Search) error
	}

	// SearchService runs the whole result-shaping pipeline for one request body
	SearchService struct {
		aligner  Aligner
		enricher *enrichment.Enricher
		store    *sidefiles.Store
		auditor  AuditRecorder

		stampLabel  string
		stampWithId bool

		inflight singleflight.Group
	}
)

// NewSearchService wires blastn and efetch through the given runner.
// auditor may be nil
func NewSearchService(cfg *models.Config, runner execution.Runner, countries *geography.CountryTable, store *sidefiles.Store, auditor AuditRecorder) *SearchService {
	return &SearchService{
		aligner:     blast.NewInvoker(runner, cfg),
		enricher:    enrichment.NewEnricher(records.NewFetcher(runner, cfg), countries, store),
		store:       store,
		auditor:     auditor,
		stampLabel:  cfg.Stamp.Label,
		stampWithId: cfg.Stamp.WithId,
	}
}

// StatusFor maps a pipeline error onto the HTTP status reported to callers
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrAlignmentFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Query runs the pipeline for a raw request body. Concurrent calls with an
// identical body share one run and its result. The shared run outlives a
// cancelled caller; each caller stops waiting when its own ctx is done
func (ss *SearchService) Query(ctx context.Context, body []byte) ([]genbank.ResultRecord, int, error) {
	id := DeriveId(body)

	ch := ss.inflight.DoChan(id, func() (interface{}, error) {
		return ss.run(context.WithoutCancel(ctx), id, body)
	})

	select {
	case <-ctx.Done():
		logger.Warn("caller left before the search finished", zap.String("queryId", id), zap.Error(ctx.Err()))
		return nil, StatusFor(ctx.Err()), ctx.Err()
	case res := <-ch:
		if res.Shared {
			logger.Debug("joined an in-flight search", zap.String("queryId", id))
		}
		if res.Err != nil {
			return nil, StatusFor(res.Err), res.Err
		}
		return res.Val.([]genbank.ResultRecord), http.StatusOK, nil
	}
}

func (ss *SearchService) run(ctx context.Context, id string, body []byte) ([]genbank.ResultRecord, error) {
	log := logger.With(zap.String("queryId", id))
	started := time.Now()

	req, err := DecodeRequest(body)
	if err != nil {
		return nil, err
	}

	description, seq := sequence.Normalize(req.Sequence, req.Clean)
	if seq == "" {
		return nil, fmt.Errorf("%w: sequence has no residues", ErrInvalidRequest)
	}
	query := genbank.Query{Id: id, Description: description, Sequence: seq}

	if err := ss.store.EnsureDirectories(); err != nil {
		return nil, err
	}
	if err := ss.store.WriteRequest(id, body); err != nil {
		log.Warn("unable to persist request", zap.Error(err))
	}

	queryFile, err := ss.store.WriteQuery(id, query.Description, query.Sequence)
	if err != nil {
		return nil, err
	}
	defer ss.store.Remove(queryFile)

	reportFile := ss.store.ReportPath(id)
	res := ss.aligner.Search(ctx, queryFile, reportFile, blast.SearchParameters{
		Match:   req.Match,
		Results: req.Results,
	})
	if !res.Succeeded() {
		err := fmt.Errorf("%w: %s", ErrAlignmentFailed, res.Error())
		ss.audit(ctx, audit.Search{Id: id, CreatedAt: started, QueryLength: len(seq), Status: audit.Failed, Message: err.Error()})
		return nil, err
	}

	raw, err := os.ReadFile(reportFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", blast.ErrMalformedReport, err)
	}
	hits, err := blast.ParseReport(raw)
	if err != nil {
		ss.audit(ctx, audit.Search{Id: id, CreatedAt: started, QueryLength: len(seq), Status: audit.Failed, Message: err.Error()})
		return nil, err
	}

	predicates := Predicates(req)
	for _, p := range predicates {
		log.Debug("filtering hits", zap.Stringer("predicate", p))
	}
	selected := ranking.Filter(ranking.Rank(hits, SortKeys(req), s.CastToSortDirection(req.SortDir)), predicates)
	if len(selected) > req.Results {
		selected = selected[:req.Results]
	}

	enriched := ss.enricher.Enrich(ctx, id, selected, enrichment.Options{
		Location:  req.Location,
		Clean:     req.Clean,
		Accession: req.Accession,
		Hsp:       req.Hsp,
	})

	if req.Stamp {
		stampId := ""
		if ss.stampWithId {
			stampId = id
		}
		query.Description = Stamp(ss.stampLabel, query.Description, stampId)
	}
	results := Assemble(query, enriched)

	log.Info("search completed",
		zap.Int("hits", len(hits)),
		zap.Int("selected", len(selected)),
		zap.Int("records", len(enriched)),
		zap.Duration("elapsed", time.Since(started)))
	ss.audit(ctx, audit.Search{
		Id:          id,
		CreatedAt:   started,
		QueryLength: len(seq),
		Hits:        len(hits),
		Results:     len(enriched),
		Status:      audit.Completed,
	})

	return results, nil
}

func (ss *SearchService) audit(ctx context.Context, search audit.Search) {
	if ss.auditor == nil {
		return
	}
	if err := ss.auditor.Record(ctx, search); err != nil {
		logger.Warn("unable to record search", zap.String("queryId", search.Id), zap.Error(err))
	}
}

// Stamp labels a query description with the service name and,
// when id is given, its leading characters
func Stamp(label string, description string, id string) string {
	stamp := label
	if id != "" {
		if len(id) > stampIdLength {
			id = id[:stampIdLength]
		}
		stamp = fmt.Sprintf("%s-%s", label, id)
	}

	description = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(description), ">"))
	if description == "" {
		return stamp
	}
	return stamp + " " + description
}

// Assemble puts the query record ahead of the enriched hits
func Assemble(query genbank.Query, enriched []genbank.ResultRecord) []genbank.ResultRecord {
	results := make([]genbank.ResultRecord, 0, len(enriched)+1)
	results = append(results, genbank.ResultRecord{
		Description: query.Description,
		Sequence:    query.Sequence,
	})
	return append(results, enriched...)
}
