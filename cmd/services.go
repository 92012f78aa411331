package cmd

import (
	"github.com/mycolab/genbank/models"
	"github.com/mycolab/genbank/repositories/audit"
	"github.com/mycolab/genbank/repositories/sidefiles"
	"github.com/mycolab/genbank/services/execution"
	"github.com/mycolab/genbank/services/geography"
	"github.com/mycolab/genbank/services/sanitation"
	"github.com/mycolab/genbank/services/search"
)

// Services are the process-wide singletons shared by every request
type Services struct {
	Store  *sidefiles.Store
	Ledger *audit.Repository
	Search *search.SearchService
}

func NewServices(cfg *models.Config, runner execution.Runner) (*Services, error) {
	countries, err := geography.LoadCountryTable(cfg.Api.CountriesPath)
	if err != nil {
		return nil, err
	}

	store := sidefiles.NewStore(cfg.Api.WorkDir)
	if err := store.EnsureDirectories(); err != nil {
		return nil, err
	}

	svc := &Services{Store: store}

	// stays nil unless a ledger path is configured
	var auditor search.AuditRecorder
	if cfg.Audit.DbPath != "" {
		ledger, err := audit.Open(cfg.Audit.DbPath)
		if err != nil {
			return nil, err
		}
		svc.Ledger = ledger
		auditor = ledger
	}

	svc.Search = search.NewSearchService(cfg, runner, countries, store, auditor)
	return svc, nil
}

// Pruner is the ledger as seen by the retention sweep, nil without a ledger
func (s *Services) Pruner() sanitation.LedgerPruner {
	var pruner sanitation.LedgerPruner
	if s.Ledger != nil {
		pruner = s.Ledger
	}
	return pruner
}

func (s *Services) Close() error {
	if s.Ledger != nil {
		return s.Ledger.Close()
	}
	return nil
}
