package sanitation

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/mycolab/genbank/logger"
	"github.com/mycolab/genbank/models"
	"github.com/mycolab/genbank/repositories/sidefiles"
)

type (
	LedgerPruner interface {
		DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
	}

	SanitationService struct {
		Initialized bool
		Store       *sidefiles.Store
		Ledger      LedgerPruner
		Config      *models.Config
	}
)

// NewSanitationService schedules the retention sweep; ledger may be nil
func NewSanitationService(store *sidefiles.Store, ledger LedgerPruner, cfg *models.Config) *SanitationService {
	ss := &SanitationService{
		Initialized: false,
		Store:       store,
		Ledger:      ledger,
		Config:      cfg,
	}

	ss.Init()

	return ss
}

func (ss *SanitationService) Init() {
	if ss.Initialized {
		return
	}
	if ss.Config.Audit.RetentionHours <= 0 {
		logger.Info("Sanitation Service disabled, retention is not set")
		return
	}

	// side files and ledger rows older than the retention window
	// are swept once a day
	go func() {
		s := gocron.NewScheduler(time.UTC)

		s.Every(1).Days().At("04:00:00").Do(func() { // 12am EST
			logger.Info("Running side file cleanup..")
			if _, _, err := ss.Sweep(context.Background(), time.Now()); err != nil {
				logger.Error("Side file cleanup failed", zap.Error(err))
			}
		})

		// blocks this goroutine only
		s.StartBlocking()
	}()

	ss.Initialized = true
	logger.Info("Sanitation Service Initialized ..",
		zap.Int("retentionHours", ss.Config.Audit.RetentionHours))
}

// Sweep removes everything older than the retention window counted back from now
func (ss *SanitationService) Sweep(ctx context.Context, now time.Time) (int, int64, error) {
	cutoff := now.Add(-time.Duration(ss.Config.Audit.RetentionHours) * time.Hour)

	files, err := ss.Store.Purge(cutoff)
	if err != nil {
		return files, 0, fmt.Errorf("purging side files: %w", err)
	}

	var rows int64
	if ss.Ledger != nil {
		rows, err = ss.Ledger.DeleteBefore(ctx, cutoff)
		if err != nil {
			return files, rows, fmt.Errorf("pruning audit ledger: %w", err)
		}
	}

	logger.Info("Side file cleanup done",
		zap.Time("cutoff", cutoff),
		zap.Int("files", files),
		zap.Int64("ledgerRows", rows))
	return files, rows, nil
}
