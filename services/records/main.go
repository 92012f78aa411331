package records

import (
	"context"

	"github.com/mycolab/genbank/models"
	"github.com/mycolab/genbank/services/execution"
)

// Fetcher pulls single GenBank records with efetch
type Fetcher struct {
	runner   execution.Runner
	path     string
	database string
}

func NewFetcher(runner execution.Runner, cfg *models.Config) *Fetcher {
	return &Fetcher{
		runner:   runner,
		path:     cfg.Efetch.Path,
		database: cfg.Efetch.Database,
	}
}

func (f *Fetcher) Command(accessionId string, xmlFile string) execution.Command {
	return execution.Command{
		Name:       f.path,
		Args:       []string{"-db", f.database, "-id", accessionId, "-format", "gb", "-mode", "xml"},
		StdoutPath: xmlFile,
	}
}

// Fetch writes the GenBank XML of one accession to xmlFile
func (f *Fetcher) Fetch(ctx context.Context, accessionId string, xmlFile string) execution.Result {
	return f.runner.Run(ctx, f.Command(accessionId, xmlFile))
}
