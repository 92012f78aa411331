package blast

import (
	"context"
	"strconv"

	"github.com/mycolab/genbank/models"
	"github.com/mycolab/genbank/services/execution"
)

type (
	// Invoker builds and runs blastn command lines
	Invoker struct {
		runner   execution.Runner
		path     string
		database string
		wordSize int
		remote   bool
	}

	SearchParameters struct {
		// minimum percent identity
		Match float64
		// maximum number of target sequences
		Results int
	}
)

func NewInvoker(runner execution.Runner, cfg *models.Config) *Invoker {
	return &Invoker{
		runner:   runner,
		path:     cfg.Blast.Path,
		database: cfg.Blast.Database,
		wordSize: cfg.Blast.WordSize,
		remote:   cfg.Blast.Remote,
	}
}

// Command returns the blastn invocation writing a JSON (outfmt 15) report to outFile
func (i *Invoker) Command(queryFile string, outFile string, params SearchParameters) execution.Command {
	args := []string{}
	if i.remote {
		args = append(args, "-remote")
	}
	args = append(args,
		"-db", i.database,
		"-word_size", strconv.Itoa(i.wordSize),
		"-outfmt", "15",
		"-perc_identity", strconv.FormatFloat(params.Match, 'f', -1, 64),
		"-max_target_seqs", strconv.Itoa(params.Results),
		"-query", queryFile,
		"-out", outFile,
	)

	return execution.Command{Name: i.path, Args: args}
}

// Search blocks until blastn exits
func (i *Invoker) Search(ctx context.Context, queryFile string, outFile string, params SearchParameters) execution.Result {
	return i.runner.Run(ctx, i.Command(queryFile, outFile, params))
}
