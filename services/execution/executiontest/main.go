// Package executiontest provides a Runner that stands in for blastn and
// efetch by copying fixture files instead of contacting NCBI
package executiontest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/mycolab/genbank/services/execution"
)

// FixtureRunner answers blastn with <Dir>/report.json and
// efetch with <Dir>/<accession>.xml
type FixtureRunner struct {
	Dir string
	// make every blastn run exit with a failure
	FailAlignment bool

	mu    sync.Mutex
	calls []execution.Command
}

func (f *FixtureRunner) Run(_ context.Context, cmd execution.Command) execution.Result {
	f.mu.Lock()
	f.calls = append(f.calls, cmd)
	f.mu.Unlock()

	switch filepath.Base(cmd.Name) {
	case "blastn":
		if f.FailAlignment {
			return failed(cmd, 2, "BLAST query/options error: remote search failed")
		}
		return f.copyFixture(cmd, "report.json", arg(cmd.Args, "-out"))
	case "efetch":
		return f.copyFixture(cmd, arg(cmd.Args, "-id")+".xml", cmd.StdoutPath)
	default:
		return failed(cmd, 127, cmd.Name+": command not found")
	}
}

// Calls lists every command run so far
func (f *FixtureRunner) Calls() []execution.Command {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]execution.Command(nil), f.calls...)
}

func (f *FixtureRunner) copyFixture(cmd execution.Command, fixture string, dst string) execution.Result {
	raw, err := os.ReadFile(filepath.Join(f.Dir, fixture))
	if err != nil {
		return failed(cmd, 1, "no record found for "+fixture)
	}
	if err := os.WriteFile(dst, raw, 0644); err != nil {
		return execution.Result{Command: cmd.String(), ExitCode: -1, Err: err}
	}
	return execution.Result{Command: cmd.String()}
}

func failed(cmd execution.Command, code int, stderr string) execution.Result {
	return execution.Result{
		Command:  cmd.String(),
		Stderr:   stderr,
		ExitCode: code,
		Err:      errors.New("exit status"),
	}
}

func arg(args []string, flag string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag {
			return args[i+1]
		}
	}
	return ""
}
