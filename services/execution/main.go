package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/mycolab/genbank/logger"

	"go.uber.org/zap"
)

type (
	// Command describes one invocation of an external binary;
	// when StdoutPath is set, standard output is written to that file
	Command struct {
		Name       string
		Args       []string
		StdoutPath string
	}

	// Result is the outcome of running a Command. A failed run is not
	// an error by itself: callers decide whether it aborts the request
	// or only skips one item
	Result struct {
		Command  string
		Stdout   string
		Stderr   string
		ExitCode int
		Err      error
	}

	Runner interface {
		Run(ctx context.Context, cmd Command) Result
	}

	ProcessRunner struct{}
)

func (c Command) String() string {
	s := strings.Join(append([]string{c.Name}, c.Args...), " ")
	if c.StdoutPath != "" {
		s = fmt.Sprintf("%s > %s", s, c.StdoutPath)
	}
	return s
}

func (r Result) Succeeded() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Error summarises a failed run, preferring what the process wrote to stderr
func (r Result) Error() string {
	if r.Succeeded() {
		return ""
	}
	detail := strings.TrimSpace(r.Stderr)
	if detail == "" && r.Err != nil {
		detail = r.Err.Error()
	}
	return fmt.Sprintf("`%s` exited with code %d: %s", r.Command, r.ExitCode, detail)
}

func NewProcessRunner() *ProcessRunner {
	return &ProcessRunner{}
}

func (p *ProcessRunner) Run(ctx context.Context, cmd Command) Result {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)

	var (
		stdout bytes.Buffer
		stderr bytes.Buffer
	)
	c.Stderr = &stderr

	if cmd.StdoutPath != "" {
		f, err := os.Create(cmd.StdoutPath)
		if err != nil {
			return Result{Command: cmd.String(), ExitCode: -1, Err: err}
		}
		defer f.Close()
		c.Stdout = f
	} else {
		c.Stdout = &stdout
	}

	res := Result{Command: cmd.String()}
	if err := c.Run(); err != nil {
		res.Err = err
		res.ExitCode = -1

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		}
	}
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()

	Log(res)
	return res
}

// Log writes captured output: stdout at info, stderr at error level
func Log(res Result) {
	if res.Stdout != "" {
		logger.Info("command stdout", zap.String("command", res.Command), zap.String("stdout", res.Stdout))
	}
	if res.Stderr != "" {
		logger.Error("command stderr", zap.String("command", res.Command), zap.String("stderr", res.Stderr))
	}
	if !res.Succeeded() {
		logger.Warn("command failed", zap.String("command", res.Command), zap.Int("exitCode", res.ExitCode))
	}
}
