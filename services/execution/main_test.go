package execution

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandString(t *testing.T) {
	cmd := Command{
		Name:       "efetch",
		Args:       []string{"-db", "nuccore", "-id", "MN123456.1"},
		StdoutPath: "/tmp/out.xml",
	}

	assert.Equal(t, "efetch -db nuccore -id MN123456.1 > /tmp/out.xml", cmd.String())
}

func TestResult(t *testing.T) {
	t.Run("should succeed on exit code zero", func(t *testing.T) {
		assert.True(t, Result{}.Succeeded())
		assert.Empty(t, Result{}.Error())
	})

	t.Run("should describe a failure with stderr", func(t *testing.T) {
		res := Result{Command: "blastn", ExitCode: 1, Err: errors.New("exit status 1"), Stderr: "BLAST query/options error\n"}

		assert.False(t, res.Succeeded())
		assert.Equal(t, "`blastn` exited with code 1: BLAST query/options error", res.Error())
	})
}

func TestProcessRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	runner := NewProcessRunner()

	t.Run("should capture stdout into a file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "out.txt")

		res := runner.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "printf hello"}, StdoutPath: out})
		require.True(t, res.Succeeded())

		content, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(content))
	})

	t.Run("should report a nonzero exit as a typed failure", func(t *testing.T) {
		res := runner.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "echo oops >&2; exit 3"}})

		assert.False(t, res.Succeeded())
		assert.Equal(t, 3, res.ExitCode)
		assert.Equal(t, "oops\n", res.Stderr)
	})

	t.Run("should report a missing binary", func(t *testing.T) {
		res := runner.Run(context.Background(), Command{Name: "definitely-not-a-real-binary-xyz"})

		assert.False(t, res.Succeeded())
		assert.Equal(t, -1, res.ExitCode)
	})
}
