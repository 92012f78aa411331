package audit

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository(t *testing.T) {
	repo, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should record and read back a search", func(t *testing.T) {
		err := repo.Record(ctx, Search{Id: "abc", CreatedAt: created, QueryLength: 200, Hits: 3, Results: 2, Status: Completed})
		require.NoError(t, err)

		s, err := repo.Get(ctx, "abc")

		require.NoError(t, err)
		assert.Equal(t, 200, s.QueryLength)
		assert.Equal(t, 3, s.Hits)
		assert.Equal(t, 2, s.Results)
		assert.Equal(t, Completed, s.Status)
		assert.True(t, created.Equal(s.CreatedAt))
	})

	t.Run("should replace a rerun with the same id", func(t *testing.T) {
		require.NoError(t, repo.Record(ctx, Search{Id: "abc", CreatedAt: created, Status: Failed, Message: "blastn exited with code 1"}))

		s, err := repo.Get(ctx, "abc")

		require.NoError(t, err)
		assert.Equal(t, Failed, s.Status)
		assert.Equal(t, "blastn exited with code 1", s.Message)
	})

	t.Run("should report unknown ids", func(t *testing.T) {
		_, err := repo.Get(ctx, "nope")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("should delete rows before a cutoff", func(t *testing.T) {
		require.NoError(t, repo.Record(ctx, Search{Id: "recent", CreatedAt: time.Now(), Status: Completed}))

		n, err := repo.DeleteBefore(ctx, time.Now().Add(-time.Hour))

		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		_, err = repo.Get(ctx, "recent")
		assert.NoError(t, err)
	})
}
