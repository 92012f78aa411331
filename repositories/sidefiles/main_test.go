package sidefiles

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePaths(t *testing.T) {
	s := NewStore("/blast")

	assert.Equal(t, "/blast/queries/abc.fas", s.QueryPath("abc"))
	assert.Equal(t, "/blast/fasta/abc.json", s.ReportPath("abc"))
	assert.Equal(t, "/blast/fasta/abc.MN123456.1.xml", s.RecordXmlPath("abc", "MN123456.1"))
	assert.Equal(t, "/blast/fasta/abc.MN123456.1.json", s.RecordJsonPath("abc", "MN123456.1"))
	assert.Equal(t, "/blast/requests/abc.json", s.RequestPath("abc"))
}

func TestStoreFiles(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.EnsureDirectories())

	t.Run("should write the query as FASTA", func(t *testing.T) {
		path, err := s.WriteQuery("abc", "ITS1", "ACGT")
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, ">ITS1\nACGT\n", string(content))
	})

	t.Run("should label an undescribed query with its id", func(t *testing.T) {
		path, err := s.WriteQuery("def", "", "ACGT")
		require.NoError(t, err)

		content, _ := os.ReadFile(path)
		assert.Equal(t, ">def\nACGT\n", string(content))
	})

	t.Run("should persist the request body and JSON side files", func(t *testing.T) {
		require.NoError(t, s.WriteRequest("abc", []byte(`{"sequence":"ACGT"}`)))
		require.NoError(t, s.WriteJSON(s.RecordJsonPath("abc", "X1"), map[string]string{"a": "b"}))

		body, _ := os.ReadFile(s.RequestPath("abc"))
		assert.JSONEq(t, `{"sequence":"ACGT"}`, string(body))
		side, _ := os.ReadFile(s.RecordJsonPath("abc", "X1"))
		assert.JSONEq(t, `{"a":"b"}`, string(side))
	})

	t.Run("should tolerate removing a missing file", func(t *testing.T) {
		path := s.RecordXmlPath("abc", "missing")

		assert.NotPanics(t, func() { s.Remove(path) })
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestPurge(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.EnsureDirectories())

	oldFile := s.RequestPath("old")
	newFile := s.RequestPath("new")
	require.NoError(t, os.WriteFile(oldFile, []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(newFile, []byte("{}"), 0644))
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldFile, past, past))

	removed, err := s.Purge(time.Now().Add(-24 * time.Hour))

	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	_, err = os.Stat(oldFile)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Clean(newFile))
	assert.NoError(t, err)
}
