package sidefiles

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/mycolab/genbank/logger"

	"go.uber.org/zap"
)

const (
	queriesDir  = "queries"
	fastaDir    = "fasta"
	requestsDir = "requests"
)

// Store lays out the files a search leaves on disk, keyed by the
// request's derived id (and accession id for per-hit files)
type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) EnsureDirectories() error {
	for _, dir := range []string{queriesDir, fastaDir, requestsDir} {
		if err := os.MkdirAll(filepath.Join(s.root, dir), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}

func (s *Store) QueryPath(id string) string {
	return filepath.Join(s.root, queriesDir, fmt.Sprintf("%s.fas", id))
}
func (s *Store) ReportPath(id string) string {
	return filepath.Join(s.root, fastaDir, fmt.Sprintf("%s.json", id))
}
func (s *Store) RecordXmlPath(id string, accessionId string) string {
	return filepath.Join(s.root, fastaDir, fmt.Sprintf("%s.%s.xml", id, accessionId))
}
func (s *Store) RecordJsonPath(id string, accessionId string) string {
	return filepath.Join(s.root, fastaDir, fmt.Sprintf("%s.%s.json", id, accessionId))
}
func (s *Store) RequestPath(id string) string {
	return filepath.Join(s.root, requestsDir, fmt.Sprintf("%s.json", id))
}

// WriteQuery writes the query as a single FASTA entry for blastn
func (s *Store) WriteQuery(id string, description string, sequence string) (string, error) {
	path := s.QueryPath(id)
	label := description
	if label == "" {
		label = id
	}
	content := fmt.Sprintf(">%s\n%s\n", label, sequence)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing query %s: %w", path, err)
	}
	return path, nil
}

func (s *Store) WriteRequest(id string, body []byte) error {
	path := s.RequestPath(id)
	if err := os.WriteFile(path, body, 0644); err != nil {
		return fmt.Errorf("writing request %s: %w", path, err)
	}
	return nil
}

func (s *Store) WriteJSON(path string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Remove deletes a temporary file; a file that is already gone is only
// logged, since cleanup runs whether or not the step producing it succeeded
func (s *Store) Remove(path string) {
	err := os.Remove(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn("expected temporary file is missing", zap.String("path", path))
	default:
		logger.Error("unable to remove temporary file", zap.String("path", path), zap.Error(err))
	}
}

// Purge deletes side files last modified before the cutoff and
// returns how many were removed
func (s *Store) Purge(cutoff time.Time) (int, error) {
	removed := 0
	for _, dir := range []string{queriesDir, fastaDir, requestsDir} {
		entries, err := os.ReadDir(filepath.Join(s.root, dir))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return removed, err
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			info, err := entry.Info()
			if err != nil || !info.ModTime().Before(cutoff) {
				continue
			}
			if err := os.Remove(filepath.Join(s.root, dir, entry.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}
