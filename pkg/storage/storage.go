package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/leftovertalk/ai-digest/models"
)

type Storage struct{}

// FileStats holds metadata about a file without reading its contents.
type FileStats struct {
	SizeBytes int64
	ModTime   time.Time
}

// SaveFile writes content to filePath, creating parent directories.
func (s *Storage) SaveFile(filePath string, content []byte) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

func (s *Storage) HasFile(fn string) bool {
	_, err := os.Stat(fn)
	return err == nil
}

// GetFileStats returns metadata about a file using os.Stat (no read).
func (s *Storage) GetFileStats(filePath string) (*FileStats, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}

	return &FileStats{
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}

// ListDocuments returns the files in dir matching pattern, minus any whose
// base name matches an exclude pattern, sorted by path.
func (s *Storage) ListDocuments(dir, pattern string, exclude []string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		if info, err := os.Stat(m); err != nil || info.IsDir() {
			continue
		}
		if excluded(filepath.Base(m), exclude) {
			continue
		}
		paths = append(paths, m)
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadDocuments reads every listed document. Order determines entry order in
// the corpus, so it is the sorted path order from ListDocuments.
func (s *Storage) LoadDocuments(dir, pattern string, exclude []string) ([]models.Document, error) {
	paths, err := s.ListDocuments(dir, pattern, exclude)
	if err != nil {
		return nil, err
	}

	docs := make([]models.Document, 0, len(paths))
	for _, p := range paths {
		data, err := s.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", p, err)
		}
		docs = append(docs, models.Document{
			ID:   filepath.Base(p),
			Path: p,
			Text: string(data),
		})
	}
	return docs, nil
}

// MarshalJSON renders v with two-space indentation, keeping non-ASCII text
// and HTML characters literal.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("error marshalling JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteJSON marshals v with MarshalJSON and saves it to filePath.
// It returns the number of bytes written.
func (s *Storage) WriteJSON(filePath string, v any) (int, error) {
	data, err := MarshalJSON(v)
	if err != nil {
		return 0, err
	}
	if err := s.SaveFile(filePath, data); err != nil {
		return 0, err
	}
	return len(data), nil
}

func excluded(base string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, base); ok {
			return true
		}
	}
	return false
}
