package collector

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ReportPattern is the glob candidate report files must match.
const ReportPattern = "v*.md"

// Source lists and reads report files in a research directory.
type Source interface {
	// List returns candidate file names in dir, sorted. A missing dir yields no names and no error.
	List(dir string) ([]string, error)
	Read(dir, name string) (string, error)
	Name() string
}

// FSSource reads reports from the local filesystem.
type FSSource struct{}

// NewFSSource creates a filesystem Source.
func NewFSSource() *FSSource { return &FSSource{} }

func (s *FSSource) Name() string { return "fs" }

func (s *FSSource) List(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat research dir: %w", err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	paths, err := filepath.Glob(filepath.Join(dir, ReportPattern))
	if err != nil {
		return nil, fmt.Errorf("glob reports: %w", err)
	}
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		if fi, err := os.Stat(p); err == nil && fi.IsDir() {
			continue
		}
		names = append(names, filepath.Base(p))
	}
	sort.Strings(names)
	return names, nil
}

func (s *FSSource) Read(dir, name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// MockSource serves reports from memory for development and testing.
// Names are returned in the order given, so tests can control enumeration order.
type MockSource struct {
	Names   []string
	Files   map[string]string
	Errors  map[string]error
	ListErr error
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) List(_ string) ([]string, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Names, nil
}

func (m *MockSource) Read(_ string, name string) (string, error) {
	if err, ok := m.Errors[name]; ok {
		return "", err
	}
	content, ok := m.Files[name]
	if !ok {
		return "", fs.ErrNotExist
	}
	return content, nil
}
