// Package seed bootstraps the location catalogue from newline separated name
// lists stored on disk or in S3.
package seed

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"strings"
)

// Loader reads a list of location names from a source.
type Loader interface {
	// Load reads the named source. Sources ending in .gz are gunzipped.
	Load(ctx context.Context, source string) (*NameSet, error)
}

// NameSet is an insertion ordered set of names.
type NameSet struct {
	names []string
	index map[string]struct{}
}

// NewNameSet creates an empty set.
func NewNameSet() *NameSet {
	return &NameSet{index: make(map[string]struct{})}
}

// Add inserts a name unless it is already present.
func (s *NameSet) Add(name string) {
	if _, exists := s.index[name]; exists {
		return
	}
	s.index[name] = struct{}{}
	s.names = append(s.names, name)
}

// Contains checks if a name exists in the set.
func (s *NameSet) Contains(name string) bool {
	_, exists := s.index[name]
	return exists
}

// Size returns the number of names in the set.
func (s *NameSet) Size() int {
	return len(s.names)
}

// Names returns the names in insertion order.
func (s *NameSet) Names() []string {
	return append([]string(nil), s.names...)
}

// Merge adds every name of other.
func (s *NameSet) Merge(other *NameSet) {
	for _, name := range other.names {
		s.Add(name)
	}
}

// readNames parses one name per line. Blank lines and lines starting with #
// are skipped.
func readNames(ctx context.Context, r io.Reader, source string) (*NameSet, error) {
	if strings.HasSuffix(source, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", source, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	set := NewNameSet()
	scanner := bufio.NewScanner(r)

	for lineCount := 0; scanner.Scan(); lineCount++ {
		if lineCount%10_000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set.Add(line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", source, err)
	}

	return set, nil
}
