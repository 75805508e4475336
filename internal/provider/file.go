package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/tidwall/jsonc"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrNoInput is returned when no file matches the configured patterns
var ErrNoInput = errors.New("no input files matched")

// ScanStats tracks input file discovery
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesLoaded     int // Files actually parsed
	FilesSkipped    int // Files skipped by .gitignore
}

// document is the local-variables response body of the design tool REST API.
// Objects are decoded into ordered maps so provider order survives.
type document struct {
	Status int  `json:"status"`
	Error  bool `json:"error"`
	Meta   struct {
		VariableCollections *orderedmap.OrderedMap[string, RawCollection] `json:"variableCollections"`
		Variables           *orderedmap.OrderedMap[string, RawVariable]   `json:"variables"`
	} `json:"meta"`
}

// Snapshot is the merged content of every input file
type Snapshot struct {
	Collections []RawCollection
	Variables   []RawVariable
	Files       []string
	Stats       ScanStats
}

// File is a Provider reading local-variables documents from disk.
// Every query re-reads the inputs, nothing is cached between calls.
type File struct {
	patterns []string

	gitIgnoreOnce sync.Once
	gitIgnore     *ignore.GitIgnore
}

// NewFile creates a file provider for the given doublestar glob patterns
func NewFile(patterns ...string) *File {
	return &File{patterns: patterns}
}

// Collections implements Provider
func (f *File) Collections(ctx context.Context) ([]RawCollection, error) {
	snap, err := f.Load(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Collections, nil
}

// Variables implements Provider
func (f *File) Variables(ctx context.Context) ([]RawVariable, error) {
	snap, err := f.Load(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Variables, nil
}

// Load expands the patterns and parses every matching file in order
func (f *File) Load(ctx context.Context) (*Snapshot, error) {
	files, stats, err := f.expand()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoInput, f.patterns)
	}

	snap := &Snapshot{Files: files, Stats: stats}
	seenCollections := make(map[string]string)
	seenVariables := make(map[string]string)

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := parseFile(path)
		if err != nil {
			return nil, err
		}
		snap.Stats.FilesLoaded++

		for pair := doc.Meta.VariableCollections.Oldest(); pair != nil; pair = pair.Next() {
			c := pair.Value
			if c.ID == "" {
				c.ID = pair.Key
			}
			if prev, ok := seenCollections[c.ID]; ok {
				return nil, fmt.Errorf("collection id %q defined in both %s and %s", c.ID, prev, path)
			}
			seenCollections[c.ID] = path
			snap.Collections = append(snap.Collections, c)
		}

		for pair := doc.Meta.Variables.Oldest(); pair != nil; pair = pair.Next() {
			v := pair.Value
			if v.ID == "" {
				v.ID = pair.Key
			}
			if prev, ok := seenVariables[v.ID]; ok {
				return nil, fmt.Errorf("variable id %q defined in both %s and %s", v.ID, prev, path)
			}
			seenVariables[v.ID] = path
			snap.Variables = append(snap.Variables, v)
		}
	}

	return snap, nil
}

// parseFile reads one document, tolerating comments and trailing commas
func parseFile(path string) (*document, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	doc := &document{}
	doc.Meta.VariableCollections = orderedmap.New[string, RawCollection]()
	doc.Meta.Variables = orderedmap.New[string, RawVariable]()

	if err := json.Unmarshal(jsonc.ToJSON(content), doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if doc.Error {
		return nil, fmt.Errorf("parse %s: document reports an error response (status %d)", path, doc.Status)
	}
	// An explicit null leaves the maps nil
	if doc.Meta.VariableCollections == nil {
		doc.Meta.VariableCollections = orderedmap.New[string, RawCollection]()
	}
	if doc.Meta.Variables == nil {
		doc.Meta.Variables = orderedmap.New[string, RawVariable]()
	}

	return doc, nil
}

// expand resolves glob patterns to unique regular files, skipping ignored ones
func (f *File) expand() ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range f.patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if f.shouldSkip(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
		}
	}

	return files, stats, nil
}

// shouldSkip reports whether a relative path is excluded by .gitignore.
// Absolute paths are outside the project and never skipped.
func (f *File) shouldSkip(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}
	f.gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err == nil {
			f.gitIgnore = gi
		}
	})
	return f.gitIgnore != nil && f.gitIgnore.MatchesPath(path)
}
