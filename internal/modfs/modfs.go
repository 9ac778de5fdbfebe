// Package modfs reads and writes the on-disk form of a modular project: a
// flat directory holding meta.json, per-screen .json component trees, and
// per-screen .xml block markup.
package modfs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"thunkd/internal/project"
)

// ErrAborted is returned by CleanDir when the user declines to overwrite an
// existing directory.
var ErrAborted = errors.New("aborted")

// ReadDir loads a modular project from dir. Files with extensions other than
// .json and .xml are skipped and reported in the second return value; the
// markup files are kept as raw strings, everything else is parsed JSON.
func ReadDir(dir string) (project.FileSet, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("reading modular project: %w", err)
	}

	fs := make(project.FileSet)
	var skipped []string
	for _, entry := range entries {
		if entry.IsDir() {
			skipped = append(skipped, entry.Name())
			continue
		}
		name := entry.Name()
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", name, err)
		}

		switch {
		case strings.HasSuffix(name, ".json"):
			var value any
			if err := json.Unmarshal(data, &value); err != nil {
				return nil, nil, fmt.Errorf("parsing %s: %w", name, err)
			}
			fs[name] = value
		case strings.HasSuffix(name, ".xml"):
			fs[name] = string(data)
		default:
			skipped = append(skipped, name)
		}
	}
	return fs, skipped, nil
}

// ReadMeta loads only the meta.json document from dir, for pushing a project
// that was pulled without the modular explosion.
func ReadMeta(dir string) (project.Document, error) {
	data, err := os.ReadFile(filepath.Join(dir, project.MetaFile))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", project.MetaFile, err)
	}
	var doc project.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", project.MetaFile, err)
	}
	return doc, nil
}

// WriteDir persists a modular project into dir, which must exist. JSON files
// are pretty-printed for diffing; markup files are written byte for byte,
// since reformatting the XML breaks the backend.
func WriteDir(dir string, fs project.FileSet) error {
	for name, content := range fs {
		var data []byte
		switch {
		case strings.HasSuffix(name, ".json"):
			encoded, err := encodeJSON(content)
			if err != nil {
				return fmt.Errorf("encoding %s: %w", name, err)
			}
			data = encoded
		case strings.HasSuffix(name, ".xml"):
			xml, ok := content.(string)
			if !ok {
				return fmt.Errorf("%w: %s is not a markup string", project.ErrMalformedDocument, name)
			}
			data = []byte(xml)
		default:
			return fmt.Errorf("%w: %s", project.ErrInvalidFileType, name)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	return nil
}

// CleanDir prepares dir as an empty directory. When dir already holds files,
// confirm is called with their names; a false return aborts with ErrAborted
// before anything is deleted.
func CleanDir(dir string, confirm func(existing []string) bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}
	if len(entries) > 0 {
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
		if confirm != nil && !confirm(names) {
			return ErrAborted
		}
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("clearing %s: %w", dir, err)
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("recreating %s: %w", dir, err)
		}
	}
	return nil
}

// encodeJSON renders a JSON value with 4-space indentation and without HTML
// escaping, matching what the Thunkable editor itself produces.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
