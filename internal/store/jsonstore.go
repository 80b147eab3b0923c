// Package store is the flat-file JSON layer under data/: raw league pulls
// on one root, derived snapshots on another.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

type JSONStore struct {
	Root string // e.g. "data/raw"
}

func NewJSONStore(root string) *JSONStore {
	return &JSONStore{Root: root}
}

func (s *JSONStore) Path(rel string) string {
	return filepath.Join(s.Root, rel)
}

func (s *JSONStore) Exists(rel string) bool {
	_, err := os.Stat(s.Path(rel))
	return err == nil
}

func (s *JSONStore) WriteRaw(rel string, body []byte, pretty bool) error {
	path := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	if pretty {
		var v any
		if err := json.Unmarshal(body, &v); err == nil {
			buf := &bytes.Buffer{}
			enc := json.NewEncoder(buf)
			enc.SetIndent("", "  ")
			_ = enc.Encode(v)
			body = buf.Bytes()
		}
	}

	return os.WriteFile(path, body, 0o644)
}

func (s *JSONStore) ReadRaw(rel string) ([]byte, error) {
	return os.ReadFile(s.Path(rel))
}

// ReadJSON decodes rel into out. A missing file is reported as-is so callers
// can choose to degrade instead of failing.
func (s *JSONStore) ReadJSON(rel string, out any) error {
	b, err := s.ReadRaw(rel)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// WriteJSON encodes v indented and writes it under rel.
func (s *JSONStore) WriteJSON(rel string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return s.WriteRaw(rel, b, false)
}

// IsNotExist reports whether err came from a missing snapshot file.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
