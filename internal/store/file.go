package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// File is a Store persisted as a single JSON object on disk. Every write
// rewrites the whole file; with one small key that is cheaper than being
// clever. Reads come from the in-memory copy loaded at creation.
type File struct {
	path   string
	values map[string]string
}

// OpenFile loads (or initializes) a file-backed store. A missing file is an
// empty store; a corrupt file is treated the same way rather than failing,
// since every value in it has a safe default.
func OpenFile(path string) (*File, error) {
	f := &File{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open save file: %w", err)
	}
	if err := json.Unmarshal(data, &f.values); err != nil {
		f.values = make(map[string]string)
	}
	return f, nil
}

func (f *File) Get(key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (f *File) Set(key, value string) error {
	f.values[key] = value
	return f.flush()
}

func (f *File) Remove(key string) error {
	if _, ok := f.values[key]; !ok {
		return nil
	}
	delete(f.values, key)
	return f.flush()
}

// flush writes the store atomically: temp file then rename.
func (f *File) flush() error {
	data, err := json.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("encode save file: %w", err)
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create save dir: %w", err)
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write save file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace save file: %w", err)
	}
	return nil
}
