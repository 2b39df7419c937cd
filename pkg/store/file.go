package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	// Packages
	probe "github.com/mutablelogic/go-llm-probe"
	schema "github.com/mutablelogic/go-llm-probe/pkg/schema"
	types "github.com/mutablelogic/go-llm-probe/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// FileStore is a file-backed implementation of Store. Each document is
// stored as {name}.json in a directory. It is safe for concurrent use.
type FileStore struct {
	mu  sync.RWMutex
	dir string
}

var _ probe.Store = (*FileStore)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	jsonExt              = ".json"
	DirPerm  os.FileMode = 0o700 // Directory permission for store directories
	FilePerm os.FileMode = 0o600 // File permission for store files
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewFileStore creates a file-backed store in the given directory.
// The directory is created if it does not exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := ensureDir(dir); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Dir returns the directory documents are stored in
func (f *FileStore) Dir() string {
	return f.dir
}

// Path returns the file path for a document name
func (f *FileStore) Path(name string) string {
	return jsonPath(f.dir, name)
}

// Load reads the catalog stored under name. Returns ErrNotFound when
// there is no such document.
func (f *FileStore) Load(_ context.Context, name string) (*schema.Catalog, error) {
	if !types.IsName(name) {
		return nil, probe.ErrBadParameter.Withf("invalid name %q", name)
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	var catalog schema.Catalog
	if err := readJSON(jsonPath(f.dir, name), name, &catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Save writes v under name, replacing any existing document
func (f *FileStore) Save(_ context.Context, name string, v any) error {
	if !types.IsName(name) {
		return probe.ErrBadParameter.Withf("invalid name %q", name)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return writeJSON(jsonPath(f.dir, name), v)
}

// List returns the names of all documents in the store
func (f *FileStore) List(_ context.Context) ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return readJSONDir(f.dir)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS - FILE UTILITIES

// ensureDir validates that dir is non-empty and creates it if needed.
func ensureDir(dir string) error {
	if dir == "" {
		return probe.ErrBadParameter.With("directory is required")
	}
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return probe.ErrInternalServerError.Withf("mkdir: %v", err)
	}
	return nil
}

// writeJSON serialises v to a JSON file at the given path. The file is
// written alongside and renamed into place, so readers never observe a
// partial document.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return probe.ErrInternalServerError.Withf("marshal: %v", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), FilePerm); err != nil {
		return probe.ErrInternalServerError.Withf("write: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return probe.ErrInternalServerError.Withf("rename: %v", err)
	}
	return nil
}

// readJSON deserialises a JSON file into v. Returns ErrNotFound when the
// file does not exist, using label to identify the missing document.
func readJSON(path string, label string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return probe.ErrNotFound.Withf("%s", label)
		}
		return probe.ErrInternalServerError.Withf("read: %v", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return probe.ErrBadParameter.Withf("%s: %v", label, err)
	}
	return nil
}

// readJSONDir returns the names (filenames without .json extension) of all
// JSON files in dir, skipping subdirectories and non-JSON files.
func readJSONDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, probe.ErrInternalServerError.Withf("readdir: %v", err)
	}
	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), jsonExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), jsonExt))
	}
	return names, nil
}

// jsonPath returns the file path for a name in the given directory.
func jsonPath(dir, name string) string {
	return filepath.Join(dir, name+jsonExt)
}
