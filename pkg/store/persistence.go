package store

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// Persistence defines the persistence contract for the task file.
type Persistence interface {
	// Load reads the task file. A file that is missing or cannot be opened
	// yields an empty store.
	Load() (*Tasks, error)
	// Save overwrites the task file, stamping headers with month (1..12) and
	// year.
	Save(t *Tasks, month, year int) error
	// Path is the location of the task file.
	Path() string
}

// Open creates a Persistence for the task file at path. Nothing is read or
// created until Load or Save is called.
func Open(path string) Persistence {
	dir, name := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:     dir,
			Transform:    flatTransform,
			CacheSizeMax: 0, // every Load goes back to disk
		}),
		key:  name,
		path: path,
	}
}

// Load reads path into a new store. See Persistence.Load.
func Load(path string) (*Tasks, error) {
	return Open(path).Load()
}

// Save writes t to path. See Persistence.Save.
func Save(t *Tasks, month, year int, path string) error {
	return Open(path).Save(t, month, year)
}

type persistence struct {
	d    *diskv.Diskv
	key  string
	path string
}

func (p *persistence) Path() string {
	return p.path
}

func (p *persistence) Load() (*Tasks, error) {
	rc, err := p.d.ReadStream(p.key, true)
	if err != nil {
		// First run: no file yet.
		return NewTasks(), nil
	}
	defer rc.Close()
	return Decode(rc), nil
}

func (p *persistence) Save(t *Tasks, month, year int) error {
	var buf bytes.Buffer
	if err := Encode(&buf, t, month, year); err != nil {
		return fmt.Errorf("store: encode tasks: %w", err)
	}
	if err := p.d.Write(p.key, buf.Bytes()); err != nil {
		return fmt.Errorf("store: save %s: %w", p.path, err)
	}
	return nil
}

// flatTransform keeps the task file directly under the base path.
func flatTransform(string) []string {
	return []string{}
}
