package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"

	"github.com/tmkelleher/fibstudy/internal/model"
)

// AppName is the application name used for data directories.
const AppName = "fibstudy"

// DefaultPath returns the default database file location following the
// XDG spec.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppName, "db.json")
}

// MarshalJSON encodes the whole database as one JSON object keyed by
// UID string, one entry per record. Keys are emitted in sorted order
// (encoding/json map behavior), so equal databases encode identically.
func (d *Database) MarshalJSON() ([]byte, error) {
	out := make(map[string]model.Record, len(d.records))
	for k, r := range d.records {
		out[k.String()] = r
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a whole database, dispatching each entry on its
// type tag. Unknown tags and incomplete records fail the decode; the
// key set and record values of the source are exactly reconstructed.
func (d *Database) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	records := make([]model.Record, 0, len(raw))
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		rec, err := model.DecodeRecord(raw[key])
		if err != nil {
			return fmt.Errorf("record %s: %w", key, err)
		}
		records = append(records, rec)
	}

	*d = *FromRecords(records)
	return nil
}

// Load reads a whole database file. A missing file yields an empty
// database. The file is fully read and released before any decode
// error propagates.
func Load(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, err
	}

	db := New()
	if err := json.Unmarshal(data, db); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return db, nil
}

// Save writes the whole database to path, creating the parent
// directory if needed.
func Save(db *Database, path string) error {
	data, err := json.Marshal(db)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
