// Package store implements the in-memory record database and its
// whole-file JSON persistence.
package store

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tmkelleher/fibstudy/internal/model"
	"github.com/tmkelleher/fibstudy/internal/uid"
)

// Sentinel errors for store operations.
var (
	// ErrDuplicateKey is returned by Insert when the UID is already present.
	ErrDuplicateKey = errors.New("store: duplicate key")
	// ErrNotFound is returned when a UID is absent from the store.
	ErrNotFound = errors.New("store: record not found")
)

// IsNotFound reports whether err is a missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Database is a keyed in-memory store of records. Every map key equals
// the UID of the record it holds. Iteration follows insertion order, so
// a given insertion history replays identically within a process run.
// Database is not safe for concurrent mutation; fibstudy is single-user
// and single-threaded.
type Database struct {
	records map[uid.UID]model.Record
	order   []uid.UID
}

// New returns an empty Database.
func New() *Database {
	return &Database{records: make(map[uid.UID]model.Record)}
}

// FromRecords builds a Database from a record list. Duplicate UIDs
// dedup last-write-wins: the later value replaces the earlier one while
// keeping the earlier one's position.
func FromRecords(records []model.Record) *Database {
	db := New()
	for _, r := range records {
		k := r.RecordUID()
		if _, ok := db.records[k]; !ok {
			db.order = append(db.order, k)
		}
		db.records[k] = r
	}
	return db
}

// Len returns the number of stored records.
func (d *Database) Len() int {
	return len(d.records)
}

// Insert adds a record, failing with ErrDuplicateKey if its UID is
// already present. A failed insert leaves the store unchanged.
func (d *Database) Insert(r model.Record) error {
	k := r.RecordUID()
	if _, ok := d.records[k]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, k)
	}
	d.records[k] = r
	d.order = append(d.order, k)
	return nil
}

// Get returns the stored record for the UID. The record is the stored
// value itself, not a copy.
func (d *Database) Get(id uid.UID) (model.Record, error) {
	r, ok := d.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r, nil
}

// Update replaces the stored record for r's UID entirely. It fails with
// ErrNotFound, leaving the store unchanged, if the UID is absent.
func (d *Database) Update(r model.Record) error {
	k := r.RecordUID()
	if _, ok := d.records[k]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, k)
	}
	d.records[k] = r
	return nil
}

// Delete removes the record for the UID, failing with ErrNotFound if
// absent.
func (d *Database) Delete(id uid.UID) error {
	if _, ok := d.records[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(d.records, id)
	d.order = slices.DeleteFunc(d.order, func(k uid.UID) bool { return k == id })
	return nil
}

// Records returns all records in insertion order.
func (d *Database) Records() []model.Record {
	out := make([]model.Record, 0, len(d.order))
	for _, k := range d.order {
		out = append(out, d.records[k])
	}
	return out
}

// Query returns a new Database holding exactly the records whose kind
// is in kinds and for which pred returns true. A nil pred matches
// everything. The source database is not mutated, and result order
// follows source order.
func (d *Database) Query(kinds []model.Kind, pred func(model.Record) bool) *Database {
	var matched []model.Record
	for _, k := range d.order {
		r := d.records[k]
		if !slices.Contains(kinds, r.Kind()) {
			continue
		}
		if pred != nil && !pred(r) {
			continue
		}
		matched = append(matched, r)
	}
	return FromRecords(matched)
}
