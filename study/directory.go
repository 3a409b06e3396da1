package study

import (
	"errors"

	"github.com/google/uuid"
)

// Record is one registered user.
type Record struct {
	ID   uuid.UUID
	Name string
	Age  int
}

// Directory stores registered users.
//
// Implementations only persist; validation happens before Store is called.
type Directory interface {
	Store(rec Record) error
	Lookup(id uuid.UUID) (Record, bool)
}

// ErrDuplicateRecord is returned when a record with the same ID is stored twice.
var ErrDuplicateRecord = errors.New("study: duplicate record id")

// MapDirectory is a simple in-memory directory that keeps insertion order.
// It is not safe for concurrent use.
type MapDirectory struct {
	byID  map[uuid.UUID]int
	order []Record
}

func NewMapDirectory() *MapDirectory {
	return &MapDirectory{byID: map[uuid.UUID]int{}}
}

// Store implements Directory.
func (d *MapDirectory) Store(rec Record) error {
	if d.byID == nil {
		d.byID = map[uuid.UUID]int{}
	}
	if _, exists := d.byID[rec.ID]; exists {
		return ErrDuplicateRecord
	}
	d.byID[rec.ID] = len(d.order)
	d.order = append(d.order, rec)
	return nil
}

// Lookup implements Directory.
func (d *MapDirectory) Lookup(id uuid.UUID) (Record, bool) {
	i, ok := d.byID[id]
	if !ok {
		return Record{}, false
	}
	return d.order[i], true
}

// Len returns the number of stored records.
func (d *MapDirectory) Len() int { return len(d.order) }

// Records returns a copy of all records in insertion order.
func (d *MapDirectory) Records() []Record {
	out := make([]Record, len(d.order))
	copy(out, d.order)
	return out
}
