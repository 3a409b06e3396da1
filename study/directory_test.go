package study

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewMapDirectory_Empty verifies NewMapDirectory initializes an empty index.
func TestNewMapDirectory_Empty(t *testing.T) {
	t.Parallel()

	d := NewMapDirectory()
	require.NotNil(t, d)
	require.NotNil(t, d.byID)
	assert.Equal(t, 0, d.Len())
	assert.Empty(t, d.Records())
}

// TestMapDirectory_ZeroValueUsable verifies Store lazily initializes the index.
func TestMapDirectory_ZeroValueUsable(t *testing.T) {
	t.Parallel()

	var d MapDirectory
	_, ok := d.Lookup(uuid.New())
	assert.False(t, ok)

	rec := Record{ID: uuid.New(), Name: "a", Age: 1}
	require.NoError(t, d.Store(rec))
	got, ok := d.Lookup(rec.ID)
	require.True(t, ok)
	assert.Equal(t, rec, got)
}

// TestMapDirectory_DuplicateID verifies a second Store with the same ID is rejected.
func TestMapDirectory_DuplicateID(t *testing.T) {
	t.Parallel()

	d := NewMapDirectory()
	rec := Record{ID: uuid.New(), Name: "a", Age: 1}
	require.NoError(t, d.Store(rec))

	err := d.Store(Record{ID: rec.ID, Name: "b", Age: 2})
	assert.ErrorIs(t, err, ErrDuplicateRecord)
	assert.Equal(t, 1, d.Len())
}

// TestMapDirectory_RecordsInsertionOrder verifies Records keeps order and returns a copy.
func TestMapDirectory_RecordsInsertionOrder(t *testing.T) {
	t.Parallel()

	d := NewMapDirectory()
	first := Record{ID: uuid.New(), Name: "first", Age: 1}
	second := Record{ID: uuid.New(), Name: "second", Age: 2}
	require.NoError(t, d.Store(first))
	require.NoError(t, d.Store(second))

	recs := d.Records()
	assert.Equal(t, []Record{first, second}, recs)

	recs[0].Name = "mutated"
	assert.Equal(t, "first", d.Records()[0].Name)
}
