package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)

	saved := map[string]bool{"09:00": true, "09:30": false}
	require.NoError(t, store.Save(KeyDailyAvailability, saved))

	var loaded map[string]bool
	require.NoError(t, store.Load(KeyDailyAvailability, &loaded))
	require.Equal(t, saved, loaded)
}

func TestStoreMissingRecord(t *testing.T) {
	store := openTestStore(t)

	var lessons []string
	err := store.Load(KeyLessons, &lessons)
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestStoreDecodeFailureIsNotFatal(t *testing.T) {
	store := openTestStore(t)

	// Write a shape that does not match what the reader expects.
	require.NoError(t, store.Save(KeyStudents, "not a list"))

	var students []struct{ Name string }
	err := store.Load(KeyStudents, &students)
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrNotFound))

	// The store itself stays usable after a bad record.
	require.NoError(t, store.Save(KeyStudents, []struct{ Name string }{{Name: "Ana"}}))
	require.NoError(t, store.Load(KeyStudents, &students))
	require.Len(t, students, 1)
}
