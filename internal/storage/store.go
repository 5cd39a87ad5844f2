// Package storage persists the application's record sets to a single local
// file. Each record is one JSON value: it is loaded once when its repository
// starts and rewritten whole on every mutation.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Record keys. One key per record set.
const (
	KeyStudents          = "students"
	KeyLessons           = "lessons"
	KeyEnquiries         = "enquiries"
	KeyStudentNotes      = "studentNotes"
	KeyDailyAvailability = "dailyAvailability"
	KeyRecurringPatterns = "recurringPatterns"
	KeyTerms             = "terms"
)

// ErrNotFound is returned by Load when a record has never been saved.
// Callers treat it as "start from the empty default".
var ErrNotFound = errors.New("record not found")

var recordsBucket = []byte("records")

type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the storage file at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(recordsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init storage: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the record stored under key into v. It returns ErrNotFound if
// the record was never written, and a decode error if the stored bytes do
// not unmarshal into v. A decode error is recoverable: callers substitute
// the empty default rather than failing.
func (s *Store) Load(key string, v any) error {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if data := tx.Bucket(recordsBucket).Get([]byte(key)); data != nil {
			raw = append(raw, data...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if raw == nil {
		return fmt.Errorf("load %s: %w", key, ErrNotFound)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// Save serializes v and rewrites the record under key in full.
func (s *Store) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(recordsBucket).Put([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
