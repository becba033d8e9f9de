package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/calebsm/fianchetto/internal/board"
)

// Key prefix for saved positions.
const positionPrefix = "position/"

// SavedPosition is the stored record for a named position.
type SavedPosition struct {
	Name    string    `json:"name"`
	FEN     string    `json:"fen"`
	SavedAt time.Time `json:"saved_at"`
}

// Storage wraps BadgerDB for persistent position storage.
type Storage struct {
	db *badger.DB
}

// NewStorage opens the store in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dbDir)
}

// OpenAt opens the store in a specific directory.
func OpenAt(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePosition stores a position under a name, overwriting any
// previous record with that name.
func (s *Storage) SavePosition(name string, pos *board.Position) error {
	if name == "" {
		return fmt.Errorf("position name must not be empty")
	}

	record := SavedPosition{
		Name:    name,
		FEN:     pos.FEN(),
		SavedAt: time.Now(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(positionPrefix+name), data)
	})
}

// LoadPosition reconstructs a named position from its stored FEN.
func (s *Storage) LoadPosition(name string) (*board.Position, error) {
	var record SavedPosition

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(positionPrefix + name))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("no saved position named %q", name)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if err != nil {
		return nil, err
	}

	pos, err := board.ParseFEN(record.FEN)
	if err != nil {
		return nil, fmt.Errorf("stored position %q is corrupt: %w", name, err)
	}

	return pos, nil
}

// ListPositions returns all saved records, sorted by name.
func (s *Storage) ListPositions() ([]SavedPosition, error) {
	var records []SavedPosition

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(positionPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var record SavedPosition
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			})
			if err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})

	return records, nil
}

// DeletePosition removes a named position. Deleting a name that does
// not exist is not an error.
func (s *Storage) DeletePosition(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(positionPrefix + name))
	})
}
