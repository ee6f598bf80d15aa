package repos

import (
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// Counter hands out increasing values starting from 1.
type Counter interface {
	Next() (uint, error)
}

type SequenceRepo struct {
	db *gorm.DB
}

func NewSequenceRepo(db *gorm.DB) *SequenceRepo {
	return &SequenceRepo{
		db: db,
	}
}

// Get returns the sequence with the given key. If it does not exist, it is created.
func (r *SequenceRepo) Get(key string) (*Sequence, error) {
	err := r.db.
		Exec("INSERT INTO sequences (key, val) VALUES (?, 0) ON CONFLICT DO NOTHING", key).
		Error
	if err != nil {
		return nil, fmt.Errorf("create sequence %s: %w", key, err)
	}

	return &Sequence{
		db:  r.db,
		key: key,
	}, nil
}

// Sequence is a counter shared by every node using the same database.
type Sequence struct {
	db  *gorm.DB
	key string
}

func (s *Sequence) Next() (uint, error) {
	var val uint
	err := s.db.
		Raw("UPDATE sequences SET val = val + 1 WHERE key = ? RETURNING val", s.key).
		Scan(&val).
		Error
	if err != nil {
		return 0, fmt.Errorf("update sequence %s: %w", s.key, err)
	}
	return val, nil
}

// MemSequence is a process-local Counter.
type MemSequence struct {
	mu  sync.Mutex
	val uint
}

func (s *MemSequence) Next() (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.val++
	return s.val, nil
}
