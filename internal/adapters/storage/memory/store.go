package memory

import (
	"sync"
	"time"

	"farm-records/internal/domain/animals"
	"farm-records/internal/domain/feeds"
	"farm-records/internal/domain/weights"
)

// Store guarda todo el estado in-memory compartido por los repos.
// Un solo mutex para los tres módulos: el registro toca animals y
// weight_records a la vez, y los listados cruzan tablas igual que en SQL.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	animalSeq int64
	weightSeq int64
	feedSeq   int64

	animals  map[int64]animals.Animal
	tagIndex map[string]int64
	weights  []weights.WeightRecord
	feeds    []feeds.FeedRecord
}

func NewStore() *Store {
	return &Store{
		now:      time.Now,
		animals:  make(map[int64]animals.Animal),
		tagIndex: make(map[string]int64),
		weights:  make([]weights.WeightRecord, 0),
		feeds:    make([]feeds.FeedRecord, 0),
	}
}

// WithClock reemplaza el reloj (tests).
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}
