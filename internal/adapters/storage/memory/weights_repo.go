package memory

import (
	"context"
	"errors"
	"sort"

	"farm-records/internal/domain/animals"
	"farm-records/internal/domain/weights"
)

type weightsRepo struct {
	store *Store
}

func NewWeightsRepo(store *Store) weights.Repository {
	return &weightsRepo{store: store}
}

func (r *weightsRepo) Create(ctx context.Context, rec weights.WeightRecord) (weights.WeightRecord, error) {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	// Emula la FK: sin animal no hay registro.
	if _, ok := s.animals[rec.AnimalID]; !ok {
		return weights.WeightRecord{}, errors.New("animal does not exist")
	}

	s.weightSeq++
	rec.ID = s.weightSeq
	rec.RecordedAt = s.now()
	s.weights = append(s.weights, rec)

	return rec, nil
}

func (r *weightsRepo) List(ctx context.Context, filter weights.ListFilter) ([]weights.WeightWithAnimal, error) {
	s := r.store

	s.mu.RLock()
	defer s.mu.RUnlock()

	var wantAnimal int64
	if filter.TagNumber != "" {
		id, ok := s.tagIndex[filter.TagNumber]
		if !ok {
			return []weights.WeightWithAnimal{}, nil
		}
		wantAnimal = id
	} else if filter.AnimalID != nil {
		wantAnimal = *filter.AnimalID
	}

	out := make([]weights.WeightWithAnimal, 0)
	for _, w := range s.weights {
		if wantAnimal != 0 && w.AnimalID != wantAnimal {
			continue
		}
		a, ok := s.animals[w.AnimalID]
		if !ok {
			continue
		}
		out = append(out, weights.WeightWithAnimal{
			WeightRecord: w,
			TagNumber:    a.TagNumber,
			AnimalType:   string(a.Type),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].RecordedAt.Equal(out[j].RecordedAt) {
			return out[i].RecordedAt.After(out[j].RecordedAt)
		}
		return out[i].ID > out[j].ID
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}

	return out, nil
}

func weightFromEntry(e animals.WeightEntry) weights.WeightRecord {
	return weights.WeightRecord{
		ID:         e.ID,
		AnimalID:   e.AnimalID,
		Weight:     e.Weight,
		RecordedAt: e.RecordedAt,
		Notes:      e.Notes,
	}
}
