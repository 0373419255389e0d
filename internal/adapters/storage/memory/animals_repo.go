package memory

import (
	"context"
	"sort"
	"strings"

	"farm-records/internal/domain/animals"
)

type animalsRepo struct {
	store *Store
}

func NewAnimalsRepo(store *Store) animals.Repository {
	return &animalsRepo{store: store}
}

// Register emula la transacción: ambas escrituras bajo el mismo lock,
// con la unicidad del tag chequeada dentro de la sección crítica.
func (r *animalsRepo) Register(ctx context.Context, a animals.Animal, initial animals.WeightEntry) (animals.AnimalWithWeights, error) {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tagIndex[a.TagNumber]; exists {
		return animals.AnimalWithWeights{}, animals.ErrDuplicateTag
	}

	s.animalSeq++
	a.ID = s.animalSeq
	s.animals[a.ID] = a
	s.tagIndex[a.TagNumber] = a.ID

	s.weightSeq++
	initial.ID = s.weightSeq
	initial.AnimalID = a.ID
	initial.RecordedAt = s.now()
	s.weights = append(s.weights, weightFromEntry(initial))

	return animals.AnimalWithWeights{
		Animal:  a,
		Weights: []animals.WeightEntry{initial},
	}, nil
}

func (r *animalsRepo) GetByTag(ctx context.Context, tagNumber string) (animals.Animal, error) {
	s := r.store

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.tagIndex[tagNumber]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return s.animals[id], nil
}

func (r *animalsRepo) List(ctx context.Context, tagFilter string) ([]animals.AnimalWithWeights, error) {
	s := r.store

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]animals.AnimalWithWeights, 0)
	for _, a := range s.animals {
		if tagFilter != "" && !strings.Contains(a.TagNumber, tagFilter) {
			continue
		}

		item := animals.AnimalWithWeights{Animal: a, Weights: []animals.WeightEntry{}}
		if latest, ok := s.latestWeightFor(a.ID); ok {
			item.Weights = append(item.Weights, latest)
		}
		out = append(out, item)
	}

	// created_at desc, empates por id desc.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}

// latestWeightFor busca el registro más reciente del animal
// (recorded_at desc, empates por id desc).
func (s *Store) latestWeightFor(animalID int64) (animals.WeightEntry, bool) {
	var best animals.WeightEntry
	found := false

	for _, w := range s.weights {
		if w.AnimalID != animalID {
			continue
		}
		if !found ||
			w.RecordedAt.After(best.RecordedAt) ||
			(w.RecordedAt.Equal(best.RecordedAt) && w.ID > best.ID) {
			best = animals.WeightEntry{
				ID:         w.ID,
				AnimalID:   w.AnimalID,
				Weight:     w.Weight,
				RecordedAt: w.RecordedAt,
				Notes:      w.Notes,
			}
			found = true
		}
	}

	return best, found
}
