package memory

import (
	"context"
	"errors"
	"sort"

	"farm-records/internal/domain/feeds"
)

type feedsRepo struct {
	store *Store
}

func NewFeedsRepo(store *Store) feeds.Repository {
	return &feedsRepo{store: store}
}

func (r *feedsRepo) Create(ctx context.Context, rec feeds.FeedRecord) (feeds.FeedRecord, error) {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.animals[rec.AnimalID]; !ok {
		return feeds.FeedRecord{}, errors.New("animal does not exist")
	}

	s.feedSeq++
	rec.ID = s.feedSeq
	s.feeds = append(s.feeds, rec)

	return rec, nil
}

func (r *feedsRepo) List(ctx context.Context, filter feeds.ListFilter) ([]feeds.FeedWithAnimal, error) {
	s := r.store

	s.mu.RLock()
	defer s.mu.RUnlock()

	var wantAnimal int64
	if filter.TagNumber != "" {
		id, ok := s.tagIndex[filter.TagNumber]
		if !ok {
			return []feeds.FeedWithAnimal{}, nil
		}
		wantAnimal = id
	} else if filter.AnimalID != nil {
		wantAnimal = *filter.AnimalID
	}

	out := make([]feeds.FeedWithAnimal, 0)
	for _, f := range s.feeds {
		if wantAnimal != 0 && f.AnimalID != wantAnimal {
			continue
		}
		a, ok := s.animals[f.AnimalID]
		if !ok {
			continue
		}
		out = append(out, feeds.FeedWithAnimal{
			FeedRecord: f,
			TagNumber:  a.TagNumber,
			AnimalType: string(a.Type),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].FeedDate.Equal(out[j].FeedDate) {
			return out[i].FeedDate.After(out[j].FeedDate)
		}
		return out[i].ID > out[j].ID
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}

	return out, nil
}
