package feeds

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"
)

var ErrInvalidInput = errors.New("invalid input")

const DefaultListLimit = 50

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Record registra una ración; sin feedDate usa la fecha de hoy.
func (s *Service) Record(ctx context.Context, animalID int64, feedType string, amount float64, feedDate *time.Time) (FeedRecord, error) {
	feedType = strings.TrimSpace(feedType)

	if animalID <= 0 || feedType == "" {
		return FeedRecord{}, ErrInvalidInput
	}
	if amount <= 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return FeedRecord{}, ErrInvalidInput
	}

	date := s.now().Truncate(24 * time.Hour)
	if feedDate != nil {
		date = *feedDate
	}

	return s.repo.Create(ctx, FeedRecord{
		AnimalID: animalID,
		FeedType: feedType,
		Amount:   amount,
		FeedDate: date,
	})
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]FeedWithAnimal, error) {
	filter.TagNumber = strings.TrimSpace(filter.TagNumber)
	if filter.TagNumber == "" && filter.AnimalID == nil && filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	return s.repo.List(ctx, filter)
}
