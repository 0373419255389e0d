package animals

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidType  = errors.New("invalid animal type")
	ErrDuplicateTag = errors.New("tag number already exists")
	ErrNotFound     = errors.New("animal not found")
)

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

type RegisterInput struct {
	TagNumber     string
	Type          string
	InitialWeight float64
	BirthDate     *time.Time
	Notes         string
}

// Register valida y crea el animal junto con su primer registro de peso.
// El chequeo previo de tag duplicado es solo una optimización: la garantía
// real vive en el store, que devuelve ErrDuplicateTag si pierde la carrera.
func (s *Service) Register(ctx context.Context, in RegisterInput) (AnimalWithWeights, error) {
	tag := strings.TrimSpace(in.TagNumber)
	typ := AnimalType(strings.TrimSpace(in.Type))

	if tag == "" || typ == "" {
		return AnimalWithWeights{}, ErrInvalidInput
	}
	if !typ.IsValid() {
		return AnimalWithWeights{}, ErrInvalidType
	}
	if !validWeight(in.InitialWeight) {
		return AnimalWithWeights{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByTag(ctx, tag); err == nil {
		return AnimalWithWeights{}, ErrDuplicateTag
	} else if !errors.Is(err, ErrNotFound) {
		return AnimalWithWeights{}, err
	}

	now := s.now()
	a := Animal{
		TagNumber: tag,
		Type:      typ,
		BirthDate: in.BirthDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	notes := strings.TrimSpace(in.Notes)
	if notes == "" {
		notes = fmt.Sprintf("Initial weight for %s", tag)
	}

	return s.repo.Register(ctx, a, WeightEntry{
		Weight: in.InitialWeight,
		Notes:  notes,
	})
}

func (s *Service) GetByTag(ctx context.Context, tagNumber string) (Animal, error) {
	tagNumber = strings.TrimSpace(tagNumber)
	if tagNumber == "" {
		return Animal{}, ErrInvalidInput
	}
	return s.repo.GetByTag(ctx, tagNumber)
}

// List devuelve animales con su último peso; tagFilter filtra por substring.
func (s *Service) List(ctx context.Context, tagFilter string) ([]AnimalWithWeights, error) {
	return s.repo.List(ctx, strings.TrimSpace(tagFilter))
}

func validWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}
