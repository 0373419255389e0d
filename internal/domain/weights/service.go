package weights

import (
	"context"
	"errors"
	"math"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

// DefaultListLimit aplica cuando se listan registros sin filtro.
const DefaultListLimit = 50

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record agrega una observación de peso al animal ya resuelto por el caller.
func (s *Service) Record(ctx context.Context, animalID int64, weight float64, notes string) (WeightRecord, error) {
	if animalID <= 0 {
		return WeightRecord{}, ErrInvalidInput
	}
	if weight <= 0 || math.IsInf(weight, 0) || math.IsNaN(weight) {
		return WeightRecord{}, ErrInvalidInput
	}

	return s.repo.Create(ctx, WeightRecord{
		AnimalID: animalID,
		Weight:   weight,
		Notes:    strings.TrimSpace(notes),
	})
}

// List aplica el tope por defecto cuando no hay filtro alguno.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]WeightWithAnimal, error) {
	filter.TagNumber = strings.TrimSpace(filter.TagNumber)
	if filter.TagNumber == "" && filter.AnimalID == nil && filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	return s.repo.List(ctx, filter)
}
