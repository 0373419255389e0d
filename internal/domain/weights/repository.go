package weights

import "context"

// ListFilter selecciona registros: por tag (exacto), por animal id,
// o los últimos Limit de toda la granja si no hay filtro.
type ListFilter struct {
	TagNumber string
	AnimalID  *int64
	Limit     int
}

type Repository interface {
	// Create inserta el registro y asigna ID y RecordedAt.
	Create(ctx context.Context, rec WeightRecord) (WeightRecord, error)

	// List devuelve registros con su proyección de animal,
	// ordenados por recorded_at desc (empates por id desc).
	List(ctx context.Context, filter ListFilter) ([]WeightWithAnimal, error)
}
