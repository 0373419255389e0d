package feeds

import "context"

type ListFilter struct {
	TagNumber string
	AnimalID  *int64
	Limit     int
}

type Repository interface {
	// Create inserta la ración y asigna el ID.
	Create(ctx context.Context, rec FeedRecord) (FeedRecord, error)

	// List devuelve raciones con su proyección de animal,
	// ordenadas por feed_date desc (empates por id desc).
	List(ctx context.Context, filter ListFilter) ([]FeedWithAnimal, error)
}
