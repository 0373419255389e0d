package feeds

import "time"

// FeedRecord es una ración de alimento (kg) dada a un animal.
// A diferencia del peso, feed_date lo aporta el cliente (default: hoy).
type FeedRecord struct {
	ID       int64
	AnimalID int64
	FeedType string
	Amount   float64
	FeedDate time.Time
}

// FeedWithAnimal agrega la proyección mínima del animal padre.
type FeedWithAnimal struct {
	FeedRecord
	TagNumber  string
	AnimalType string
}
