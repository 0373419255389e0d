package weights

import "time"

// WeightRecord es una observación de peso (kg) de un animal.
// recorded_at lo asigna el store al insertar, nunca el cliente.
type WeightRecord struct {
	ID         int64
	AnimalID   int64
	Weight     float64
	RecordedAt time.Time
	Notes      string
}

// WeightWithAnimal agrega la proyección mínima del animal padre
// que acompaña cada registro en los listados.
type WeightWithAnimal struct {
	WeightRecord
	TagNumber  string
	AnimalType string
}
