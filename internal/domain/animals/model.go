package animals

import "time"

// Animal representa un animal registrado en la granja.
// El id lo asigna el store; tag_number es el identificador de cara al usuario.
type Animal struct {
	ID        int64
	TagNumber string
	Type      AnimalType

	// Linaje; ningún workflow actual lo llena.
	MotherID *int64

	BirthDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WeightEntry es un registro de peso visto desde el módulo animals:
// el peso inicial al registrar, o el último peso en los listados.
type WeightEntry struct {
	ID         int64
	AnimalID   int64
	Weight     float64
	RecordedAt time.Time
	Notes      string
}

// AnimalWithWeights es la proyección que devuelven registro y listado:
// el animal más sus registros de peso relevantes (uno como máximo).
type AnimalWithWeights struct {
	Animal
	Weights []WeightEntry
}
