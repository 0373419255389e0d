package animals

import "context"

type Repository interface {
	// Register inserta el animal y su primer registro de peso como una sola
	// operación. Asigna los ids y el recorded_at del registro inicial.
	// Si el tag ya existe (incluida la carrera contra otro insert concurrente)
	// devuelve ErrDuplicateTag.
	Register(ctx context.Context, a Animal, initial WeightEntry) (AnimalWithWeights, error)

	GetByTag(ctx context.Context, tagNumber string) (Animal, error)

	// List devuelve animales (filtro por substring de tag opcional), cada uno
	// con solo su peso más reciente, ordenados por created_at desc.
	List(ctx context.Context, tagFilter string) ([]AnimalWithWeights, error)
}
