package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"farm-records/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

// Register inserta animal + peso inicial en una sola transacción.
// La constraint UNIQUE de tag_number es la que decide la carrera;
// aquí solo la traducimos a ErrDuplicateTag.
func (r *AnimalsRepo) Register(ctx context.Context, a animals.Animal, initial animals.WeightEntry) (animals.AnimalWithWeights, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return animals.AnimalWithWeights{}, err
	}
	defer func() { _ = tx.Rollback() }()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO animals (tag_number, type, mother_id, birth_date, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`,
		a.TagNumber,
		string(a.Type),
		toNullInt(a.MotherID),
		toNullDate(a.BirthDate),
		a.CreatedAt,
		a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return animals.AnimalWithWeights{}, animals.ErrDuplicateTag
		}
		return animals.AnimalWithWeights{}, err
	}

	initial.AnimalID = a.ID
	err = tx.QueryRowContext(ctx, `
		INSERT INTO weight_records (animal_id, weight, recorded_at, notes)
		VALUES ($1,$2,now(),$3)
		RETURNING id, recorded_at
	`,
		initial.AnimalID,
		initial.Weight,
		initial.Notes,
	).Scan(&initial.ID, &initial.RecordedAt)
	if err != nil {
		return animals.AnimalWithWeights{}, err
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return animals.AnimalWithWeights{}, animals.ErrDuplicateTag
		}
		return animals.AnimalWithWeights{}, err
	}

	return animals.AnimalWithWeights{
		Animal:  a,
		Weights: []animals.WeightEntry{initial},
	}, nil
}

func (r *AnimalsRepo) GetByTag(ctx context.Context, tagNumber string) (animals.Animal, error) {
	tagNumber = strings.TrimSpace(tagNumber)
	if tagNumber == "" {
		return animals.Animal{}, animals.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, tag_number, type, mother_id, birth_date, created_at, updated_at
		FROM animals
		WHERE tag_number = $1
	`, tagNumber)

	a, err := scanAnimal(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}
	return a, nil
}

// List trae cada animal con solo su último peso (lateral + limit 1),
// empates de recorded_at resueltos por id.
func (r *AnimalsRepo) List(ctx context.Context, tagFilter string) ([]animals.AnimalWithWeights, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			a.id, a.tag_number, a.type, a.mother_id, a.birth_date, a.created_at, a.updated_at,
			w.id, w.weight, w.recorded_at, w.notes
		FROM animals a
		LEFT JOIN LATERAL (
			SELECT id, weight, recorded_at, notes
			FROM weight_records
			WHERE animal_id = a.id
			ORDER BY recorded_at DESC, id DESC
			LIMIT 1
		) w ON true
	`)

	args := []any{}
	if tagFilter != "" {
		sb.WriteString(" WHERE a.tag_number LIKE '%' || $1 || '%'")
		args = append(args, tagFilter)
	}
	sb.WriteString(" ORDER BY a.created_at DESC, a.id DESC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.AnimalWithWeights, 0)
	for rows.Next() {
		var a animals.Animal
		var motherID, wID sql.NullInt64
		var bd, recordedAt sql.NullTime
		var weight sql.NullFloat64
		var notes sql.NullString

		if err := rows.Scan(
			&a.ID,
			&a.TagNumber,
			&a.Type,
			&motherID,
			&bd,
			&a.CreatedAt,
			&a.UpdatedAt,
			&wID,
			&weight,
			&recordedAt,
			&notes,
		); err != nil {
			return nil, err
		}

		if motherID.Valid {
			v := motherID.Int64
			a.MotherID = &v
		}
		if bd.Valid {
			t := bd.Time
			a.BirthDate = &t
		}

		item := animals.AnimalWithWeights{Animal: a, Weights: []animals.WeightEntry{}}
		if wID.Valid {
			item.Weights = append(item.Weights, animals.WeightEntry{
				ID:         wID.Int64,
				AnimalID:   a.ID,
				Weight:     weight.Float64,
				RecordedAt: recordedAt.Time,
				Notes:      notes.String,
			})
		}

		out = append(out, item)
	}

	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(row rowScanner) (animals.Animal, error) {
	var a animals.Animal
	var motherID sql.NullInt64
	var bd sql.NullTime

	if err := row.Scan(
		&a.ID,
		&a.TagNumber,
		&a.Type,
		&motherID,
		&bd,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return animals.Animal{}, err
	}

	if motherID.Valid {
		v := motherID.Int64
		a.MotherID = &v
	}
	if bd.Valid {
		t := bd.Time
		a.BirthDate = &t
	}

	return a, nil
}

func toNullInt(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

// birth_date es DATE; lo pasamos como NullTime para simplificar.
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
