package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"farm-records/internal/domain/weights"
)

type WeightsRepo struct {
	db *sql.DB
}

func NewWeightsRepo(db *sql.DB) *WeightsRepo {
	return &WeightsRepo{db: db}
}

// Create inserta el registro; recorded_at lo pone la base al insertar.
func (r *WeightsRepo) Create(ctx context.Context, rec weights.WeightRecord) (weights.WeightRecord, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO weight_records (animal_id, weight, recorded_at, notes)
		VALUES ($1,$2,now(),$3)
		RETURNING id, recorded_at
	`,
		rec.AnimalID,
		rec.Weight,
		rec.Notes,
	).Scan(&rec.ID, &rec.RecordedAt)
	if err != nil {
		return weights.WeightRecord{}, err
	}
	return rec, nil
}

func (r *WeightsRepo) List(ctx context.Context, filter weights.ListFilter) ([]weights.WeightWithAnimal, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			w.id, w.animal_id, w.weight, w.recorded_at, w.notes,
			a.tag_number, a.type
		FROM weight_records w
		JOIN animals a ON a.id = w.animal_id
	`)

	args := []any{}
	argN := 1

	if filter.TagNumber != "" {
		sb.WriteString(fmt.Sprintf(" WHERE a.tag_number = $%d", argN))
		args = append(args, filter.TagNumber)
		argN++
	} else if filter.AnimalID != nil {
		sb.WriteString(fmt.Sprintf(" WHERE w.animal_id = $%d", argN))
		args = append(args, *filter.AnimalID)
		argN++
	}

	sb.WriteString(" ORDER BY w.recorded_at DESC, w.id DESC")

	if filter.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]weights.WeightWithAnimal, 0)
	for rows.Next() {
		var rec weights.WeightWithAnimal
		var notes sql.NullString

		if err := rows.Scan(
			&rec.ID,
			&rec.AnimalID,
			&rec.Weight,
			&rec.RecordedAt,
			&notes,
			&rec.TagNumber,
			&rec.AnimalType,
		); err != nil {
			return nil, err
		}

		rec.Notes = notes.String
		out = append(out, rec)
	}

	return out, rows.Err()
}
