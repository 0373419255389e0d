package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"farm-records/internal/domain/feeds"
)

type FeedsRepo struct {
	db *sql.DB
}

func NewFeedsRepo(db *sql.DB) *FeedsRepo {
	return &FeedsRepo{db: db}
}

func (r *FeedsRepo) Create(ctx context.Context, rec feeds.FeedRecord) (feeds.FeedRecord, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO feed_records (animal_id, feed_type, amount, feed_date)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`,
		rec.AnimalID,
		rec.FeedType,
		rec.Amount,
		rec.FeedDate,
	).Scan(&rec.ID)
	if err != nil {
		return feeds.FeedRecord{}, err
	}
	return rec, nil
}

func (r *FeedsRepo) List(ctx context.Context, filter feeds.ListFilter) ([]feeds.FeedWithAnimal, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			f.id, f.animal_id, f.feed_type, f.amount, f.feed_date,
			a.tag_number, a.type
		FROM feed_records f
		JOIN animals a ON a.id = f.animal_id
	`)

	args := []any{}
	argN := 1

	if filter.TagNumber != "" {
		sb.WriteString(fmt.Sprintf(" WHERE a.tag_number = $%d", argN))
		args = append(args, filter.TagNumber)
		argN++
	} else if filter.AnimalID != nil {
		sb.WriteString(fmt.Sprintf(" WHERE f.animal_id = $%d", argN))
		args = append(args, *filter.AnimalID)
		argN++
	}

	sb.WriteString(" ORDER BY f.feed_date DESC, f.id DESC")

	if filter.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]feeds.FeedWithAnimal, 0)
	for rows.Next() {
		var rec feeds.FeedWithAnimal

		if err := rows.Scan(
			&rec.ID,
			&rec.AnimalID,
			&rec.FeedType,
			&rec.Amount,
			&rec.FeedDate,
			&rec.TagNumber,
			&rec.AnimalType,
		); err != nil {
			return nil, err
		}

		out = append(out, rec)
	}

	return out, rows.Err()
}
