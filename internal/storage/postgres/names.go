package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Robertsonwahn/brandmatebackend/internal/models"
	"github.com/Robertsonwahn/brandmatebackend/internal/storage"
)

const nameColumns = `id, full_name, created_by, created_at, updated_at`

// CreateName inserts a submitted name record.
func (s *Store) CreateName(ctx context.Context, record models.NameRecord) (models.NameRecord, error) {
	const query = `
		INSERT INTO names (id, full_name, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + nameColumns + `;`

	row := s.pool.QueryRow(ctx, query,
		record.ID, record.FullName, record.CreatedBy, record.CreatedAt, record.UpdatedAt)
	return scanName(row)
}

// ListNames returns a page of records ordered newest first, plus the total count.
func (s *Store) ListNames(ctx context.Context, limit, offset int) ([]models.NameRecord, int, error) {
	const query = `
		SELECT ` + nameColumns + `
		FROM names
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;`

	rows, err := s.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []models.NameRecord
	for rows.Next() {
		record, err := scanName(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM names;`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// FindNameByID fetches a single record by primary key.
func (s *Store) FindNameByID(ctx context.Context, id uuid.UUID) (models.NameRecord, error) {
	const query = `SELECT ` + nameColumns + ` FROM names WHERE id = $1;`
	return scanName(s.pool.QueryRow(ctx, query, id))
}

// DeleteName removes a record and returns what was deleted.
func (s *Store) DeleteName(ctx context.Context, id uuid.UUID) (models.NameRecord, error) {
	const query = `DELETE FROM names WHERE id = $1 RETURNING ` + nameColumns + `;`
	return scanName(s.pool.QueryRow(ctx, query, id))
}

func scanName(row pgx.Row) (models.NameRecord, error) {
	var record models.NameRecord
	err := row.Scan(&record.ID, &record.FullName, &record.CreatedBy, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.NameRecord{}, storage.ErrNotFound
		}
		return models.NameRecord{}, err
	}
	return record, nil
}
