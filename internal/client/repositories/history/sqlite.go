package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/spycats/internal/client/models"
	"github.com/dmitrijs2005/spycats/internal/dbx"
)

type SQLiteRepository struct {
	db    *sql.DB
	limit int
}

// NewSQLiteRepository returns a journal over db keeping at most limit rows.
// limit <= 0 disables pruning.
func NewSQLiteRepository(db *sql.DB, limit int) *SQLiteRepository {
	return &SQLiteRepository{db: db, limit: limit}
}

func (r *SQLiteRepository) Add(ctx context.Context, rec *models.CallRecord) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO api_calls (request_id, method, path, status, duration_ms, error, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			rec.RequestID, rec.Method, rec.Path, rec.Status,
			rec.Duration.Milliseconds(), rec.Error,
			rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("failed to insert api call %s: %w", rec.RequestID, err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read api call id: %w", err)
		}

		if r.limit > 0 {
			if err := prune(ctx, tx, r.limit); err != nil {
				return err
			}
		}

		rec.ID = id
		return nil
	})
}

func prune(ctx context.Context, tx dbx.DBTX, keep int) error {
	_, err := tx.ExecContext(ctx, `
		DELETE FROM api_calls
		WHERE id NOT IN (SELECT id FROM api_calls ORDER BY id DESC LIMIT ?)`, keep)
	if err != nil {
		return fmt.Errorf("failed to prune api calls: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Recent(ctx context.Context, n int) ([]models.CallRecord, error) {
	if n <= 0 {
		return []models.CallRecord{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, request_id, method, path, status, duration_ms, error, created_at
		FROM api_calls
		ORDER BY id DESC
		LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to list api calls: %w", err)
	}
	defer rows.Close()

	out := make([]models.CallRecord, 0, n)
	for rows.Next() {
		var (
			rec       models.CallRecord
			durMs     int64
			createdAt string
		)
		if err := rows.Scan(&rec.ID, &rec.RequestID, &rec.Method, &rec.Path, &rec.Status,
			&durMs, &rec.Error, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan api call row: %w", err)
		}
		rec.Duration = time.Duration(durMs) * time.Millisecond
		rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse api call time %q: %w", createdAt, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate api call rows: %w", err)
	}
	return out, nil
}
