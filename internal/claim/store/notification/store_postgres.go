package notification

import (
	"context"
	"database/sql"
	"fmt"

	"pixclaim/internal/claim/models"
	"pixclaim/internal/claim/store"
	"pixclaim/pkg/platform/tx"
)

const selectColumns = `id, pix_key, claim_type, status, donation, processing_state, request_id, received_at`

// PostgresStore persists notifications in the claim_notifications table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a Postgres-backed store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Create inserts n. A replayed ID leaves the first record untouched and returns it.
func (s *PostgresStore) Create(ctx context.Context, n *models.ClaimNotification) (*models.ClaimNotification, error) {
	var stored *models.ClaimNotification
	err := tx.Run(ctx, s.db, func(ctx context.Context) error {
		exec := tx.Execer(ctx, s.db)
		_, err := exec.ExecContext(ctx, `
			INSERT INTO claim_notifications (`+selectColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING
		`, n.ID, n.Key, string(n.ClaimType), string(n.Status), n.Donation,
			string(n.ProcessingState), n.RequestID, n.ReceivedAt)
		if err != nil {
			return store.Classify(fmt.Errorf("insert claim notification: %w", err))
		}

		row := exec.QueryRowContext(ctx,
			`SELECT `+selectColumns+` FROM claim_notifications WHERE id = $1`, n.ID)
		stored, err = scanNotification(row)
		if err != nil {
			return fmt.Errorf("read claim notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// ListByKey returns up to limit notifications for key, newest first.
func (s *PostgresStore) ListByKey(ctx context.Context, key string, limit int) ([]*models.ClaimNotification, error) {
	rows, err := tx.Execer(ctx, s.db).QueryContext(ctx, `
		SELECT `+selectColumns+`
		FROM claim_notifications
		WHERE pix_key = $1
		ORDER BY received_at DESC, id DESC
		LIMIT $2
	`, key, store.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("list claim notifications: %w", err)
	}
	defer rows.Close()

	var out []*models.ClaimNotification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan claim notification: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate claim notifications: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNotification(row scanner) (*models.ClaimNotification, error) {
	var (
		n                                  models.ClaimNotification
		claimType, status, processingState string
	)
	if err := row.Scan(&n.ID, &n.Key, &claimType, &status, &n.Donation,
		&processingState, &n.RequestID, &n.ReceivedAt); err != nil {
		return nil, err
	}
	n.ClaimType = models.ClaimType(claimType)
	n.Status = models.ClaimStatus(status)
	n.ProcessingState = models.ProcessingState(processingState)
	return &n, nil
}
