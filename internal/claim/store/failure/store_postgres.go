package failure

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"pixclaim/internal/claim/models"
	"pixclaim/internal/claim/store"
	"pixclaim/pkg/platform/tx"
)

const selectColumns = `id, notification_id, pix_key, payload, error_code, error_message, processing_state, request_id, created_at`

// PostgresStore persists failures in the failed_claim_notifications table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a Postgres-backed sink.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Create inserts f. Rewriting an existing ID is a no-op.
func (s *PostgresStore) Create(ctx context.Context, f *models.FailedNotification) error {
	var payload any
	if len(f.Payload) > 0 {
		payload = string(f.Payload)
	}
	_, err := tx.Execer(ctx, s.db).ExecContext(ctx, `
		INSERT INTO failed_claim_notifications (`+selectColumns+`)
		VALUES ($1, $2, $3, $4::jsonb, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`, f.ID, f.NotificationID, f.Key, payload, f.ErrorCode, f.ErrorMessage,
		string(f.ProcessingState), f.RequestID, f.CreatedAt)
	if err != nil {
		return store.Classify(fmt.Errorf("insert failed claim notification: %w", err))
	}
	return nil
}

// List returns up to limit failures newest first, restricted to codes when given.
func (s *PostgresStore) List(ctx context.Context, codes []string, limit int) ([]*models.FailedNotification, error) {
	if codes == nil {
		codes = []string{}
	}
	rows, err := tx.Execer(ctx, s.db).QueryContext(ctx, `
		SELECT `+selectColumns+`
		FROM failed_claim_notifications
		WHERE cardinality($1::text[]) = 0 OR error_code = ANY($1::text[])
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, pq.Array(codes), store.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("list failed claim notifications: %w", err)
	}
	defer rows.Close()

	out := make([]*models.FailedNotification, 0)
	for rows.Next() {
		var (
			f               models.FailedNotification
			payload         sql.NullString
			processingState string
		)
		if err := rows.Scan(&f.ID, &f.NotificationID, &f.Key, &payload, &f.ErrorCode,
			&f.ErrorMessage, &processingState, &f.RequestID, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan failed claim notification: %w", err)
		}
		if payload.Valid {
			f.Payload = []byte(payload.String)
		}
		f.ProcessingState = models.ProcessingState(processingState)
		out = append(out, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate failed claim notifications: %w", err)
	}
	return out, nil
}
