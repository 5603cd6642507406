// Package ports defines the collaborators the claim service depends on, so the
// decision flow never imports HTTP, SQL or Redis code.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks PixKeyService,NotificationStore,FailureStore,KeyLocker

import (
	"context"

	"pixclaim/internal/claim/models"
)

// PixKeyService is the capability surface of the service that owns the Pix-key
// state machine. Every transition is idempotent on the provider side.
// GetKeyState returns an error wrapping sentinel.ErrNotFound for unknown keys.
type PixKeyService interface {
	GetKeyState(ctx context.Context, key string) (models.KeyState, error)

	ConfirmPortabilityClaim(ctx context.Context, key string) error
	CancelPortabilityClaim(ctx context.Context, key string) error
	CompletePortabilityClaim(ctx context.Context, key string) error
	ReadyPortabilityClaim(ctx context.Context, key string) error

	WaitOwnershipClaim(ctx context.Context, key string) error
	ConfirmOwnershipClaim(ctx context.Context, key string) error
	CancelOwnershipClaim(ctx context.Context, key string) error
	CompleteOwnershipClaim(ctx context.Context, key string) error
	ReadyOwnershipClaim(ctx context.Context, key string) error

	CompleteClaimClosing(ctx context.Context, key string) error
}

// NotificationStore is the append-only audit trail of received notifications.
type NotificationStore interface {
	Create(ctx context.Context, notification *models.ClaimNotification) (*models.ClaimNotification, error)
	ListByKey(ctx context.Context, key string, limit int) ([]*models.ClaimNotification, error)
}

// FailureStore records notifications that took the error path.
type FailureStore interface {
	Create(ctx context.Context, failure *models.FailedNotification) error
	List(ctx context.Context, codes []string, limit int) ([]*models.FailedNotification, error)
}

// KeyLocker serializes processing per Pix key. Acquire blocks until the lock is
// held or the wait expires (sentinel.ErrLockHeld); the returned func releases it.
type KeyLocker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}
