package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pixclaim/internal/claim/metrics"
	"pixclaim/internal/claim/models"
	"pixclaim/internal/claim/ports"
	"pixclaim/internal/claim/reconcile"
	dErrors "pixclaim/pkg/domain-errors"
	"pixclaim/pkg/platform/sentinel"
	"pixclaim/pkg/requestcontext"
)

// Type aliases for interfaces from ports package.
type (
	PixKeyService     = ports.PixKeyService
	NotificationStore = ports.NotificationStore
	FailureStore      = ports.FailureStore
	KeyLocker         = ports.KeyLocker
)

const tracerName = "pixclaim/internal/claim/service"

// Result describes what processing a notification did.
type Result struct {
	Notification *models.ClaimNotification
	// KeyState and Outcome are zero when reconciliation is disabled.
	KeyState   models.KeyState
	Outcome    reconcile.Outcome
	Reconciled bool
}

// Service runs the claim pipeline: validation gate, audit step, then
// reconciliation against the Pix-key service.
type Service struct {
	notifications NotificationStore
	pixKeys       PixKeyService
	failures      FailureStore
	locker        KeyLocker
	logger        *slog.Logger
	metrics       *metrics.Metrics
	tracer        trace.Tracer
	reconcileOn   bool
	newID         func() string
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithFailureStore enables the error path: failed notifications are recorded with
// ProcessingState ERROR.
func WithFailureStore(store FailureStore) Option {
	return func(s *Service) {
		s.failures = store
	}
}

// WithKeyLocker serializes fetch-decide-execute per key.
func WithKeyLocker(locker KeyLocker) Option {
	return func(s *Service) {
		s.locker = locker
	}
}

// WithReconciliation toggles the decision table. When disabled, notifications are
// validated and audited only.
func WithReconciliation(enabled bool) Option {
	return func(s *Service) {
		s.reconcileOn = enabled
	}
}

// WithIDGenerator overrides how ids are assigned to notifications without one.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

func New(notifications NotificationStore, pixKeys PixKeyService, opts ...Option) (*Service, error) {
	if notifications == nil {
		return nil, errors.New("notification store is required")
	}
	if pixKeys == nil {
		return nil, errors.New("pix-key service is required")
	}

	svc := &Service{
		notifications: notifications,
		pixKeys:       pixKeys,
		reconcileOn:   true,
		newID:         uuid.NewString,
		tracer:        otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.New(slog.DiscardHandler)
	}
	return svc, nil
}

// Process validates, audits and reconciles one notification. Errors from the
// Pix-key service are returned unmodified; everything else is a typed claim error
// or a coded dErrors.Error.
func (s *Service) Process(ctx context.Context, raw models.RawNotification) (*Result, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveProcessLatency(time.Since(start)) }()
	s.metrics.IncrementReceived(requestcontext.Transport(ctx))

	if raw.RequestID == "" {
		raw.RequestID = requestcontext.RequestID(ctx)
	} else {
		ctx = requestcontext.WithRequestID(ctx, raw.RequestID)
	}

	ctx, span := s.tracer.Start(ctx, "claim.Process")
	defer span.End()

	notification, err := models.ParseNotification(raw)
	if err != nil {
		s.fail(ctx, span, err)
		s.logger.WarnContext(ctx, "claim notification rejected",
			"request_id", raw.RequestID,
			"notification_id", raw.ID,
			"error", err,
		)
		return nil, err
	}

	result, err := s.process(ctx, span, notification)
	if err != nil {
		s.fail(ctx, span, err)
		s.recordFailure(ctx, raw, notification, err)
		return result, err
	}
	return result, nil
}

func (s *Service) process(ctx context.Context, span trace.Span, n *models.ClaimNotification) (*Result, error) {
	if n.ID == "" {
		n.ID = s.newID()
	}
	n.ProcessingState = models.ProcessingStateReady
	n.ReceivedAt = requestcontext.Now(ctx)

	span.SetAttributes(
		attribute.String("claim.notification_id", n.ID),
		attribute.String("claim.type", n.ClaimType.String()),
		attribute.String("claim.status", n.Status.String()),
		attribute.Bool("claim.donation", n.Donation),
	)

	stored, err := s.notifications.Create(ctx, n)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeValidation) {
			return nil, err
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist claim notification")
	}
	// Create keeps the first record for an id; a replay must match it or it was
	// never audited.
	if stored.Trigger() != n.Trigger() {
		s.logger.WarnContext(ctx, "claim notification id reused with different content",
			"request_id", n.RequestID,
			"notification_id", n.ID,
			"key", n.Key,
			"stored_status", stored.Status,
			"status", n.Status,
		)
		return nil, dErrors.Wrap(sentinel.ErrConflict, dErrors.CodeConflict,
			fmt.Sprintf("notification %s was already recorded with different content", n.ID))
	}
	result := &Result{Notification: stored}

	if !s.reconcileOn {
		s.logger.InfoContext(ctx, "claim notification recorded, reconciliation disabled",
			"request_id", n.RequestID,
			"notification_id", stored.ID,
			"key", n.Key,
		)
		return result, nil
	}

	if s.locker != nil {
		release, err := s.locker.Acquire(ctx, n.Key)
		if err != nil {
			return result, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to acquire pix key lock")
		}
		defer release()
	}

	state, err := s.pixKeys.GetKeyState(ctx, n.Key)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return result, &models.KeyNotFoundError{Trigger: n.Trigger()}
		}
		return result, err
	}
	result.KeyState = state
	span.SetAttributes(attribute.String("pixkey.state", state.String()))

	outcome, err := reconcile.Decide(reconcile.Input{
		Key:       n.Key,
		State:     state,
		Donation:  n.Donation,
		ClaimType: n.ClaimType,
		Status:    n.Status,
	})
	if err != nil {
		return result, err
	}
	result.Outcome = outcome
	result.Reconciled = true

	if err := s.execute(ctx, n, state, outcome); err != nil {
		return result, err
	}
	return result, nil
}

func (s *Service) fail(ctx context.Context, span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	code := dErrors.CodeOf(err)
	if code == "" {
		code = "upstream"
	}
	s.metrics.IncrementFailure(string(code))
}

// recordFailure writes the error-path record. A sink failure is logged and never
// replaces the processing error.
func (s *Service) recordFailure(ctx context.Context, raw models.RawNotification, n *models.ClaimNotification, cause error) {
	if s.failures == nil {
		return
	}
	payload, err := json.Marshal(raw)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to encode failed claim notification", "error", err)
		return
	}
	code := dErrors.CodeOf(cause)
	if code == "" {
		code = "upstream"
	}
	failure := &models.FailedNotification{
		ID:              s.newID(),
		NotificationID:  n.ID,
		Key:             n.Key,
		Payload:         payload,
		ErrorCode:       string(code),
		ErrorMessage:    cause.Error(),
		ProcessingState: models.ProcessingStateError,
		RequestID:       n.RequestID,
		CreatedAt:       requestcontext.Now(ctx),
	}
	if err := s.failures.Create(ctx, failure); err != nil {
		s.logger.ErrorContext(ctx, "failed to record failed claim notification",
			"request_id", n.RequestID,
			"notification_id", n.ID,
			"error", err,
		)
	}
}

// ListNotifications returns the audit trail for a key, newest first.
func (s *Service) ListNotifications(ctx context.Context, key string, limit int) ([]*models.ClaimNotification, error) {
	records, err := s.notifications.ListByKey(ctx, key, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list claim notifications")
	}
	return records, nil
}

// ListFailures returns failure records, optionally filtered by error code.
func (s *Service) ListFailures(ctx context.Context, errorCodes []string, limit int) ([]*models.FailedNotification, error) {
	if s.failures == nil {
		return []*models.FailedNotification{}, nil
	}
	records, err := s.failures.List(ctx, errorCodes, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list failed claim notifications")
	}
	return records, nil
}
