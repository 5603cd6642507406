// Package handler exposes claim notification ingestion and audit queries over HTTP.
package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pixclaim/internal/claim/models"
	"pixclaim/internal/claim/service"
	dErrors "pixclaim/pkg/domain-errors"
	"pixclaim/pkg/platform/httputil"
	"pixclaim/pkg/platform/strings"
	"pixclaim/pkg/requestcontext"
)

// Service is the claim pipeline as seen by the HTTP layer.
type Service interface {
	Process(ctx context.Context, raw models.RawNotification) (*service.Result, error)
	ListNotifications(ctx context.Context, key string, limit int) ([]*models.ClaimNotification, error)
	ListFailures(ctx context.Context, errorCodes []string, limit int) ([]*models.FailedNotification, error)
}

// Handler serves the claim endpoints.
type Handler struct {
	claims Service
	logger *slog.Logger
}

// New creates a claim Handler.
func New(claims Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{claims: claims, logger: logger}
}

// Register registers the claim routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/pix-keys/claims/notifications", h.handleReceive)
	r.Get("/pix-keys/claims/failures", h.handleListFailures)
	r.Get("/pix-keys/{key}/claims/notifications", h.handleListNotifications)
}

func (h *Handler) handleReceive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	raw, err := httputil.DecodeJSON[models.RawNotification](r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid claim notification body",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	result, err := h.claims.Process(ctx, *raw)
	if err != nil {
		h.writeProcessError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toProcessResponse(result))
}

func (h *Handler) writeProcessError(ctx context.Context, w http.ResponseWriter, err error) {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeValidation, dErrors.CodeInvalidState, dErrors.CodeNotFound:
		// Logged by the service.
	default:
		h.logger.ErrorContext(ctx, "failed to process claim notification",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}

func (h *Handler) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := chi.URLParam(r, "key")

	limit, err := parseLimit(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	records, err := h.claims.ListNotifications(ctx, key, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list claim notifications",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	out := make([]notificationResponse, 0, len(records))
	for _, n := range records {
		out = append(out, toNotificationResponse(n))
	}
	httputil.WriteJSON(w, http.StatusOK, listNotificationsResponse{Key: key, Notifications: out})
}

func (h *Handler) handleListFailures(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := parseLimit(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	codes := strings.SplitDedupe(r.URL.Query()["code"], false)

	records, err := h.claims.ListFailures(ctx, codes, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list failed claim notifications",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	out := make([]failureResponse, 0, len(records))
	for _, f := range records {
		out = append(out, toFailureResponse(f))
	}
	httputil.WriteJSON(w, http.StatusOK, listFailuresResponse{Failures: out})
}

func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, dErrors.New(dErrors.CodeBadRequest, "limit must be a non-negative integer")
	}
	return limit, nil
}
