// Package consumer adapts claim notifications arriving on Kafka to the claim
// service.
package consumer

import (
	"context"
	"encoding/json"
	"log/slog"

	"pixclaim/internal/claim/models"
	"pixclaim/internal/claim/service"
	kafkaconsumer "pixclaim/internal/platform/kafka/consumer"
	dErrors "pixclaim/pkg/domain-errors"
	"pixclaim/pkg/requestcontext"
)

const headerRequestID = "x-request-id"

// Processor is the claim pipeline entry point.
type Processor interface {
	Process(ctx context.Context, raw models.RawNotification) (*service.Result, error)
}

// Handler turns records into Process calls.
type Handler struct {
	claims Processor
	logger *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(claims Processor, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{claims: claims, logger: logger}
}

// Handle processes one record. Malformed payloads and failures that a retry
// cannot fix return nil so the record is committed; the service has already
// written them to the failure sink. Transient failures return the error so the
// record is redelivered.
func (h *Handler) Handle(ctx context.Context, msg *kafkaconsumer.Message) error {
	ctx = requestcontext.WithTransport(ctx, requestcontext.TransportKafka)
	if id := msg.Headers[headerRequestID]; id != "" {
		ctx = requestcontext.WithRequestID(ctx, id)
	}

	var raw models.RawNotification
	if err := json.Unmarshal(msg.Value, &raw); err != nil {
		h.logger.ErrorContext(ctx, "dropping malformed claim notification",
			"topic", msg.Topic,
			"partition", msg.Partition,
			"offset", msg.Offset,
			"error", err,
		)
		return nil
	}

	_, err := h.claims.Process(ctx, raw)
	if err == nil {
		return nil
	}
	if !Retryable(err) {
		h.logger.WarnContext(ctx, "claim notification failed permanently",
			"request_id", requestcontext.RequestID(ctx),
			"topic", msg.Topic,
			"partition", msg.Partition,
			"offset", msg.Offset,
			"error", err,
		)
		return nil
	}
	return err
}

// Retryable reports whether redelivering the same notification could succeed.
// Uncoded errors come from the Pix-key service and are treated as transient, as
// are unknown keys, since key provisioning may lag the claim.
func Retryable(err error) bool {
	switch dErrors.CodeOf(err) {
	case "", dErrors.CodeUnavailable, dErrors.CodeTimeout, dErrors.CodeInternal, dErrors.CodeNotFound:
		return true
	default:
		return false
	}
}
