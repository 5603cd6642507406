package service

import (
	"context"
	"time"

	"pixclaim/internal/claim/models"
	"pixclaim/internal/claim/reconcile"
	dErrors "pixclaim/pkg/domain-errors"
)

var dispatch = map[reconcile.Operation]func(PixKeyService, context.Context, string) error{
	reconcile.OpConfirmPortabilityClaim:  PixKeyService.ConfirmPortabilityClaim,
	reconcile.OpCancelPortabilityClaim:   PixKeyService.CancelPortabilityClaim,
	reconcile.OpCompletePortabilityClaim: PixKeyService.CompletePortabilityClaim,
	reconcile.OpReadyPortabilityClaim:    PixKeyService.ReadyPortabilityClaim,
	reconcile.OpWaitOwnershipClaim:       PixKeyService.WaitOwnershipClaim,
	reconcile.OpConfirmOwnershipClaim:    PixKeyService.ConfirmOwnershipClaim,
	reconcile.OpCancelOwnershipClaim:     PixKeyService.CancelOwnershipClaim,
	reconcile.OpCompleteOwnershipClaim:   PixKeyService.CompleteOwnershipClaim,
	reconcile.OpReadyOwnershipClaim:      PixKeyService.ReadyOwnershipClaim,
	reconcile.OpCompleteClaimClosing:     PixKeyService.CompleteClaimClosing,
}

// execute performs the side effect of an outcome: nothing for NoOp, an
// InvalidFlowError for InvalidFlow, exactly one capability call for Execute.
func (s *Service) execute(ctx context.Context, n *models.ClaimNotification, state models.KeyState, outcome reconcile.Outcome) error {
	s.metrics.IncrementOutcome(outcome.Kind.String(), string(outcome.Operation))

	switch outcome.Kind {
	case reconcile.KindNoOp:
		s.logger.DebugContext(ctx, "claim notification needs no transition",
			"request_id", n.RequestID,
			"notification_id", n.ID,
			"key", n.Key,
			"key_state", state,
			"status", n.Status,
		)
		return nil

	case reconcile.KindInvalidFlow:
		s.logger.WarnContext(ctx, "invalid claim flow",
			"request_id", n.RequestID,
			"notification_id", n.ID,
			"key", n.Key,
			"key_state", state,
			"donation", n.Donation,
			"claim_type", n.ClaimType,
			"status", n.Status,
		)
		return &models.InvalidFlowError{Trigger: n.Trigger(), KeyState: state}

	case reconcile.KindExecute:
		call, ok := dispatch[outcome.Operation]
		if !ok {
			return dErrors.New(dErrors.CodeInvariantViolation, "no capability bound to operation "+string(outcome.Operation))
		}
		start := time.Now()
		err := call(s.pixKeys, ctx, n.Key)
		s.metrics.ObserveCapabilityLatency(string(outcome.Operation), time.Since(start))
		if err != nil {
			s.logger.ErrorContext(ctx, "pix key transition failed",
				"request_id", n.RequestID,
				"notification_id", n.ID,
				"key", n.Key,
				"key_state", state,
				"operation", outcome.Operation,
				"error", err,
			)
			return err
		}
		s.logger.InfoContext(ctx, "pix key transition requested",
			"request_id", n.RequestID,
			"notification_id", n.ID,
			"key", n.Key,
			"key_state", state,
			"operation", outcome.Operation,
		)
		return nil
	}

	return dErrors.New(dErrors.CodeInvariantViolation, "unknown reconciliation outcome "+outcome.String())
}
