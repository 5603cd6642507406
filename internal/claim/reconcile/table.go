// Package reconcile holds the claim decision table: a pure function from the key's
// current state and a notification's (donation, claimType, status) to an Outcome.
// No I/O happens here; the claim service fetches state and executes the result.
package reconcile

import "pixclaim/internal/claim/models"

// Input selects one cell of the decision table. Key never affects the outcome; it is
// carried into errors only.
type Input struct {
	Key       string
	State     models.KeyState
	Donation  bool
	ClaimType models.ClaimType
	Status    models.ClaimStatus
}

// byStatus gives the outcome for each claim status once a row's guard passed.
type byStatus struct {
	open              Outcome
	waitingResolution Outcome
	confirmed         Outcome
	cancelled         Outcome
	completed         Outcome
}

func (b byStatus) outcome(status models.ClaimStatus) Outcome {
	switch status {
	case models.ClaimStatusOpen:
		return b.open
	case models.ClaimStatusWaitingResolution:
		return b.waitingResolution
	case models.ClaimStatusConfirmed:
		return b.confirmed
	case models.ClaimStatusCancelled:
		return b.cancelled
	case models.ClaimStatusCompleted:
		return b.completed
	}
	return InvalidFlow
}

// row decides every cell for one key state.
type row func(in Input) Outcome

// claimRow is a row for a key that already has a claim in flight: the guard pins
// donation and claim type, then the status picks the outcome.
func claimRow(donation bool, claimType models.ClaimType, outcomes byStatus) row {
	return func(in Input) Outcome {
		if in.Donation != donation || in.ClaimType != claimType {
			return InvalidFlow
		}
		return outcomes.outcome(in.Status)
	}
}

// readyRow is a row for an idle key: only a donation that is not yet cancelled or
// completed moves it, and the claim type picks the transition.
func readyRow(in Input) Outcome {
	if !in.Donation {
		return InvalidFlow
	}
	switch in.Status {
	case models.ClaimStatusOpen, models.ClaimStatusWaitingResolution, models.ClaimStatusConfirmed:
	default:
		return InvalidFlow
	}
	switch in.ClaimType {
	case models.ClaimTypeOwnership:
		return Execute(OpReadyOwnershipClaim)
	case models.ClaimTypePortability:
		return Execute(OpReadyPortabilityClaim)
	}
	return InvalidFlow
}

var rows = map[models.KeyState]row{
	models.KeyStatePortabilityStarted: claimRow(false, models.ClaimTypePortability, byStatus{
		open:              NoOp,
		waitingResolution: InvalidFlow,
		confirmed:         Execute(OpConfirmPortabilityClaim),
		cancelled:         Execute(OpCancelPortabilityClaim),
		completed:         Execute(OpCompletePortabilityClaim),
	}),
	models.KeyStatePortabilityConfirmed: claimRow(false, models.ClaimTypePortability, byStatus{
		open:              NoOp,
		waitingResolution: InvalidFlow,
		confirmed:         NoOp,
		cancelled:         Execute(OpCancelPortabilityClaim),
		completed:         Execute(OpCompletePortabilityClaim),
	}),
	models.KeyStateOwnershipStarted: claimRow(false, models.ClaimTypeOwnership, byStatus{
		open:              NoOp,
		waitingResolution: Execute(OpWaitOwnershipClaim),
		confirmed:         Execute(OpConfirmOwnershipClaim),
		cancelled:         Execute(OpCancelOwnershipClaim),
		completed:         Execute(OpConfirmOwnershipClaim),
	}),
	models.KeyStateOwnershipWaiting: claimRow(false, models.ClaimTypeOwnership, byStatus{
		open:              NoOp,
		waitingResolution: NoOp,
		confirmed:         Execute(OpConfirmOwnershipClaim),
		cancelled:         Execute(OpCancelOwnershipClaim),
		completed:         InvalidFlow,
	}),
	models.KeyStateOwnershipConfirmed: claimRow(false, models.ClaimTypeOwnership, byStatus{
		open:              NoOp,
		waitingResolution: NoOp,
		confirmed:         NoOp,
		cancelled:         Execute(OpCancelOwnershipClaim),
		completed:         Execute(OpCompleteOwnershipClaim),
	}),
	models.KeyStateReady:            readyRow,
	models.KeyStateAddKeyReady:      readyRow,
	models.KeyStatePortabilityReady: readyRow,
	models.KeyStateOwnershipReady:   readyRow,
	models.KeyStateClaimClosing: claimRow(true, models.ClaimTypeOwnership, byStatus{
		open:              NoOp,
		waitingResolution: NoOp,
		confirmed:         NoOp,
		cancelled:         InvalidFlow,
		completed:         Execute(OpCompleteClaimClosing),
	}),
}

// Supports reports whether the table has a row for state.
func Supports(state models.KeyState) bool {
	_, ok := rows[state]
	return ok
}

// Decide returns the outcome for in. A state with no row yields
// *models.UnsupportedStateError rather than a silent NoOp.
func Decide(in Input) (Outcome, error) {
	r, ok := rows[in.State]
	if !ok {
		return Outcome{}, &models.UnsupportedStateError{
			Trigger: models.Trigger{Key: in.Key, Donation: in.Donation, ClaimType: in.ClaimType, Status: in.Status},
			State:   in.State,
		}
	}
	return r(in), nil
}
