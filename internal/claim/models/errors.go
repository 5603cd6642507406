package models

import (
	"fmt"
	"strings"

	dErrors "pixclaim/pkg/domain-errors"
)

// MissingFieldError lists every required field absent from a payload.
type MissingFieldError struct {
	Fields []string
	Key    string
}

func (e *MissingFieldError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldError) DomainCode() dErrors.Code { return dErrors.CodeValidation }

// InvalidFieldError reports a present field whose value is not accepted: an
// unknown enum member or an identifier with control characters. Trigger holds
// the tuple as received.
type InvalidFieldError struct {
	Trigger
	Field string
	Value string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid value %q for field %s (%s)", e.Value, e.Field, e.Trigger)
}

func (e *InvalidFieldError) DomainCode() dErrors.Code { return dErrors.CodeValidation }

// KeyNotFoundError means the Pix-key service does not know the key. It may be
// transient when key provisioning is asynchronous.
type KeyNotFoundError struct {
	Trigger
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("pix key %q not found (%s)", e.Key, e.Trigger)
}

func (e *KeyNotFoundError) DomainCode() dErrors.Code { return dErrors.CodeNotFound }

// InvalidFlowError is a structurally valid notification that contradicts the key's
// current state. Retrying cannot change the outcome.
type InvalidFlowError struct {
	Trigger
	KeyState KeyState
}

func (e *InvalidFlowError) Error() string {
	return fmt.Sprintf("invalid claim flow for key %q in state %s (%s)", e.Key, e.KeyState, e.Trigger)
}

func (e *InvalidFlowError) DomainCode() dErrors.Code { return dErrors.CodeInvalidState }

// UnsupportedStateError is raised for a key state the decision table has no row for.
type UnsupportedStateError struct {
	Trigger
	State KeyState
}

func (e *UnsupportedStateError) Error() string {
	return fmt.Sprintf("unsupported key state %q for key %q (%s)", e.State, e.Key, e.Trigger)
}

func (e *UnsupportedStateError) DomainCode() dErrors.Code { return dErrors.CodeInvariantViolation }

func (t Trigger) String() string {
	return fmt.Sprintf("donation=%t claimType=%s status=%s", t.Donation, t.ClaimType, t.Status)
}
