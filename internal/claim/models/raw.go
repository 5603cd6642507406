package models

import "unicode"

// RawNotification is the decoded wire payload. Pointer fields keep "absent"
// distinguishable from zero values, so donation=false is not mistaken for missing.
type RawNotification struct {
	ID        string  `json:"id,omitempty"`
	Key       *string `json:"key"`
	ClaimType *string `json:"claimType"`
	Status    *string `json:"status"`
	Donation  *bool   `json:"donation"`
	RequestID string  `json:"requestId,omitempty"`
}

// Field names reported by MissingFieldError and InvalidFieldError.
const (
	FieldKey       = "Key"
	FieldClaimType = "ClaimType"
	FieldStatus    = "Status"
	FieldDonation  = "Donation"
	FieldID        = "ID"
	FieldRequestID = "RequestID"
)

// ParseNotification is the validation gate. It checks presence (not truthiness) of
// every required field and reports all absent ones at once, then rejects control
// characters in identifiers and checks enum values.
// It has no side effects.
func ParseNotification(raw RawNotification) (*ClaimNotification, error) {
	var missing []string
	if raw.Key == nil {
		missing = append(missing, FieldKey)
	}
	if raw.ClaimType == nil {
		missing = append(missing, FieldClaimType)
	}
	if raw.Status == nil {
		missing = append(missing, FieldStatus)
	}
	if raw.Donation == nil {
		missing = append(missing, FieldDonation)
	}
	if len(missing) > 0 {
		err := &MissingFieldError{Fields: missing}
		if raw.Key != nil {
			err.Key = *raw.Key
		}
		return nil, err
	}

	received := Trigger{
		Key:       *raw.Key,
		Donation:  *raw.Donation,
		ClaimType: ClaimType(*raw.ClaimType),
		Status:    ClaimStatus(*raw.Status),
	}
	for _, f := range []struct{ name, value string }{
		{FieldKey, *raw.Key},
		{FieldID, raw.ID},
		{FieldRequestID, raw.RequestID},
	} {
		if hasControl(f.value) {
			return nil, &InvalidFieldError{Trigger: received, Field: f.name, Value: f.value}
		}
	}

	claimType := received.ClaimType
	if !claimType.IsValid() {
		return nil, &InvalidFieldError{Trigger: received, Field: FieldClaimType, Value: *raw.ClaimType}
	}
	status := received.Status
	if !status.IsValid() {
		return nil, &InvalidFieldError{Trigger: received, Field: FieldStatus, Value: *raw.Status}
	}

	return &ClaimNotification{
		ID:        raw.ID,
		Key:       *raw.Key,
		ClaimType: claimType,
		Status:    status,
		Donation:  *raw.Donation,
		RequestID: raw.RequestID,
	}, nil
}

// hasControl reports NUL and other control characters, which identifiers never
// carry and Postgres text columns reject.
func hasControl(v string) bool {
	for _, r := range v {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}
