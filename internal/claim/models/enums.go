package models

// ClaimType distinguishes ownership disputes from portability between institutions.
type ClaimType string

const (
	ClaimTypeOwnership   ClaimType = "OWNERSHIP"
	ClaimTypePortability ClaimType = "PORTABILITY"
)

// ClaimTypes lists every supported claim type.
var ClaimTypes = []ClaimType{ClaimTypeOwnership, ClaimTypePortability}

// IsValid checks if the claim type is one of the supported enum values.
func (t ClaimType) IsValid() bool {
	return t == ClaimTypeOwnership || t == ClaimTypePortability
}

func (t ClaimType) String() string { return string(t) }

// ClaimStatus is the PSP-side lifecycle status carried by a notification.
type ClaimStatus string

const (
	ClaimStatusOpen              ClaimStatus = "OPEN"
	ClaimStatusWaitingResolution ClaimStatus = "WAITING_RESOLUTION"
	ClaimStatusConfirmed         ClaimStatus = "CONFIRMED"
	ClaimStatusCancelled         ClaimStatus = "CANCELLED"
	ClaimStatusCompleted         ClaimStatus = "COMPLETED"
)

// ClaimStatuses lists every supported status in lifecycle order.
var ClaimStatuses = []ClaimStatus{
	ClaimStatusOpen,
	ClaimStatusWaitingResolution,
	ClaimStatusConfirmed,
	ClaimStatusCancelled,
	ClaimStatusCompleted,
}

// IsValid checks if the status is one of the supported enum values.
func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimStatusOpen, ClaimStatusWaitingResolution, ClaimStatusConfirmed,
		ClaimStatusCancelled, ClaimStatusCompleted:
		return true
	}
	return false
}

func (s ClaimStatus) String() string { return string(s) }

// ProcessingState records how a notification went through ingestion.
type ProcessingState string

const (
	ProcessingStateReady ProcessingState = "READY"
	ProcessingStateError ProcessingState = "ERROR"
)
