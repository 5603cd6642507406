package models

import "time"

// ClaimNotification is one PSP event about a claim on a Pix key. It is created on
// ingestion and never updated afterwards.
type ClaimNotification struct {
	ID              string
	Key             string
	ClaimType       ClaimType
	Status          ClaimStatus
	Donation        bool
	ProcessingState ProcessingState
	RequestID       string
	ReceivedAt      time.Time
}

// Trigger returns the decision-table input carried by the notification.
func (n *ClaimNotification) Trigger() Trigger {
	return Trigger{
		Key:       n.Key,
		Donation:  n.Donation,
		ClaimType: n.ClaimType,
		Status:    n.Status,
	}
}

// Trigger is the (key, donation, claimType, status) tuple that selects a cell of
// the decision table. Every reconciliation error carries it.
type Trigger struct {
	Key       string
	Donation  bool
	ClaimType ClaimType
	Status    ClaimStatus
}

// FailedNotification is written to the failure sink when a notification takes the
// error path. ProcessingState is always ProcessingStateError.
type FailedNotification struct {
	ID              string
	NotificationID  string
	Key             string
	Payload         []byte
	ErrorCode       string
	ErrorMessage    string
	ProcessingState ProcessingState
	RequestID       string
	CreatedAt       time.Time
}
