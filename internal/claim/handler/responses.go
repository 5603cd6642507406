package handler

import (
	"encoding/json"
	"time"

	"pixclaim/internal/claim/models"
	"pixclaim/internal/claim/service"
)

type processResponse struct {
	NotificationID  string `json:"notification_id"`
	Key             string `json:"key"`
	ProcessingState string `json:"processing_state"`
	Reconciled      bool   `json:"reconciled"`
	KeyState        string `json:"key_state,omitempty"`
	Outcome         string `json:"outcome,omitempty"`
	Operation       string `json:"operation,omitempty"`
}

type notificationResponse struct {
	ID              string    `json:"id"`
	Key             string    `json:"key"`
	ClaimType       string    `json:"claim_type"`
	Status          string    `json:"status"`
	Donation        bool      `json:"donation"`
	ProcessingState string    `json:"processing_state"`
	RequestID       string    `json:"request_id,omitempty"`
	ReceivedAt      time.Time `json:"received_at"`
}

type listNotificationsResponse struct {
	Key           string                 `json:"key"`
	Notifications []notificationResponse `json:"notifications"`
}

type failureResponse struct {
	ID              string          `json:"id"`
	NotificationID  string          `json:"notification_id,omitempty"`
	Key             string          `json:"key,omitempty"`
	Payload         json.RawMessage `json:"payload,omitempty"`
	ErrorCode       string          `json:"error_code"`
	ErrorMessage    string          `json:"error_message"`
	ProcessingState string          `json:"processing_state"`
	RequestID       string          `json:"request_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type listFailuresResponse struct {
	Failures []failureResponse `json:"failures"`
}

func toProcessResponse(r *service.Result) processResponse {
	resp := processResponse{
		NotificationID:  r.Notification.ID,
		Key:             r.Notification.Key,
		ProcessingState: string(r.Notification.ProcessingState),
		Reconciled:      r.Reconciled,
	}
	if r.Reconciled {
		resp.KeyState = r.KeyState.String()
		resp.Outcome = r.Outcome.Kind.String()
		resp.Operation = string(r.Outcome.Operation)
	}
	return resp
}

func toNotificationResponse(n *models.ClaimNotification) notificationResponse {
	return notificationResponse{
		ID:              n.ID,
		Key:             n.Key,
		ClaimType:       n.ClaimType.String(),
		Status:          n.Status.String(),
		Donation:        n.Donation,
		ProcessingState: string(n.ProcessingState),
		RequestID:       n.RequestID,
		ReceivedAt:      n.ReceivedAt,
	}
}

func toFailureResponse(f *models.FailedNotification) failureResponse {
	resp := failureResponse{
		ID:              f.ID,
		NotificationID:  f.NotificationID,
		Key:             f.Key,
		ErrorCode:       f.ErrorCode,
		ErrorMessage:    f.ErrorMessage,
		ProcessingState: string(f.ProcessingState),
		RequestID:       f.RequestID,
		CreatedAt:       f.CreatedAt,
	}
	if json.Valid(f.Payload) {
		resp.Payload = f.Payload
	}
	return resp
}
