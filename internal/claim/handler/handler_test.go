package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"pixclaim/internal/claim/handler/mocks"
	"pixclaim/internal/claim/models"
	"pixclaim/internal/claim/reconcile"
	"pixclaim/internal/claim/service"
	dErrors "pixclaim/pkg/domain-errors"
	"pixclaim/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockService
	router  chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)
	s.router = chi.NewRouter()
	New(s.service, nil).Register(s.router)
}

func (s *HandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func (s *HandlerSuite) TestReceiveExecutes() {
	expected := models.RawNotification{
		Key:       strPtr("+5561999990000"),
		ClaimType: strPtr("OWNERSHIP"),
		Status:    strPtr("OPEN"),
		Donation:  boolPtr(false),
	}
	s.service.EXPECT().Process(gomock.Any(), expected).Return(&service.Result{
		Notification: &models.ClaimNotification{
			ID:              "n-1",
			Key:             "+5561999990000",
			ProcessingState: models.ProcessingStateReady,
		},
		KeyState:   models.KeyState("OWNERSHIP_STARTED"),
		Outcome:    reconcile.Execute(reconcile.OpWaitOwnershipClaim),
		Reconciled: true,
	}, nil)

	req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/pix-keys/claims/notifications",
		`{"key":"+5561999990000","claimType":"OWNERSHIP","status":"OPEN","donation":false}`)
	rr := testutil.DoRequest(s.router, req)

	s.Equal(http.StatusOK, rr.Code)
	resp := testutil.UnmarshalResponse[processResponse](s.T(), rr)
	s.Equal("n-1", resp.NotificationID)
	s.Equal("READY", resp.ProcessingState)
	s.True(resp.Reconciled)
	s.Equal("OWNERSHIP_STARTED", resp.KeyState)
	s.Equal("execute", resp.Outcome)
	s.Equal("waitOwnershipClaim", resp.Operation)
}

func (s *HandlerSuite) TestReceiveAuditOnly() {
	s.service.EXPECT().Process(gomock.Any(), gomock.Any()).Return(&service.Result{
		Notification: &models.ClaimNotification{ID: "n-1", Key: "k", ProcessingState: models.ProcessingStateReady},
	}, nil)

	req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/pix-keys/claims/notifications",
		`{"key":"k","claimType":"OWNERSHIP","status":"OPEN","donation":true}`)
	rr := testutil.DoRequest(s.router, req)

	s.Equal(http.StatusOK, rr.Code)
	resp := testutil.UnmarshalResponse[map[string]any](s.T(), rr)
	s.Equal(false, (*resp)["reconciled"])
	s.NotContains(*resp, "outcome")
}

func (s *HandlerSuite) TestReceiveErrors() {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"missing fields", &models.MissingFieldError{Fields: []string{"Status"}}, http.StatusBadRequest, "validation_error"},
		{"key not found", &models.KeyNotFoundError{}, http.StatusNotFound, "not_found"},
		{"invalid flow", &models.InvalidFlowError{KeyState: models.KeyState("READY")}, http.StatusConflict, "invalid_state"},
		{"unsupported state", &models.UnsupportedStateError{State: "DELETING"}, http.StatusUnprocessableEntity, "invariant_violation"},
		{"capability failure", dErrors.New(dErrors.CodeUnavailable, "pix key service returned 503"), http.StatusServiceUnavailable, "unavailable"},
		{"uncoded failure", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.service.EXPECT().Process(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/pix-keys/claims/notifications", `{"key":"k"}`)
			rr := testutil.DoRequest(s.router, req)

			testutil.AssertStatusAndError(s.T(), rr, tt.status, tt.code)
		})
	}
}

func (s *HandlerSuite) TestReceiveMalformedBody() {
	req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/pix-keys/claims/notifications", `{"key":`)
	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
}

func (s *HandlerSuite) TestListNotifications() {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.service.EXPECT().ListNotifications(gomock.Any(), "key-a", 5).Return([]*models.ClaimNotification{
		{
			ID:              "n-2",
			Key:             "key-a",
			ClaimType:       models.ClaimTypePortability,
			Status:          models.ClaimStatusCompleted,
			Donation:        true,
			ProcessingState: models.ProcessingStateReady,
			ReceivedAt:      at,
		},
	}, nil)

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/pix-keys/key-a/claims/notifications?limit=5"))

	s.Equal(http.StatusOK, rr.Code)
	resp := testutil.UnmarshalResponse[listNotificationsResponse](s.T(), rr)
	s.Equal("key-a", resp.Key)
	s.Require().Len(resp.Notifications, 1)
	s.Equal("PORTABILITY", resp.Notifications[0].ClaimType)
	s.Equal("COMPLETED", resp.Notifications[0].Status)
	s.True(resp.Notifications[0].ReceivedAt.Equal(at))
}

func (s *HandlerSuite) TestListNotificationsEmpty() {
	s.service.EXPECT().ListNotifications(gomock.Any(), "key-a", 0).Return(nil, nil)

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/pix-keys/key-a/claims/notifications"))

	s.Equal(http.StatusOK, rr.Code)
	s.JSONEq(`{"key":"key-a","notifications":[]}`, rr.Body.String())
}

func (s *HandlerSuite) TestListNotificationsBadLimit() {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/pix-keys/key-a/claims/notifications?limit=abc"))

	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
}

func (s *HandlerSuite) TestListFailuresFiltersCodes() {
	s.service.EXPECT().
		ListFailures(gomock.Any(), []string{"not_found", "invalid_state"}, 0).
		Return([]*models.FailedNotification{
			{
				ID:              "f-1",
				NotificationID:  "n-1",
				Payload:         []byte(`{"key":"k"}`),
				ErrorCode:       "not_found",
				ErrorMessage:    "pix key not found",
				ProcessingState: models.ProcessingStateError,
			},
		}, nil)

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet,
		"/pix-keys/claims/failures?code=not_found,invalid_state&code=not_found"))

	s.Equal(http.StatusOK, rr.Code)
	resp := testutil.UnmarshalResponse[listFailuresResponse](s.T(), rr)
	s.Require().Len(resp.Failures, 1)
	s.Equal("ERROR", resp.Failures[0].ProcessingState)
	s.JSONEq(`{"key":"k"}`, string(resp.Failures[0].Payload))
}

func (s *HandlerSuite) TestListFailuresStoreError() {
	s.service.EXPECT().ListFailures(gomock.Any(), gomock.Nil(), 0).
		Return(nil, dErrors.New(dErrors.CodeInternal, "failed to list failed claim notifications"))

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/pix-keys/claims/failures"))

	testutil.AssertStatusAndError(s.T(), rr, http.StatusInternalServerError, "internal_error")
}

func TestToFailureResponseDropsInvalidPayload(t *testing.T) {
	resp := toFailureResponse(&models.FailedNotification{ID: "f-1", Payload: []byte("not json")})
	require.Equal(t, "f-1", resp.ID)
	assert.Nil(t, resp.Payload)
}

var _ Service = (*service.Service)(nil)
