//go:build integration

package failure_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"pixclaim/internal/claim/models"
	"pixclaim/internal/claim/store/failure"
	"pixclaim/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *failure.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = failure.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "failed_claim_notifications")
	s.Require().NoError(err)
}

func newFailure(code string, at time.Time) *models.FailedNotification {
	return &models.FailedNotification{
		ID:              uuid.NewString(),
		NotificationID:  uuid.NewString(),
		Key:             "key-a",
		Payload:         []byte(`{"key":"key-a","status":"OPEN"}`),
		ErrorCode:       code,
		ErrorMessage:    "claim failed",
		ProcessingState: models.ProcessingStateError,
		RequestID:       "req-1",
		CreatedAt:       at.UTC().Truncate(time.Microsecond),
	}
}

func (s *PostgresStoreSuite) TestCreateAndListAll() {
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)
	older := newFailure("not_found", base)
	newer := newFailure("invalid_state", base.Add(time.Minute))
	s.Require().NoError(s.store.Create(ctx, older))
	s.Require().NoError(s.store.Create(ctx, newer))

	list, err := s.store.List(ctx, nil, 0)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(newer.ID, list[0].ID)
	s.Equal(models.ProcessingStateError, list[0].ProcessingState)
	s.JSONEq(string(newer.Payload), string(list[0].Payload))
}

func (s *PostgresStoreSuite) TestListFiltersByCodes() {
	ctx := context.Background()
	now := time.Now()
	s.Require().NoError(s.store.Create(ctx, newFailure("not_found", now)))
	s.Require().NoError(s.store.Create(ctx, newFailure("invalid_state", now)))
	s.Require().NoError(s.store.Create(ctx, newFailure("upstream", now)))

	list, err := s.store.List(ctx, []string{"not_found", "upstream"}, 0)
	s.Require().NoError(err)
	s.Len(list, 2)
	for _, f := range list {
		s.Contains([]string{"not_found", "upstream"}, f.ErrorCode)
	}
}

func (s *PostgresStoreSuite) TestCreateWithoutPayload() {
	ctx := context.Background()
	f := newFailure("upstream", time.Now())
	f.Payload = nil
	s.Require().NoError(s.store.Create(ctx, f))
	s.Require().NoError(s.store.Create(ctx, f))

	list, err := s.store.List(ctx, []string{"upstream"}, 0)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Nil(list[0].Payload)
}
