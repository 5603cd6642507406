package failure

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"pixclaim/internal/claim/models"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
}

func newFailure(id, code string) *models.FailedNotification {
	return &models.FailedNotification{
		ID:              id,
		NotificationID:  "n-" + id,
		Key:             "key-a",
		Payload:         []byte(`{"key":"key-a"}`),
		ErrorCode:       code,
		ErrorMessage:    "boom",
		ProcessingState: models.ProcessingStateError,
		CreatedAt:       time.Unix(100, 0),
	}
}

func (s *InMemoryStoreSuite) TestListNewestFirst() {
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(s.T(), s.store.Create(ctx, newFailure(fmt.Sprintf("f-%d", i), "not_found")))
	}

	list, err := s.store.List(ctx, nil, 0)
	require.NoError(s.T(), err)
	require.Len(s.T(), list, 3)
	assert.Equal(s.T(), "f-2", list[0].ID)
	assert.Equal(s.T(), "f-0", list[2].ID)
}

func (s *InMemoryStoreSuite) TestListFiltersByCode() {
	ctx := context.Background()
	require.NoError(s.T(), s.store.Create(ctx, newFailure("f-1", "not_found")))
	require.NoError(s.T(), s.store.Create(ctx, newFailure("f-2", "invalid_state")))
	require.NoError(s.T(), s.store.Create(ctx, newFailure("f-3", "upstream")))

	list, err := s.store.List(ctx, []string{"invalid_state", "upstream"}, 0)
	require.NoError(s.T(), err)
	require.Len(s.T(), list, 2)
	assert.Equal(s.T(), "f-3", list[0].ID)
	assert.Equal(s.T(), "f-2", list[1].ID)
}

func (s *InMemoryStoreSuite) TestListLimit() {
	ctx := context.Background()
	for i := 0; i < 4; i++ {
		require.NoError(s.T(), s.store.Create(ctx, newFailure(fmt.Sprintf("f-%d", i), "not_found")))
	}

	list, err := s.store.List(ctx, nil, 1)
	require.NoError(s.T(), err)
	require.Len(s.T(), list, 1)
	assert.Equal(s.T(), "f-3", list[0].ID)
}

func (s *InMemoryStoreSuite) TestCreateCopiesPayload() {
	ctx := context.Background()
	f := newFailure("f-1", "not_found")
	require.NoError(s.T(), s.store.Create(ctx, f))
	f.Payload[0] = 'X'

	list, err := s.store.List(ctx, nil, 0)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), `{"key":"key-a"}`, string(list[0].Payload))
}

func (s *InMemoryStoreSuite) TestCreateIgnoresDuplicateID() {
	ctx := context.Background()
	require.NoError(s.T(), s.store.Create(ctx, newFailure("f-1", "not_found")))
	require.NoError(s.T(), s.store.Create(ctx, newFailure("f-1", "upstream")))

	list, err := s.store.List(ctx, nil, 0)
	require.NoError(s.T(), err)
	require.Len(s.T(), list, 1)
	assert.Equal(s.T(), "not_found", list[0].ErrorCode)
}

func (s *InMemoryStoreSuite) TestListEmpty() {
	list, err := s.store.List(context.Background(), []string{"not_found"}, 0)
	require.NoError(s.T(), err)
	assert.NotNil(s.T(), list)
	assert.Empty(s.T(), list)
}
