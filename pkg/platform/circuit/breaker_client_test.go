package circuit_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixclaim/internal/claim/adapters/pixkey"
	dErrors "pixclaim/pkg/domain-errors"
	"pixclaim/pkg/platform/circuit"
)

// The Pix-key service goes down, the breaker opens and stops traffic, then a
// trial call after the cooldown finds it healthy again and closes the breaker.
func TestBreakerGuardsPixKeyOutage(t *testing.T) {
	var down atomic.Bool
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if down.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"key":"k","state":"READY"}`))
	}))
	defer srv.Close()

	now := time.Unix(1700000000, 0)
	var clock atomic.Int64
	clock.Store(now.UnixNano())
	b := circuit.New("pixkey",
		circuit.WithFailureThreshold(2),
		circuit.WithCooldown(30*time.Second),
		circuit.WithClock(func() time.Time { return time.Unix(0, clock.Load()) }),
	)
	client, err := pixkey.New(srv.URL, pixkey.WithBreaker(b))
	require.NoError(t, err)
	ctx := context.Background()

	down.Store(true)
	for range 2 {
		_, err := client.GetKeyState(ctx, "k")
		require.True(t, dErrors.Is(err, dErrors.CodeUnavailable))
	}
	require.True(t, b.IsOpen())

	down.Store(false)
	_, err = client.GetKeyState(ctx, "k")
	assert.True(t, dErrors.Is(err, dErrors.CodeUnavailable), "open breaker answers before the cooldown")
	assert.EqualValues(t, 2, hits.Load())

	clock.Store(now.Add(30 * time.Second).UnixNano())
	state, err := client.GetKeyState(ctx, "k")
	require.NoError(t, err)
	assert.EqualValues(t, "READY", state)
	assert.False(t, b.IsOpen())
	assert.EqualValues(t, 3, hits.Load())
}
