package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixclaim/internal/claim/models"
)

func TestCellsCoversTable(t *testing.T) {
	cells := Cells()
	require.Len(t, cells, 200)

	first := cells[0]
	assert.Equal(t, models.KeyStatePortabilityStarted, first.State)
	assert.False(t, first.Donation)

	seen := map[Cell]bool{}
	for _, c := range cells {
		assert.False(t, seen[c], "duplicate cell %+v", c)
		seen[c] = true

		want, err := Decide(Input{State: c.State, Donation: c.Donation, ClaimType: c.ClaimType, Status: c.Status})
		require.NoError(t, err)
		assert.Equal(t, want, c.Outcome)
	}
}
