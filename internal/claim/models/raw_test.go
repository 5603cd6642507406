package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "pixclaim/pkg/domain-errors"
)

func decodeRaw(t *testing.T, body string) RawNotification {
	t.Helper()
	var raw RawNotification
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return raw
}

func TestParseNotification(t *testing.T) {
	t.Run("donation false is a present value", func(t *testing.T) {
		raw := decodeRaw(t, `{"id":"n-1","key":"+5511999999999","claimType":"PORTABILITY","status":"OPEN","donation":false,"requestId":"req-9"}`)

		n, err := ParseNotification(raw)
		require.NoError(t, err)
		assert.Equal(t, "n-1", n.ID)
		assert.Equal(t, "+5511999999999", n.Key)
		assert.Equal(t, ClaimTypePortability, n.ClaimType)
		assert.Equal(t, ClaimStatusOpen, n.Status)
		assert.False(t, n.Donation)
		assert.Equal(t, "req-9", n.RequestID)
	})

	t.Run("omitted donation is reported alone", func(t *testing.T) {
		raw := decodeRaw(t, `{"key":"user@example.com","claimType":"OWNERSHIP","status":"OPEN"}`)

		n, err := ParseNotification(raw)
		assert.Nil(t, n)
		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"Donation"}, missing.Fields)
		assert.Equal(t, "user@example.com", missing.Key)
		assert.True(t, dErrors.Is(err, dErrors.CodeValidation))
	})

	t.Run("explicit null counts as missing", func(t *testing.T) {
		raw := decodeRaw(t, `{"key":"k","claimType":"OWNERSHIP","status":"OPEN","donation":null}`)

		_, err := ParseNotification(raw)
		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{FieldDonation}, missing.Fields)
	})

	t.Run("every missing field is reported in one error", func(t *testing.T) {
		_, err := ParseNotification(RawNotification{})

		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{FieldKey, FieldClaimType, FieldStatus, FieldDonation}, missing.Fields)
		assert.Empty(t, missing.Key)
		assert.Equal(t, "missing required fields: Key, ClaimType, Status, Donation", err.Error())
	})

	t.Run("empty key is present", func(t *testing.T) {
		raw := decodeRaw(t, `{"key":"","claimType":"OWNERSHIP","status":"OPEN","donation":true}`)

		n, err := ParseNotification(raw)
		require.NoError(t, err)
		assert.Equal(t, "", n.Key)
		assert.True(t, n.Donation)
	})

	t.Run("unknown claim type", func(t *testing.T) {
		raw := decodeRaw(t, `{"key":"k","claimType":"TRANSFER","status":"OPEN","donation":true}`)

		_, err := ParseNotification(raw)
		var invalid *InvalidFieldError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, FieldClaimType, invalid.Field)
		assert.Equal(t, "TRANSFER", invalid.Value)
		assert.True(t, dErrors.Is(err, dErrors.CodeValidation))
	})

	t.Run("unknown status", func(t *testing.T) {
		raw := decodeRaw(t, `{"key":"k","claimType":"OWNERSHIP","status":"open","donation":true}`)

		_, err := ParseNotification(raw)
		var invalid *InvalidFieldError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, FieldStatus, invalid.Field)
		assert.Equal(t, Trigger{Key: "k", Donation: true, ClaimType: ClaimTypeOwnership, Status: "open"}, invalid.Trigger)
		assert.Contains(t, err.Error(), "donation=true claimType=OWNERSHIP status=open")
	})

	t.Run("control characters in identifiers", func(t *testing.T) {
		tests := []struct {
			name    string
			payload string
			field   string
		}{
			{"nul in key", `{"key":"k\u0000x","claimType":"OWNERSHIP","status":"OPEN","donation":false}`, FieldKey},
			{"newline in key", `{"key":"k\n","claimType":"OWNERSHIP","status":"OPEN","donation":false}`, FieldKey},
			{"nul in id", `{"id":"n\u0000","key":"k","claimType":"OWNERSHIP","status":"OPEN","donation":false}`, FieldID},
			{"nul in request id", `{"requestId":"r\u0000","key":"k","claimType":"OWNERSHIP","status":"OPEN","donation":false}`, FieldRequestID},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := ParseNotification(decodeRaw(t, tt.payload))
				var invalid *InvalidFieldError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, tt.field, invalid.Field)
				assert.False(t, invalid.Donation)
				assert.Equal(t, ClaimTypeOwnership, invalid.ClaimType)
				assert.True(t, dErrors.Is(err, dErrors.CodeValidation))
			})
		}
	})
}

func TestErrorsCarryTrigger(t *testing.T) {
	trigger := Trigger{Key: "k1", Donation: true, ClaimType: ClaimTypeOwnership, Status: ClaimStatusCancelled}

	invalid := &InvalidFlowError{Trigger: trigger, KeyState: KeyStateClaimClosing}
	assert.Contains(t, invalid.Error(), `"k1"`)
	assert.Contains(t, invalid.Error(), "donation=true claimType=OWNERSHIP status=CANCELLED")
	assert.Equal(t, dErrors.CodeInvalidState, invalid.DomainCode())

	unsupported := &UnsupportedStateError{Trigger: trigger, State: KeyStateDeleting}
	assert.Contains(t, unsupported.Error(), "DELETING")
	assert.Equal(t, dErrors.CodeInvariantViolation, unsupported.DomainCode())

	notFound := &KeyNotFoundError{Trigger: trigger}
	assert.Equal(t, dErrors.CodeNotFound, notFound.DomainCode())
	assert.Equal(t, "k1", notFound.Key)
}
