package delivery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"grameego/internal/pkg/errs"
)

func TestStatus(t *testing.T) {
	t.Run("should parse all valid statuses", func(t *testing.T) {
		for _, s := range []string{"Pending", "Picked", "Delivered", "Cancelled"} {
			status, err := ParseStatus(s)
			assert.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("should reject unknown status strings", func(t *testing.T) {
		_, err := ParseStatus("InTransit")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = ParseStatus("")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject the unknown value on validation", func(t *testing.T) {
		assert.Error(t, StatusUnknown.Validate())
		assert.NoError(t, StatusPending.Validate())
	})

	t.Run("should mark only delivered and cancelled as terminal", func(t *testing.T) {
		assert.False(t, StatusPending.IsTerminal())
		assert.False(t, StatusPicked.IsTerminal())
		assert.True(t, StatusDelivered.IsTerminal())
		assert.True(t, StatusCancelled.IsTerminal())
	})
}

func TestConfirmationStatus(t *testing.T) {
	t.Run("should parse valid confirmation statuses", func(t *testing.T) {
		for _, s := range []string{"Pending", "Accepted", "Rejected"} {
			status, err := ParseConfirmationStatus(s)
			assert.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("should mark only accepted and rejected as decided", func(t *testing.T) {
		assert.False(t, ConfirmationPending.IsDecided())
		assert.True(t, ConfirmationAccepted.IsDecided())
		assert.True(t, ConfirmationRejected.IsDecided())
	})

	t.Run("should parse confirmation actions", func(t *testing.T) {
		action, err := ParseConfirmationAction("accept")
		assert.NoError(t, err)
		assert.Equal(t, ConfirmationActionAccept, action)

		action, err = ParseConfirmationAction("reject")
		assert.NoError(t, err)
		assert.Equal(t, ConfirmationActionReject, action)

		_, err = ParseConfirmationAction("maybe")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
