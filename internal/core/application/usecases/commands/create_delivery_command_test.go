package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grameego/internal/core/application/usecases/commands"
	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/errs"
)

func TestNewCreateDeliveryCommand(t *testing.T) {
	validLines := []commands.OrderLine{{ProductID: kernel.NewUUID(), Quantity: 2}}

	t.Run("should create a valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateDeliveryCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			validLines, "07700900001", "Greenfield", nil, nil,
		)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Len(t, cmd.Lines(), 1)
	})

	t.Run("should reject empty lines", func(t *testing.T) {
		_, err := commands.NewCreateDeliveryCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, "07700900001", "Greenfield", nil, nil,
		)

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should reject a zero quantity line", func(t *testing.T) {
		_, err := commands.NewCreateDeliveryCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]commands.OrderLine{{ProductID: kernel.NewUUID(), Quantity: 0}},
			"07700900001", "Greenfield", nil, nil,
		)

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should reject missing contact number and village", func(t *testing.T) {
		_, err := commands.NewCreateDeliveryCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			validLines, "", "Greenfield", nil, nil,
		)
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = commands.NewCreateDeliveryCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			validLines, "07700900001", "", nil, nil,
		)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should reject a non positive distance", func(t *testing.T) {
		distance := -1.0
		_, err := commands.NewCreateDeliveryCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			validLines, "07700900001", "Greenfield", &distance, nil,
		)

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var cmd commands.CreateDeliveryCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateDeliveryCommandIsNotConstructed)
	})
}
