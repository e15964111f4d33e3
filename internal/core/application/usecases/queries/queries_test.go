package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grameego/internal/core/application/usecases/queries"
	"grameego/internal/core/domain/model/kernel"
)

func TestQueryConstructors(t *testing.T) {
	t.Run("should create valid queries", func(t *testing.T) {
		id := kernel.NewUUID()

		myQ, err := queries.NewGetMyDeliveriesQuery(id)
		require.NoError(t, err)
		assert.NoError(t, myQ.Validate())
		assert.True(t, myQ.CustomerID().IsEqual(id))

		assignedQ, err := queries.NewGetAssignedDeliveriesQuery(id)
		require.NoError(t, err)
		assert.NoError(t, assignedQ.Validate())

		shopOrdersQ, err := queries.NewGetShopOrdersQuery(id)
		require.NoError(t, err)
		assert.NoError(t, shopOrdersQ.Validate())

		deliveryQ, err := queries.NewGetDeliveryQuery(id)
		require.NoError(t, err)
		assert.NoError(t, deliveryQ.Validate())

		shopQ, err := queries.NewGetShopQuery(id)
		require.NoError(t, err)
		assert.NoError(t, shopQ.Validate())

		assert.NoError(t, queries.NewGetAvailableDeliveriesQuery().Validate())
		assert.NoError(t, queries.NewGetShopsQuery().Validate())
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		var zero kernel.UUID

		_, err := queries.NewGetMyDeliveriesQuery(zero)
		assert.Error(t, err)

		_, err = queries.NewGetAssignedDeliveriesQuery(zero)
		assert.Error(t, err)

		_, err = queries.NewGetShopOrdersQuery(zero)
		assert.Error(t, err)

		_, err = queries.NewGetDeliveryQuery(zero)
		assert.Error(t, err)

		_, err = queries.NewGetShopQuery(zero)
		assert.Error(t, err)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		assert.ErrorIs(t, queries.GetMyDeliveriesQuery{}.Validate(),
			queries.ErrGetMyDeliveriesQueryIsNotConstructed)
		assert.ErrorIs(t, queries.GetAvailableDeliveriesQuery{}.Validate(),
			queries.ErrGetAvailableDeliveriesQueryIsNotConstructed)
		assert.ErrorIs(t, queries.GetShopsQuery{}.Validate(),
			queries.ErrGetShopsQueryIsNotConstructed)
	})
}
