package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grameego/internal/core/application/usecases/commands"
	"grameego/internal/core/domain/model/delivery"
	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/core/ports"
	"grameego/internal/pkg/errs"
)

func fixtureDeliveryNeedingBy(t *testing.T, needBy time.Time) *delivery.Delivery {
	t.Helper()

	s := fixtureShop()
	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		kernel.NewUUID(),
		delivery.ShopRef{ID: s.ID, Name: s.Name, Address: s.Address},
		[]delivery.ItemSnapshot{
			{ProductID: s.Products[0].ID, Name: "Rice", Quantity: 1, UnitPrice: kernel.NewMoneyFromFloat(10.00)},
		},
		"Rice x1",
		"07700900001",
		"Greenfield",
		nil,
		&needBy,
		kernel.NewMoneyFromFloat(10.00),
		kernel.NewMoneyFromFloat(4.00),
		time.Now(),
	)
	require.NoError(t, err)
	return d
}

// conflictingDeliveryStore fails Update with a version conflict for chosen
// deliveries, standing in for rows another transaction changed between the
// sweep's listing and its write.
type conflictingDeliveryStore struct {
	*inMemoryDeliveryStore
	conflicts map[string]bool
}

func (s *conflictingDeliveryStore) Update(ctx context.Context, d *delivery.Delivery) error {
	if s.conflicts[d.ID().String()] {
		return errs.NewVersionIsInvalidError("delivery " + d.ID().String())
	}
	return s.inMemoryDeliveryStore.Update(ctx, d)
}

type conflictingDeliveryUoW struct {
	store *conflictingDeliveryStore
}

func (u *conflictingDeliveryUoW) Begin(context.Context) error    { return nil }
func (u *conflictingDeliveryUoW) Commit(context.Context) error   { return nil }
func (u *conflictingDeliveryUoW) Rollback(context.Context) error { return nil }

func (u *conflictingDeliveryUoW) DeliveryRepository() ports.DeliveryRepository { return u.store }

type conflictingDeliveryUoWFactory struct {
	store *conflictingDeliveryStore
}

func (f *conflictingDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return &conflictingDeliveryUoW{store: f.store}
}

func TestExpireOverdueDeliveriesCommandHandler_Handle(t *testing.T) {
	t.Run("should cancel only overdue unassigned deliveries", func(t *testing.T) {
		ctx := t.Context()
		now := time.Now()

		store := newInMemoryDeliveryStore()
		overdue := fixtureDeliveryNeedingBy(t, now.Add(-time.Hour))
		upcoming := fixtureDeliveryNeedingBy(t, now.Add(time.Hour))
		openEnded := fixtureDelivery(t, kernel.NewUUID())
		require.NoError(t, store.Add(ctx, overdue))
		require.NoError(t, store.Add(ctx, upcoming))
		require.NoError(t, store.Add(ctx, openEnded))

		handler := commands.NewExpireOverdueDeliveriesCommandHandler(&inMemoryDeliveryUoWFactory{store: store})
		cmd, err := commands.NewExpireOverdueDeliveriesCommand(now)
		require.NoError(t, err)

		expired, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)

		assert.Equal(t, 1, expired)
		assert.Equal(t, delivery.StatusCancelled, overdue.Status())
		assert.Equal(t, delivery.StatusPending, upcoming.Status())
		assert.Equal(t, delivery.StatusPending, openEnded.Status())
	})

	t.Run("should skip an overdue delivery a driver already took", func(t *testing.T) {
		ctx := t.Context()
		now := time.Now()

		store := newInMemoryDeliveryStore()
		taken := fixtureDeliveryNeedingBy(t, now.Add(-time.Hour))
		require.NoError(t, store.Add(ctx, taken))
		_, err := store.Assign(ctx, taken.ID(), kernel.NewUUID())
		require.NoError(t, err)

		handler := commands.NewExpireOverdueDeliveriesCommandHandler(&inMemoryDeliveryUoWFactory{store: store})
		cmd, err := commands.NewExpireOverdueDeliveriesCommand(now)
		require.NoError(t, err)

		expired, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)

		assert.Equal(t, 0, expired)
		assert.Equal(t, delivery.StatusPending, taken.Status())
		assert.True(t, taken.IsAssigned())
	})

	t.Run("should skip a delivery whose row changed after the listing", func(t *testing.T) {
		ctx := t.Context()
		now := time.Now()

		base := newInMemoryDeliveryStore()
		grabbed := fixtureDeliveryNeedingBy(t, now.Add(-time.Hour))
		overdue := fixtureDeliveryNeedingBy(t, now.Add(-time.Hour))
		require.NoError(t, base.Add(ctx, grabbed))
		require.NoError(t, base.Add(ctx, overdue))

		store := &conflictingDeliveryStore{
			inMemoryDeliveryStore: base,
			conflicts:             map[string]bool{grabbed.ID().String(): true},
		}

		handler := commands.NewExpireOverdueDeliveriesCommandHandler(&conflictingDeliveryUoWFactory{store: store})
		cmd, err := commands.NewExpireOverdueDeliveriesCommand(now)
		require.NoError(t, err)

		expired, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)

		assert.Equal(t, 1, expired)
		assert.Equal(t, delivery.StatusCancelled, overdue.Status())
	})

	t.Run("should reject a zero cutoff", func(t *testing.T) {
		_, err := commands.NewExpireOverdueDeliveriesCommand(time.Time{})
		assert.Error(t, err)
	})
}
