package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"grameego/internal/core/domain/model/delivery"
	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/core/domain/model/shop"
)

func fixtureShop() shop.Shop {
	s := shop.Shop{ID: kernel.NewUUID(), Name: "Village Store", Address: "1 Main Road"}
	s.Products = []shop.Product{
		{ID: kernel.NewUUID(), ShopID: s.ID, Name: "Rice", Price: kernel.NewMoneyFromFloat(10.00)},
		{ID: kernel.NewUUID(), ShopID: s.ID, Name: "Lentils", Price: kernel.NewMoneyFromFloat(5.00)},
	}
	return s
}

func fixtureDelivery(t *testing.T, customerID kernel.UUID) *delivery.Delivery {
	t.Helper()

	s := fixtureShop()
	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		customerID,
		delivery.ShopRef{ID: s.ID, Name: s.Name, Address: s.Address},
		[]delivery.ItemSnapshot{
			{ProductID: s.Products[0].ID, Name: "Rice", Quantity: 2, UnitPrice: kernel.NewMoneyFromFloat(10.00)},
			{ProductID: s.Products[1].ID, Name: "Lentils", Quantity: 1, UnitPrice: kernel.NewMoneyFromFloat(5.00)},
		},
		"Rice x2, Lentils x1",
		"07700900001",
		"Greenfield",
		nil,
		nil,
		kernel.NewMoneyFromFloat(25.00),
		kernel.NewMoneyFromFloat(5.00),
		time.Now(),
	)
	require.NoError(t, err)
	return d
}
