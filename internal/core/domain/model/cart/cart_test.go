package cart_test

import (
	"testing"

	"grameego/internal/core/domain/model/cart"
	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/core/domain/model/shop"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func testShop(t *testing.T, prices ...string) shop.Shop {
	t.Helper()
	s := shop.Shop{ID: kernel.NewUUID(), Name: "Village Stores", Address: "1 High Street"}
	for i, p := range prices {
		s.Products = append(s.Products, shop.Product{
			ID:     kernel.NewUUID(),
			ShopID: s.ID,
			Name:   []string{"Rice", "Lentils", "Tea"}[i%3],
			Price:  mustMoney(t, p),
		})
	}
	return s
}

func TestCartAddRemove(t *testing.T) {
	t.Run("should require a shop before adding", func(t *testing.T) {
		c := cart.NewCart()
		s := testShop(t, "1.50")

		err := c.AddItem(s.Products[0])

		require.ErrorIs(t, err, cart.ErrNoShopSelected)
	})

	t.Run("add increments quantity, remove decrements and drops at zero", func(t *testing.T) {
		c := cart.NewCart()
		s := testShop(t, "1.50")
		require.NoError(t, c.SelectShop(s))

		require.NoError(t, c.AddItem(s.Products[0]))
		require.NoError(t, c.AddItem(s.Products[0]))
		require.Equal(t, 2, c.ItemCount())

		c.RemoveItem(s.Products[0].ID)
		assert.Equal(t, 1, c.ItemCount())

		c.RemoveItem(s.Products[0].ID)
		assert.True(t, c.IsEmpty())
		assert.Len(t, c.Lines(), 0)
	})

	t.Run("removing an absent product is a no-op, never negative", func(t *testing.T) {
		c := cart.NewCart()
		s := testShop(t, "1.50")
		require.NoError(t, c.SelectShop(s))

		c.RemoveItem(s.Products[0].ID)

		assert.True(t, c.IsEmpty())
		assert.Equal(t, 0, c.ItemCount())
	})

	t.Run("equal adds and removes return the cart to empty", func(t *testing.T) {
		c := cart.NewCart()
		s := testShop(t, "2.00", "3.25")
		require.NoError(t, c.SelectShop(s))

		for i := 0; i < 4; i++ {
			require.NoError(t, c.AddItem(s.Products[0]))
			require.NoError(t, c.AddItem(s.Products[1]))
		}
		for i := 0; i < 4; i++ {
			c.RemoveItem(s.Products[0].ID)
			c.RemoveItem(s.Products[1].ID)
		}

		assert.True(t, c.IsEmpty())
		assert.Equal(t, "0.00", c.Total().String())
	})

	t.Run("should reject a product from another shop", func(t *testing.T) {
		c := cart.NewCart()
		s := testShop(t, "1.00")
		other := testShop(t, "9.99")
		require.NoError(t, c.SelectShop(s))

		err := c.AddItem(other.Products[0])

		require.Error(t, err)
		assert.True(t, c.IsEmpty())
	})
}

func TestCartTotal(t *testing.T) {
	t.Run("n adds of a product priced p total exactly n times p", func(t *testing.T) {
		c := cart.NewCart()
		s := testShop(t, "0.10")
		require.NoError(t, c.SelectShop(s))

		for i := 0; i < 7; i++ {
			require.NoError(t, c.AddItem(s.Products[0]))
		}

		assert.Equal(t, "0.70", c.Total().String())
	})

	t.Run("mixed lines sum exactly", func(t *testing.T) {
		c := cart.NewCart()
		s := testShop(t, "10.00", "5.00")
		require.NoError(t, c.SelectShop(s))

		require.NoError(t, c.AddItem(s.Products[0]))
		require.NoError(t, c.AddItem(s.Products[0]))
		require.NoError(t, c.AddItem(s.Products[1]))

		assert.Equal(t, "25.00", c.Total().String())
	})
}

func TestCartShopScoping(t *testing.T) {
	t.Run("switching shops clears the cart", func(t *testing.T) {
		c := cart.NewCart()
		first := testShop(t, "1.00")
		second := testShop(t, "2.00")

		require.NoError(t, c.SelectShop(first))
		require.NoError(t, c.AddItem(first.Products[0]))
		require.False(t, c.IsEmpty())

		require.NoError(t, c.SelectShop(second))

		assert.True(t, c.IsEmpty())
		id, ok := c.ShopID()
		require.True(t, ok)
		assert.True(t, id.IsEqual(second.ID))
	})

	t.Run("re-selecting the same shop keeps the lines", func(t *testing.T) {
		c := cart.NewCart()
		s := testShop(t, "1.00")

		require.NoError(t, c.SelectShop(s))
		require.NoError(t, c.AddItem(s.Products[0]))
		require.NoError(t, c.SelectShop(s))

		assert.Equal(t, 1, c.ItemCount())
	})
}

func TestCartDescription(t *testing.T) {
	t.Run("should join lines in insertion order", func(t *testing.T) {
		c := cart.NewCart()
		s := testShop(t, "1.00", "2.00")
		require.NoError(t, c.SelectShop(s))

		require.NoError(t, c.AddItem(s.Products[0]))
		require.NoError(t, c.AddItem(s.Products[1]))
		require.NoError(t, c.AddItem(s.Products[0]))

		assert.Equal(t, "Rice x2, Lentils x1", c.Description())
	})
}

func TestCartValidate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var c cart.Cart

		require.ErrorIs(t, c.Validate(), cart.ErrCartIsNotConstructed)
	})
}
