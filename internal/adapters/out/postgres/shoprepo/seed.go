package shoprepo

import (
	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/core/domain/model/shop"
)

// DefaultCatalog returns the starter shops seeded on first boot. IDs are
// fixed so repeated boots recognize existing rows and leave them alone.
func DefaultCatalog() []shop.Shop {
	marketID := mustUUID("5b52ff07-15c2-4714-a497-5f2777941323")
	pharmacyID := mustUUID("9a1dc4ed-68fd-4040-86d4-b3b4a3b0c2b1")

	return []shop.Shop{
		{
			ID:      marketID,
			Name:    "Village Mart",
			Address: "12 Main Road",
			Products: []shop.Product{
				{ID: mustUUID("e0e1b7a0-0000-4000-8000-000000000001"), ShopID: marketID, Name: "Rice 1kg", Price: kernel.NewMoneyFromFloat(10.00)},
				{ID: mustUUID("e0e1b7a0-0000-4000-8000-000000000002"), ShopID: marketID, Name: "Lentils 500g", Price: kernel.NewMoneyFromFloat(5.00)},
				{ID: mustUUID("e0e1b7a0-0000-4000-8000-000000000003"), ShopID: marketID, Name: "Cooking Oil 1l", Price: kernel.NewMoneyFromFloat(8.50)},
			},
		},
		{
			ID:      pharmacyID,
			Name:    "Green Cross Pharmacy",
			Address: "3 Market Square",
			Products: []shop.Product{
				{ID: mustUUID("e0e1b7a0-0000-4000-8000-000000000011"), ShopID: pharmacyID, Name: "Paracetamol 500mg", Price: kernel.NewMoneyFromFloat(2.50)},
				{ID: mustUUID("e0e1b7a0-0000-4000-8000-000000000012"), ShopID: pharmacyID, Name: "Oral Rehydration Salts", Price: kernel.NewMoneyFromFloat(1.75)},
			},
		},
	}
}

func mustUUID(s string) kernel.UUID {
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		panic(err)
	}
	return id
}
