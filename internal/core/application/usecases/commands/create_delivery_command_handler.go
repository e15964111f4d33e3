package commands

import (
	"context"
	"time"

	"grameego/internal/core/domain/model/cart"
	"grameego/internal/core/domain/model/delivery"
	"grameego/internal/core/domain/services"
)

// CreateDeliveryCommandHandler handles checkout. It rebuilds the order as a
// cart against the shop's current catalogue, prices it, and persists the
// resulting delivery in Pending(unassigned) status with a Pending
// confirmation.
//
// Prices are snapshotted from the catalogue at this moment; later catalogue
// changes never affect an existing delivery.
type CreateDeliveryCommandHandler struct {
	uowFactory CheckoutUoWFactory
	pricer     services.DeliveryPricer
	now        func() time.Time
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
func NewCreateDeliveryCommandHandler(uowFactory CheckoutUoWFactory, pricer services.DeliveryPricer) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
		now:        time.Now,
	}
}

// Handle processes the checkout command. Unknown products and quantity
// problems are reported as validation errors before anything is written.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shopAggregate, err := uow.ShopRepository().Get(ctx, cmd.ShopID())
	if err != nil {
		return err
	}

	c := cart.NewCart()
	if err = c.SelectShop(shopAggregate); err != nil {
		return err
	}
	for _, line := range cmd.Lines() {
		product, findErr := shopAggregate.FindProduct(line.ProductID)
		if findErr != nil {
			return findErr
		}
		for range line.Quantity {
			if err = c.AddItem(product); err != nil {
				return err
			}
		}
	}

	productTotal, deliveryFee, _, err := h.pricer.PriceCart(c, cmd.EstimatedDistanceKm())
	if err != nil {
		return err
	}

	items := make([]delivery.ItemSnapshot, 0, c.ItemCount())
	for _, line := range c.Lines() {
		items = append(items, delivery.ItemSnapshot{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
		})
	}

	aggregate, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		cmd.CustomerID(),
		delivery.ShopRef{ID: shopAggregate.ID, Name: shopAggregate.Name, Address: shopAggregate.Address},
		items,
		c.Description(),
		cmd.ContactNumber(),
		cmd.Village(),
		cmd.EstimatedDistanceKm(),
		cmd.NeedBy(),
		productTotal,
		deliveryFee,
		h.now(),
	)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
