package cmd

import (
	"log/slog"

	httpin "grameego/internal/adapters/in/http"
	"grameego/internal/adapters/out/postgres"
	"grameego/internal/core/application/usecases/commands"
	"grameego/internal/core/application/usecases/queries"
	"grameego/internal/core/domain/services"
	"grameego/internal/jobs"
	"grameego/internal/pkg/security"
	"grameego/internal/pkg/token"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hasher     *security.Hasher
	tokenCfg   token.Config
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     security.NewHasher(),
		tokenCfg: token.Config{
			Secret:            configs.JWTSecret,
			Issuer:            configs.JWTIssuer,
			ExpirationMinutes: configs.JWTExpirationMinutes,
		},
	}
}

func (c *CompositionRoot) TokenConfig() token.Config {
	return c.tokenCfg
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	handlers := httpin.Handlers{
		RegisterAccount:  c.CreateRegisterAccountCommandHandler(),
		Login:            c.CreateLoginCommandHandler(),
		CreateDelivery:   c.CreateCreateDeliveryCommandHandler(),
		AcceptDelivery:   c.CreateAcceptDeliveryCommandHandler(),
		UnassignDelivery: c.CreateUnassignDeliveryCommandHandler(),
		UpdateStatus:     c.CreateUpdateDeliveryStatusCommandHandler(),
		CancelDelivery:   c.CreateCancelDeliveryCommandHandler(),
		ConfirmDelivery:  c.CreateConfirmDeliveryCommandHandler(),
		GetShops:         queries.NewGetShopsQueryHandler(c.gormDB),
		GetShop:          queries.NewGetShopQueryHandler(c.gormDB),
		GetMyDeliveries:  queries.NewGetMyDeliveriesQueryHandler(c.gormDB),
		GetAvailable:     queries.NewGetAvailableDeliveriesQueryHandler(c.gormDB),
		GetAssigned:      queries.NewGetAssignedDeliveriesQueryHandler(c.gormDB),
		GetDelivery:      queries.NewGetDeliveryQueryHandler(c.gormDB),
		GetShopOrders:    queries.NewGetShopOrdersQueryHandler(c.gormDB),
	}

	return httpin.NewServer(handlers, c.tokenCfg)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpireOverdueDeliveriesCommandHandler(), logger)
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	return commands.NewRegisterAccountCommandHandler(c.accountUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.accountUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.checkoutUoWFactory(), services.NewPricer())
}

func (c *CompositionRoot) CreateAcceptDeliveryCommandHandler() commands.AcceptDeliveryCommandHandler {
	return commands.NewAcceptDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateUnassignDeliveryCommandHandler() commands.UnassignDeliveryCommandHandler {
	return commands.NewUnassignDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	return commands.NewCancelDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateExpireOverdueDeliveriesCommandHandler() commands.ExpireOverdueDeliveriesCommandHandler {
	return commands.NewExpireOverdueDeliveriesCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}
