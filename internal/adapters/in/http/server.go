package http

import (
	"net/http"
	"time"

	"grameego/internal/core/application/usecases/commands"
	"grameego/internal/core/application/usecases/queries"
	"grameego/internal/core/domain/model/account"
	"grameego/internal/core/domain/model/delivery"
	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/errs"
	"grameego/internal/pkg/token"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server routes to.
type Handlers struct {
	RegisterAccount  commands.RegisterAccountCommandHandler
	Login            commands.LoginCommandHandler
	CreateDelivery   commands.CreateDeliveryCommandHandler
	AcceptDelivery   commands.AcceptDeliveryCommandHandler
	UnassignDelivery commands.UnassignDeliveryCommandHandler
	UpdateStatus     commands.UpdateDeliveryStatusCommandHandler
	CancelDelivery   commands.CancelDeliveryCommandHandler
	ConfirmDelivery  commands.ConfirmDeliveryCommandHandler

	GetShops        queries.GetShopsQueryHandler
	GetShop         queries.GetShopQueryHandler
	GetMyDeliveries queries.GetMyDeliveriesQueryHandler
	GetAvailable    queries.GetAvailableDeliveriesQueryHandler
	GetAssigned     queries.GetAssignedDeliveriesQueryHandler
	GetDelivery     queries.GetDeliveryQueryHandler
	GetShopOrders   queries.GetShopOrdersQueryHandler
}

// Server exposes the delivery coordination API over HTTP. It translates
// requests into commands and queries, leaving all business rules to the
// application core.
type Server struct {
	handlers Handlers
	tokenCfg token.Config
	validate *validator.Validate
	now      func() time.Time
}

// NewServer creates the HTTP server. The clock is injectable for tests.
func NewServer(handlers Handlers, tokenCfg token.Config) *Server {
	return &Server{
		handlers: handlers,
		tokenCfg: tokenCfg,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/auth/signup", s.Signup)
	api.POST("/auth/login", s.Login)

	authed := api.Group("", authMiddleware(s.tokenCfg))
	authed.GET("/auth/me", s.Me)
	authed.GET("/shops", s.GetShops)
	authed.GET("/shops/:id", s.GetShop)
	authed.GET("/deliveries/:id", s.GetDelivery)

	customer := authed.Group("", requireRole(account.RoleCustomer))
	customer.POST("/deliveries", s.CreateDelivery)
	customer.GET("/deliveries/mine", s.GetMyDeliveries)
	customer.DELETE("/deliveries/:id", s.CancelDelivery)

	driver := authed.Group("", requireRole(account.RoleDriver))
	driver.GET("/deliveries/available", s.GetAvailableDeliveries)
	driver.GET("/deliveries/assigned-to-me", s.GetAssignedDeliveries)
	driver.POST("/deliveries/:id/accept", s.AcceptDelivery)
	driver.POST("/deliveries/:id/unassign", s.UnassignDelivery)
	driver.PATCH("/deliveries/:id/status", s.UpdateDeliveryStatus)

	shop := authed.Group("", requireRole(account.RoleShop))
	shop.GET("/shops/my/orders", s.GetShopOrders)
	shop.PATCH("/shops/my/orders/:id/confirm", s.ConfirmOrder)
}

// Signup handles POST /api/auth/signup.
func (s *Server) Signup(ctx echo.Context) error {
	var req SignupRequest
	if err := s.bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	accountID := kernel.NewUUID()

	var shopID *kernel.UUID
	if req.ShopID != nil {
		parsed, err := kernel.UUIDFromString(*req.ShopID)
		if err != nil {
			return respondError(ctx, err)
		}
		shopID = &parsed
	}

	cmd, err := commands.NewRegisterAccountCommand(
		accountID,
		req.Name, req.Mobile, req.Password,
		account.Role(req.Role),
		req.Village, req.VehicleType,
		shopID,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.RegisterAccount.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: accountID.String()})
}

// Login handles POST /api/auth/login. On success it mints a bearer token
// carrying the account's role so subsequent requests skip the user lookup.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := s.bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewLoginCommand(req.Mobile, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	acc, err := s.handlers.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	var shopID *uuid.UUID
	var shopIDStr *string
	if sid := acc.ShopID(); sid != nil {
		raw := sid.Bytes()
		shopID = &raw
		str := sid.String()
		shopIDStr = &str
	}

	bearer, err := token.Mint(s.tokenCfg, s.now(), acc.ID().Bytes(), string(acc.Role()), shopID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:   bearer,
		ID:      acc.ID().String(),
		Name:    acc.Name(),
		Mobile:  acc.Mobile(),
		Role:    string(acc.Role()),
		Village: acc.Village(),
		ShopID:  shopIDStr,
	})
}

// Me handles GET /api/auth/me.
func (s *Server) Me(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "missing bearer token",
		})
	}

	resp := MeResponse{
		ID:   actor.AccountID.String(),
		Role: string(actor.Role),
	}
	if actor.ShopID != nil {
		str := actor.ShopID.String()
		resp.ShopID = &str
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetShops handles GET /api/shops.
func (s *Server) GetShops(ctx echo.Context) error {
	shops, err := s.handlers.GetShops.Handle(ctx.Request().Context(), queries.NewGetShopsQuery())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, shops)
}

// GetShop handles GET /api/shops/:id.
func (s *Server) GetShop(ctx echo.Context) error {
	shopID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetShopQuery(shopID)
	if err != nil {
		return respondError(ctx, err)
	}

	shop, err := s.handlers.GetShop.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, shop)
}

// CreateDelivery handles POST /api/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	var req CreateDeliveryRequest
	if err := s.bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	shopID, err := kernel.UUIDFromString(req.ShopID)
	if err != nil {
		return respondError(ctx, err)
	}

	lines := make([]commands.OrderLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		productID, lineErr := kernel.UUIDFromString(line.ProductID)
		if lineErr != nil {
			return respondError(ctx, lineErr)
		}
		lines = append(lines, commands.OrderLine{ProductID: productID, Quantity: line.Quantity})
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(
		deliveryID,
		actor.AccountID,
		shopID,
		lines,
		req.ContactNumber,
		req.Village,
		req.EstimatedDistanceKm,
		req.NeedBy,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: deliveryID.String()})
}

// GetMyDeliveries handles GET /api/deliveries/mine.
func (s *Server) GetMyDeliveries(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	query, err := queries.NewGetMyDeliveriesQuery(actor.AccountID)
	if err != nil {
		return respondError(ctx, err)
	}

	deliveries, err := s.handlers.GetMyDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, deliveries)
}

// GetAvailableDeliveries handles GET /api/deliveries/available.
func (s *Server) GetAvailableDeliveries(ctx echo.Context) error {
	deliveries, err := s.handlers.GetAvailable.Handle(
		ctx.Request().Context(), queries.NewGetAvailableDeliveriesQuery())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, deliveries)
}

// GetAssignedDeliveries handles GET /api/deliveries/assigned-to-me.
func (s *Server) GetAssignedDeliveries(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	query, err := queries.NewGetAssignedDeliveriesQuery(actor.AccountID)
	if err != nil {
		return respondError(ctx, err)
	}

	deliveries, err := s.handlers.GetAssigned.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, deliveries)
}

// GetDelivery handles GET /api/deliveries/:id. Customers see only their
// own deliveries; drivers and shops only deliveries they participate in.
func (s *Server) GetDelivery(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDeliveryQuery(deliveryID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.GetDelivery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	if !participant(actor, resp) {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "not a participant of this delivery",
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

// AcceptDelivery handles POST /api/deliveries/:id/accept.
func (s *Server) AcceptDelivery(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptDeliveryCommand(deliveryID, actor.AccountID)
	if err != nil {
		return respondError(ctx, err)
	}

	accepted, err := s.handlers.AcceptDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, assignmentResponse(accepted))
}

// UnassignDelivery handles POST /api/deliveries/:id/unassign.
func (s *Server) UnassignDelivery(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUnassignDeliveryCommand(deliveryID, actor.AccountID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.UnassignDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryStatus handles PATCH /api/deliveries/:id/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateDeliveryStatusRequest
	if err := s.bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	target, err := delivery.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, actor.AccountID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.UpdateStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelDelivery handles DELETE /api/deliveries/:id.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, actor.AccountID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CancelDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetShopOrders handles GET /api/shops/my/orders.
func (s *Server) GetShopOrders(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)
	if actor.ShopID == nil {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "account is not bound to a shop",
		})
	}

	query, err := queries.NewGetShopOrdersQuery(*actor.ShopID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.GetShopOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// ConfirmOrder handles PATCH /api/shops/my/orders/:id/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)
	if actor.ShopID == nil {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "account is not bound to a shop",
		})
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req ConfirmOrderRequest
	if err := s.bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	action, err := delivery.ParseConfirmationAction(req.Action)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewConfirmDeliveryCommand(deliveryID, *actor.ShopID, action, req.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	confirmed, err := s.handlers.ConfirmDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, confirmationResponse(confirmed))
}

func (s *Server) bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return errs.NewValidationErrorWithCause("body", err)
	}
	return s.validate.StructCtx(ctx.Request().Context(), req)
}

// AssignmentResponse is returned after a driver accepts a delivery.
type AssignmentResponse struct {
	ID               string  `json:"id"`
	Status           string  `json:"status"`
	AssignedDriverID *string `json:"assignedDriverId,omitempty"`
}

func assignmentResponse(d *delivery.Delivery) AssignmentResponse {
	resp := AssignmentResponse{
		ID:     d.ID().String(),
		Status: d.Status().String(),
	}
	if driverID := d.AssignedDriver(); driverID != nil {
		str := driverID.String()
		resp.AssignedDriverID = &str
	}
	return resp
}

// ConfirmationResponse is the decision record returned after a shop
// confirms or rejects an order.
type ConfirmationResponse struct {
	ID                 string     `json:"id"`
	Status             string     `json:"status"`
	ConfirmationStatus string     `json:"confirmationStatus"`
	ConfirmationNote   string     `json:"confirmationNote,omitempty"`
	ConfirmedAt        *time.Time `json:"confirmedAt,omitempty"`
	AssignedDriverID   *string    `json:"assignedDriverId,omitempty"`
}

func confirmationResponse(d *delivery.Delivery) ConfirmationResponse {
	conf := d.Confirmation()
	resp := ConfirmationResponse{
		ID:                 d.ID().String(),
		Status:             d.Status().String(),
		ConfirmationStatus: conf.Status.String(),
		ConfirmationNote:   conf.Note,
		ConfirmedAt:        conf.At,
	}
	if driverID := d.AssignedDriver(); driverID != nil {
		str := driverID.String()
		resp.AssignedDriverID = &str
	}
	return resp
}

func participant(actor Actor, d queries.DeliveryResponse) bool {
	switch actor.Role {
	case account.RoleCustomer:
		return actor.AccountID.Bytes() == d.CustomerID
	case account.RoleDriver:
		return d.AssignedDriver != nil && actor.AccountID.Bytes() == d.AssignedDriver.ID
	case account.RoleShop:
		return actor.ShopID != nil && actor.ShopID.Bytes() == d.ShopID
	default:
		return false
	}
}
