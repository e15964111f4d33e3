package http

import "time"

// SignupRequest registers a new account. ShopID is required for shop
// accounts and ignored for the other roles.
type SignupRequest struct {
	Name        string  `json:"name" validate:"required"`
	Mobile      string  `json:"mobile" validate:"required"`
	Password    string  `json:"password" validate:"required,min=6"`
	Role        string  `json:"role" validate:"required,oneof=customer driver shop"`
	Village     string  `json:"village"`
	VehicleType string  `json:"vehicleType"`
	ShopID      *string `json:"shopId" validate:"omitempty,uuid"`
}

type LoginRequest struct {
	Mobile   string `json:"mobile" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the bearer token and enough profile data for the
// client to render its home screen without a second call.
type LoginResponse struct {
	Token   string  `json:"token"`
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Mobile  string  `json:"mobile"`
	Role    string  `json:"role"`
	Village string  `json:"village,omitempty"`
	ShopID  *string `json:"shopId,omitempty"`
}

// MeResponse echoes the claims of the presented token.
type MeResponse struct {
	ID     string  `json:"id"`
	Role   string  `json:"role"`
	ShopID *string `json:"shopId,omitempty"`
}

// CreateDeliveryRequest is a customer checkout.
type CreateDeliveryRequest struct {
	ShopID              string                      `json:"shopId" validate:"required,uuid"`
	Lines               []CreateDeliveryLineRequest `json:"lines" validate:"required,min=1,dive"`
	ContactNumber       string                      `json:"contactNumber" validate:"required"`
	Village             string                      `json:"village" validate:"required"`
	EstimatedDistanceKm *float64                    `json:"estimatedDistanceKm" validate:"omitempty,gt=0"`
	NeedBy              *time.Time                  `json:"needByAt"`
}

type CreateDeliveryLineRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// UpdateDeliveryStatusRequest moves an assigned delivery forward.
type UpdateDeliveryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Picked Delivered"`
}

// ConfirmOrderRequest records the shop's accept or reject decision.
type ConfirmOrderRequest struct {
	Action string `json:"action" validate:"required,oneof=accept reject"`
	Note   string `json:"note" validate:"max=500"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}
