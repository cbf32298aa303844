package ports

import (
	"context"

	"github.com/artisio/marketplace-api/internal/core/domain"
)

// PlaceOrderInput carries everything needed to record a purchase. Payment
// settlement happens with an external provider before this call.
type PlaceOrderInput struct {
	UserID          string
	ArtName         string
	DeliveryDetails domain.DeliveryDetails
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	Place(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
	ListOwn(ctx context.Context, userID string) ([]*domain.Order, error)
}
