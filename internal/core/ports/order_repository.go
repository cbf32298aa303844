package ports

import (
	"context"

	"github.com/artisio/marketplace-api/internal/core/domain"
)

// OrderRepository defines persistence for placed orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
}
