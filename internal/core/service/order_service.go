package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/artisio/marketplace-api/internal/api/metrics"
	"github.com/artisio/marketplace-api/internal/core/domain"
	"github.com/artisio/marketplace-api/internal/core/ports"
)

// OrderService records purchases. Payment settlement is the external payment
// provider's business; by the time Place is called the sale is done.
type OrderService struct {
	repo ports.OrderRepository
	log  zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, log zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, log: log}
}

func (s *OrderService) Place(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	now := time.Now().UTC()
	order := &domain.Order{
		Reference:       uuid.NewString(),
		UserID:          input.UserID,
		ArtName:         input.ArtName,
		DeliveryDetails: input.DeliveryDetails,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	s.log.Info().
		Str("order_id", created.ID).
		Str("reference", created.Reference).
		Str("user_id", input.UserID).
		Msg("order created")

	return created, nil
}

func (s *OrderService) ListOwn(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}
