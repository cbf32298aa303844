package ports

import (
	"context"

	"github.com/artisio/marketplace-api/internal/core/domain"
)

// ViewService processes view events dequeued by the dispatcher.
type ViewService interface {
	Process(ctx context.Context, event domain.ViewEvent) error
}
