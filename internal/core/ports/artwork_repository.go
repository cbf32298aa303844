package ports

import (
	"context"

	"github.com/artisio/marketplace-api/internal/core/domain"
)

// ListGalleryFilter carries the query parameters for the public gallery.
type ListGalleryFilter struct {
	Category string // optional: one of the artwork categories
	Page     int    // 1-based
	Limit    int    // max rows per page (capped by the service)
}

// ArtworkUpdate carries the mutable listing fields. Nil means "leave as is".
// Every update increments the document's version counter.
type ArtworkUpdate struct {
	Name        *string
	ImageLink   *string
	Price       *float64
	Description *string
	Category    *string
}

// ArtworkRepository defines persistence for listings. Owner-scoped operations
// take a userID and report domain.ErrArtworkNotFound both for missing and
// not-owned documents, so ownership is never leaked.
type ArtworkRepository interface {
	Create(ctx context.Context, a *domain.Artwork) (*domain.Artwork, error)
	FindOwned(ctx context.Context, id, userID string) (*domain.Artwork, error)
	FindByID(ctx context.Context, id string) (*domain.Artwork, error)
	UpdateOwned(ctx context.Context, id, userID string, update ArtworkUpdate) (*domain.Artwork, error)
	DeleteOwned(ctx context.Context, id, userID string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Artwork, error)
	// ListGallery returns a page of public listings and the total count.
	ListGallery(ctx context.Context, filter ListGalleryFilter) ([]*domain.Artwork, int64, error)
	// IncrementViews bumps the listing view counter.
	IncrementViews(ctx context.Context, id string) error
}
