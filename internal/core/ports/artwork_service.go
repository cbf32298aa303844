package ports

import (
	"context"

	"github.com/artisio/marketplace-api/internal/core/domain"
)

// CreateArtworkInput carries all data needed to create a listing.
type CreateArtworkInput struct {
	UserID      string
	ArtistName  string
	Name        string
	ImageLink   string
	Price       float64
	Description string
	Category    string
}

// UpdateArtworkInput carries a partial listing update.
type UpdateArtworkInput struct {
	UserID    string
	ArtworkID string
	Update    ArtworkUpdate
}

// ListGalleryInput carries the public browse parameters.
type ListGalleryInput struct {
	Category string
	Page     int
	Limit    int
}

// ListGalleryResult is one page of the public gallery.
type ListGalleryResult struct {
	Items      []*domain.Artwork
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ArtworkService defines use-case operations for listings.
type ArtworkService interface {
	Create(ctx context.Context, input CreateArtworkInput) (*domain.Artwork, error)
	// Get returns an owner's listing by id.
	Get(ctx context.Context, id, userID string) (*domain.Artwork, error)
	Update(ctx context.Context, input UpdateArtworkInput) (*domain.Artwork, error)
	Delete(ctx context.Context, id, userID string) error
	ListOwn(ctx context.Context, userID string) ([]*domain.Artwork, error)
	// Browse returns a page of the public gallery. Views count only on
	// detail fetches, not on list rows.
	Browse(ctx context.Context, input ListGalleryInput) (*ListGalleryResult, error)
	// View returns a public listing and registers a view by viewerKey.
	View(ctx context.Context, id, viewerKey string) (*domain.Artwork, error)
}
