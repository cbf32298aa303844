package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/artisio/marketplace-api/internal/api/metrics"
	"github.com/artisio/marketplace-api/internal/core/domain"
	"github.com/artisio/marketplace-api/internal/core/ports"
)

const (
	defaultGalleryLimit = 20
	maxGalleryLimit     = 100
)

// ViewRecorder accepts view events for asynchronous processing.
type ViewRecorder interface {
	Enqueue(event domain.ViewEvent)
}

// ArtworkService implements listing CRUD and the public gallery.
type ArtworkService struct {
	repo  ports.ArtworkRepository
	links *LinkValidator
	views ViewRecorder
	log   zerolog.Logger
}

func NewArtworkService(repo ports.ArtworkRepository, links *LinkValidator, views ViewRecorder, log zerolog.Logger) *ArtworkService {
	return &ArtworkService{repo: repo, links: links, views: views, log: log}
}

func (s *ArtworkService) Create(ctx context.Context, input ports.CreateArtworkInput) (*domain.Artwork, error) {
	category := domain.ArtworkCategory(input.Category)
	if !category.IsValid() {
		return nil, domain.ErrInvalidCategory
	}
	if input.Price < domain.MinPrice || input.Price > domain.MaxPrice {
		return nil, domain.ErrInvalidPrice
	}
	if input.ImageLink != "" && !s.links.Valid(input.ImageLink) {
		return nil, domain.ErrInvalidImageLink
	}

	now := time.Now().UTC()
	artwork := &domain.Artwork{
		UserID:      input.UserID,
		ArtistName:  input.ArtistName,
		Name:        input.Name,
		ImageLink:   input.ImageLink,
		Price:       input.Price,
		Description: input.Description,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, artwork)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create artwork")
		return nil, err
	}

	metrics.ArtworksCreatedTotal.WithLabelValues(string(category)).Inc()
	s.log.Info().Str("artwork_id", created.ID).Str("user_id", input.UserID).Msg("artwork created")
	return created, nil
}

func (s *ArtworkService) Get(ctx context.Context, id, userID string) (*domain.Artwork, error) {
	return s.repo.FindOwned(ctx, id, userID)
}

func (s *ArtworkService) Update(ctx context.Context, input ports.UpdateArtworkInput) (*domain.Artwork, error) {
	update := input.Update
	if update.Category != nil && !domain.ArtworkCategory(*update.Category).IsValid() {
		return nil, domain.ErrInvalidCategory
	}
	if update.Price != nil && (*update.Price < domain.MinPrice || *update.Price > domain.MaxPrice) {
		return nil, domain.ErrInvalidPrice
	}
	if update.ImageLink != nil && *update.ImageLink != "" && !s.links.Valid(*update.ImageLink) {
		return nil, domain.ErrInvalidImageLink
	}

	updated, err := s.repo.UpdateOwned(ctx, input.ArtworkID, input.UserID, update)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("artwork_id", input.ArtworkID).Msg("artwork updated")
	return updated, nil
}

func (s *ArtworkService) Delete(ctx context.Context, id, userID string) error {
	if err := s.repo.DeleteOwned(ctx, id, userID); err != nil {
		return err
	}
	s.log.Info().Str("artwork_id", id).Str("user_id", userID).Msg("artwork deleted")
	return nil
}

func (s *ArtworkService) ListOwn(ctx context.Context, userID string) ([]*domain.Artwork, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *ArtworkService) Browse(ctx context.Context, input ports.ListGalleryInput) (*ports.ListGalleryResult, error) {
	if input.Category != "" && !domain.ArtworkCategory(input.Category).IsValid() {
		return nil, domain.ErrInvalidCategory
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultGalleryLimit
	}
	if limit > maxGalleryLimit {
		limit = maxGalleryLimit
	}

	items, total, err := s.repo.ListGallery(ctx, ports.ListGalleryFilter{
		Category: input.Category,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListGalleryResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// View returns a public listing and registers the sighting. The view event is
// queued and counted asynchronously so the read path never waits on it.
func (s *ArtworkService) View(ctx context.Context, id, viewerKey string) (*domain.Artwork, error) {
	artwork, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.views.Enqueue(domain.ViewEvent{
		Subject:   domain.ViewSubjectArtwork,
		SubjectID: artwork.ID,
		ViewerKey: viewerKey,
		Timestamp: time.Now().UTC(),
	})

	return artwork, nil
}
