package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/artisio/marketplace-api/internal/core/domain"
	"github.com/artisio/marketplace-api/internal/core/ports"
)

const testCloud = "artisio"

func testLink(name string) string {
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/v1700000001/%s.jpg", testCloud, name)
}

type stubArtworkRepo struct {
	artworks map[string]*domain.Artwork
	nextID   int
}

func newStubArtworkRepo() *stubArtworkRepo {
	return &stubArtworkRepo{artworks: make(map[string]*domain.Artwork)}
}

func (r *stubArtworkRepo) Create(_ context.Context, a *domain.Artwork) (*domain.Artwork, error) {
	r.nextID++
	clone := *a
	clone.ID = fmt.Sprintf("art_%d", r.nextID)
	r.artworks[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubArtworkRepo) FindOwned(_ context.Context, id, userID string) (*domain.Artwork, error) {
	a, ok := r.artworks[id]
	if !ok || a.UserID != userID {
		return nil, domain.ErrArtworkNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubArtworkRepo) FindByID(_ context.Context, id string) (*domain.Artwork, error) {
	a, ok := r.artworks[id]
	if !ok {
		return nil, domain.ErrArtworkNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubArtworkRepo) UpdateOwned(_ context.Context, id, userID string, update ports.ArtworkUpdate) (*domain.Artwork, error) {
	a, ok := r.artworks[id]
	if !ok || a.UserID != userID {
		return nil, domain.ErrArtworkNotFound
	}
	if update.Name != nil {
		a.Name = *update.Name
	}
	if update.Price != nil {
		a.Price = *update.Price
	}
	if update.Description != nil {
		a.Description = *update.Description
	}
	if update.ImageLink != nil {
		a.ImageLink = *update.ImageLink
	}
	if update.Category != nil {
		a.Category = domain.ArtworkCategory(*update.Category)
	}
	a.Version++
	clone := *a
	return &clone, nil
}

func (r *stubArtworkRepo) DeleteOwned(_ context.Context, id, userID string) error {
	a, ok := r.artworks[id]
	if !ok || a.UserID != userID {
		return domain.ErrArtworkNotFound
	}
	delete(r.artworks, id)
	return nil
}

func (r *stubArtworkRepo) ListByUser(_ context.Context, userID string) ([]*domain.Artwork, error) {
	var out []*domain.Artwork
	for _, a := range r.artworks {
		if a.UserID == userID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubArtworkRepo) ListGallery(_ context.Context, filter ports.ListGalleryFilter) ([]*domain.Artwork, int64, error) {
	var out []*domain.Artwork
	for _, a := range r.artworks {
		if filter.Category != "" && string(a.Category) != filter.Category {
			continue
		}
		clone := *a
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *stubArtworkRepo) IncrementViews(_ context.Context, id string) error {
	a, ok := r.artworks[id]
	if !ok {
		return domain.ErrArtworkNotFound
	}
	a.Views++
	return nil
}

type recordedViews struct {
	events []domain.ViewEvent
}

func (r *recordedViews) Enqueue(event domain.ViewEvent) {
	r.events = append(r.events, event)
}

func newArtworkService(repo ports.ArtworkRepository, views ViewRecorder) *ArtworkService {
	return NewArtworkService(repo, NewLinkValidator(testCloud), views, zerolog.Nop())
}

func validCreateInput() ports.CreateArtworkInput {
	return ports.CreateArtworkInput{
		UserID:      "user_1",
		ArtistName:  "Ann Lee",
		Name:        "Sunset",
		ImageLink:   testLink("sunset"),
		Price:       120,
		Description: "Oil on canvas",
		Category:    "paintings",
	}
}

func TestArtworkService_Create_Success(t *testing.T) {
	svc := newArtworkService(newStubArtworkRepo(), &recordedViews{})

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" || created.Category != domain.CategoryPaintings {
		t.Fatalf("unexpected artwork: %+v", created)
	}
}

func TestArtworkService_Create_Invalid(t *testing.T) {
	svc := newArtworkService(newStubArtworkRepo(), &recordedViews{})

	bad := validCreateInput()
	bad.Category = "macrame"
	if _, err := svc.Create(context.Background(), bad); err != domain.ErrInvalidCategory {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}

	bad = validCreateInput()
	bad.Price = 0.5
	if _, err := svc.Create(context.Background(), bad); err != domain.ErrInvalidPrice {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}

	bad = validCreateInput()
	bad.ImageLink = "https://evil.example.com/image.jpg"
	if _, err := svc.Create(context.Background(), bad); err != domain.ErrInvalidImageLink {
		t.Fatalf("expected ErrInvalidImageLink, got %v", err)
	}
}

func TestArtworkService_Update_OwnershipScoped(t *testing.T) {
	repo := newStubArtworkRepo()
	svc := newArtworkService(repo, &recordedViews{})

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "Dawn"
	if _, err := svc.Update(context.Background(), ports.UpdateArtworkInput{
		UserID:    "someone_else",
		ArtworkID: created.ID,
		Update:    ports.ArtworkUpdate{Name: &name},
	}); err != domain.ErrArtworkNotFound {
		t.Fatalf("expected not-found for foreign listing, got %v", err)
	}

	updated, err := svc.Update(context.Background(), ports.UpdateArtworkInput{
		UserID:    "user_1",
		ArtworkID: created.ID,
		Update:    ports.ArtworkUpdate{Name: &name},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Dawn" || updated.Version != 1 {
		t.Fatalf("unexpected update result: %+v", updated)
	}
}

func TestArtworkService_Browse_CapsLimit(t *testing.T) {
	svc := newArtworkService(newStubArtworkRepo(), &recordedViews{})

	result, err := svc.Browse(context.Background(), ports.ListGalleryInput{Page: 0, Limit: 5000})
	if err != nil {
		t.Fatalf("Browse returned error: %v", err)
	}
	if result.Page != 1 || result.Limit != maxGalleryLimit {
		t.Fatalf("expected page=1 limit=%d, got %+v", maxGalleryLimit, result)
	}
}

func TestArtworkService_Browse_UnknownCategory(t *testing.T) {
	svc := newArtworkService(newStubArtworkRepo(), &recordedViews{})

	if _, err := svc.Browse(context.Background(), ports.ListGalleryInput{Category: "macrame"}); err != domain.ErrInvalidCategory {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestArtworkService_View_EnqueuesEvent(t *testing.T) {
	repo := newStubArtworkRepo()
	views := &recordedViews{}
	svc := newArtworkService(repo, views)

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	artwork, err := svc.View(context.Background(), created.ID, "viewer_9")
	if err != nil {
		t.Fatalf("View returned error: %v", err)
	}
	if artwork.ID != created.ID {
		t.Fatalf("unexpected artwork: %+v", artwork)
	}

	if len(views.events) != 1 {
		t.Fatalf("expected 1 view event, got %d", len(views.events))
	}
	e := views.events[0]
	if e.Subject != domain.ViewSubjectArtwork || e.SubjectID != created.ID || e.ViewerKey != "viewer_9" {
		t.Fatalf("unexpected view event: %+v", e)
	}
}
