package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/artisio/marketplace-api/internal/core/domain"
	"github.com/artisio/marketplace-api/internal/core/ports"
)

// ProfileService exposes the auxiliary account features: bio, avatar and
// the profile view counter.
type ProfileService struct {
	repo  ports.UserRepository
	links *LinkValidator
	views ViewRecorder
	log   zerolog.Logger
}

func NewProfileService(repo ports.UserRepository, links *LinkValidator, views ViewRecorder, log zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, links: links, views: views, log: log}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// Update mutates bio and avatar. The avatar link must point to the
// configured asset host, same rule as artwork images.
func (s *ProfileService) Update(ctx context.Context, userID string, update ports.ProfileUpdate) (*domain.User, error) {
	if update.AvatarURL != nil && *update.AvatarURL != "" && !s.links.Valid(*update.AvatarURL) {
		return nil, domain.ErrInvalidImageLink
	}

	user, err := s.repo.UpdateProfile(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Msg("profile updated")
	return user, nil
}

// View returns a public artist profile and registers the sighting for the
// asynchronous counter.
func (s *ProfileService) View(ctx context.Context, userID, viewerKey string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.views.Enqueue(domain.ViewEvent{
		Subject:   domain.ViewSubjectProfile,
		SubjectID: user.ID,
		ViewerKey: viewerKey,
		Timestamp: time.Now().UTC(),
	})

	return user, nil
}
