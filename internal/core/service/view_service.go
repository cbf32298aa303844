package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/artisio/marketplace-api/internal/api/metrics"
	"github.com/artisio/marketplace-api/internal/core/domain"
)

// ViewDeduper abstracts the dedup store (Redis). A viewer counts once per
// subject per dedup window.
type ViewDeduper interface {
	IsDuplicate(ctx context.Context, event domain.ViewEvent) (bool, error)
	Mark(ctx context.Context, event domain.ViewEvent) error
}

// ViewCounter is the slice of a repository that bumps a view counter.
type ViewCounter interface {
	IncrementViews(ctx context.Context, id string) error
}

type viewService struct {
	artworks ViewCounter
	profiles ViewCounter
	dedup    ViewDeduper
	log      zerolog.Logger
}

// NewViewService returns the ViewService implementation used by the
// dispatcher workers.
func NewViewService(artworks, profiles ViewCounter, dedup ViewDeduper, log zerolog.Logger) *viewService {
	return &viewService{artworks: artworks, profiles: profiles, dedup: dedup, log: log}
}

// Process deduplicates and persists a single view event.
func (s *viewService) Process(ctx context.Context, event domain.ViewEvent) error {
	// Dedup failure degrades to processing: over-counting the odd view beats
	// dropping it.
	isDup, err := s.dedup.IsDuplicate(ctx, event)
	if err != nil {
		s.log.Warn().Err(err).Str("subject_id", event.SubjectID).Msg("view dedup check failed, counting anyway")
	} else if isDup {
		metrics.ViewsDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("subject_id", event.SubjectID).Str("viewer", event.ViewerKey).Msg("duplicate view skipped")
		return nil
	}
	metrics.ViewsDedupTotal.WithLabelValues("miss").Inc()

	if markErr := s.dedup.Mark(ctx, event); markErr != nil {
		s.log.Warn().Err(markErr).Str("subject_id", event.SubjectID).Msg("failed to set view dedup key")
	}

	counter := s.artworks
	if event.Subject == domain.ViewSubjectProfile {
		counter = s.profiles
	}
	if err := counter.IncrementViews(ctx, event.SubjectID); err != nil {
		metrics.ViewsErrorsTotal.Inc()
		return fmt.Errorf("process view: %w", err)
	}

	metrics.ViewsProcessedTotal.WithLabelValues(string(event.Subject)).Inc()
	return nil
}
