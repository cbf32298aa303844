package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/artisio/marketplace-api/internal/core/domain"
)

// A viewer counts once per subject per window.
const dedupWindow = time.Hour

// ViewDeduper provides view-count idempotency backed by Redis.
// Key format: view:<subject>:<subject_id>:<viewer_key>
type ViewDeduper struct {
	client *redis.Client
}

// NewViewDeduper creates a ViewDeduper wrapping the given Redis client.
func NewViewDeduper(client *redis.Client) *ViewDeduper {
	return &ViewDeduper{client: client}
}

// IsDuplicate reports whether this viewer already counted against this
// subject inside the dedup window.
func (d *ViewDeduper) IsDuplicate(ctx context.Context, event domain.ViewEvent) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(event)).Result()
	if err != nil {
		return false, fmt.Errorf("view dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this view has been counted (expires after dedupWindow).
func (d *ViewDeduper) Mark(ctx context.Context, event domain.ViewEvent) error {
	return d.client.Set(ctx, d.key(event), "1", dedupWindow).Err()
}

func (d *ViewDeduper) key(event domain.ViewEvent) string {
	return fmt.Sprintf("view:%s:%s:%s", event.Subject, event.SubjectID, event.ViewerKey)
}
