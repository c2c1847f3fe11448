package domain

import (
	"time"

	"github.com/google/uuid"
)

// Click is an append-only record of a billable click. UserID is set for
// authenticated visitors, VisitorID always carries the browser cookie token.
// Records are never updated or deleted; they exist for dedup lookups and
// spend reporting.
type Click struct {
	ID        int64
	AdID      int64
	UserID    *int64
	VisitorID string
	Cost      int64
	CreatedAt time.Time
}

// NewVisitorToken mints an opaque identifier for a browser that has no
// visitor cookie yet. UUIDv4, backed by crypto/rand.
func NewVisitorToken() string {
	return uuid.NewString()
}
