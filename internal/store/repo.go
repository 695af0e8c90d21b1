package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
	RoadmapID string    // exact match when set
}

// ExportEventData describes a completed export.
type ExportEventData struct {
	CategoryID string
	RoadmapID  string
	Format     string
	Path       string
}

// ExportEventRecord is a stored export event.
type ExportEventRecord struct {
	ID         string
	Sequence   int64
	CategoryID string
	RoadmapID  string
	Format     string
	Path       string
	Timestamp  time.Time
}

// ExportRepo is the append-only log of exported documents.
type ExportRepo interface {
	// Append records a completed export and returns the stored record.
	Append(ctx context.Context, data ExportEventData) (ExportEventRecord, error)

	// List returns export events, newest first.
	List(ctx context.Context, opts QueryOpts) ([]ExportEventRecord, error)

	// Prune deletes all but the keep most recent events.
	Prune(ctx context.Context, keep int) (int64, error)
}
