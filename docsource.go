package docscope

import (
	"context"
	"time"
)

// DocSource represents a documentation source known to the retrieval layer.
// A source may be unassigned; only sources with an ecosystem assignment
// participate in detection output.
type DocSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`

	// EcosystemID is nil for unassigned sources.
	EcosystemID *string `json:"ecosystemId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the doc source contains invalid fields.
func (s *DocSource) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "doc source name required")
	}
	return nil
}

// DocSourceService represents a service for managing documentation sources.
type DocSourceService interface {
	// CreateDocSource creates a new doc source. An empty ID is assigned
	// automatically.
	CreateDocSource(ctx context.Context, src *DocSource) error

	// FindDocSourceByID retrieves a doc source by ID.
	// Returns ENOTFOUND if the source does not exist.
	FindDocSourceByID(ctx context.Context, id string) (*DocSource, error)

	// FindDocSources retrieves doc sources matching the filter.
	FindDocSources(ctx context.Context, filter DocSourceFilter) ([]*DocSource, error)

	// DeleteDocSource permanently removes a doc source.
	// Returns ENOTFOUND if the source does not exist.
	DeleteDocSource(ctx context.Context, id string) error
}

// DocSourceFilter represents a filter for FindDocSources.
type DocSourceFilter struct {
	ID          *string `json:"id"`
	EcosystemID *string `json:"ecosystemId"`

	// Assigned filters on whether a source has an ecosystem assignment.
	Assigned *bool `json:"assigned"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
