package docscope

import (
	"context"
	"time"
)

// FallbackEcosystemID is the canonical catch-all ecosystem. The AI detection
// stage falls back to it when classification fails outright.
const FallbackEcosystemID = "general"

// Ecosystem represents a curated topical bucket used to scope documentation
// retrieval. Ecosystems are created and edited by an administrative process;
// detection only reads them.
type Ecosystem struct {
	ID          string `json:"id"`
	Description string `json:"description"`

	// Aliases are matched case-insensitively as substrings of the query.
	Aliases []string `json:"aliases"`

	// Keywords score +10 each when found in the query.
	Keywords []string `json:"keywords"`

	// KeywordGroups map a group label to keywords that score identically to
	// primary keywords. Groups exist so cross-cutting terms (e.g. vendor
	// names) can be curated separately without losing weight.
	KeywordGroups map[string][]string `json:"keywordGroups"`

	// Priority determines catalog order; higher first.
	Priority int `json:"priority"`

	// IsActive excludes the ecosystem from detection when false.
	IsActive bool `json:"isActive"`

	// DescriptionEmbedding enrolls the ecosystem in semantic matching.
	// All active embeddings share the same dimensionality.
	DescriptionEmbedding []float32 `json:"descriptionEmbedding,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the ecosystem contains invalid fields.
func (e *Ecosystem) Validate() error {
	if e.ID == "" {
		return Errorf(EINVALID, "ecosystem ID required")
	}
	if e.Description == "" {
		return Errorf(EINVALID, "ecosystem description required")
	}
	return nil
}

// EcosystemService represents a service for managing ecosystem definitions.
type EcosystemService interface {
	// CreateEcosystem creates a new ecosystem.
	// Returns ECONFLICT if an ecosystem with the same ID already exists.
	CreateEcosystem(ctx context.Context, eco *Ecosystem) error

	// FindEcosystemByID retrieves an ecosystem by ID.
	// Returns ENOTFOUND if the ecosystem does not exist.
	FindEcosystemByID(ctx context.Context, id string) (*Ecosystem, error)

	// FindEcosystems retrieves ecosystems matching the filter, ordered by
	// descending priority.
	FindEcosystems(ctx context.Context, filter EcosystemFilter) ([]*Ecosystem, error)

	// UpdateEcosystem updates an existing ecosystem.
	// Returns ENOTFOUND if the ecosystem does not exist.
	UpdateEcosystem(ctx context.Context, id string, upd EcosystemUpdate) (*Ecosystem, error)

	// DeleteEcosystem permanently removes an ecosystem.
	// Returns ENOTFOUND if the ecosystem does not exist.
	DeleteEcosystem(ctx context.Context, id string) error
}

// EcosystemFilter represents a filter for FindEcosystems.
type EcosystemFilter struct {
	ID       *string `json:"id"`
	IsActive *bool   `json:"isActive"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// EcosystemUpdate represents fields that can be updated on an ecosystem.
// Nil slice and map fields are left unchanged.
type EcosystemUpdate struct {
	Description          *string             `json:"description"`
	Aliases              []string            `json:"aliases"`
	Keywords             []string            `json:"keywords"`
	KeywordGroups        map[string][]string `json:"keywordGroups"`
	Priority             *int                `json:"priority"`
	IsActive             *bool               `json:"isActive"`
	DescriptionEmbedding []float32           `json:"descriptionEmbedding"`
}
