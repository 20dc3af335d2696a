package docscope

import "context"

// Catalog is an immutable snapshot of the active ecosystem definitions and
// their doc-source assignments. Ecosystems are ordered by descending
// priority. The sources map is derived from doc-source rows and is rebuilt
// on every refresh; it is never edited in place.
type Catalog struct {
	Ecosystems []*Ecosystem        `json:"ecosystems"`
	Sources    map[string][]string `json:"sources"`
}

// SourcesFor returns the doc-source IDs assigned to the ecosystem, or an
// empty list if the ecosystem has no sources. The returned slice is a copy.
func (c *Catalog) SourcesFor(ecosystemID string) []string {
	ids := c.Sources[ecosystemID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// ByID returns the ecosystem with the given ID, or nil if absent.
func (c *Catalog) ByID(id string) *Ecosystem {
	for _, eco := range c.Ecosystems {
		if eco.ID == id {
			return eco
		}
	}
	return nil
}

// Fallback returns the canonical "general" ecosystem, or the first catalog
// entry if none is configured. Returns nil for an empty catalog.
func (c *Catalog) Fallback() *Ecosystem {
	if eco := c.ByID(FallbackEcosystemID); eco != nil {
		return eco
	}
	if len(c.Ecosystems) > 0 {
		return c.Ecosystems[0]
	}
	return nil
}

// CatalogService provides read access to the current catalog snapshot.
type CatalogService interface {
	// Catalog returns the current snapshot, refreshing it first when stale.
	// Implementations serve the previous snapshot (or an empty catalog) on
	// refresh failure rather than returning the fetch error, so detection
	// degrades instead of aborting.
	Catalog(ctx context.Context) (*Catalog, error)

	// Refresh fetches the catalog unconditionally and atomically replaces
	// the snapshot. Readers observe either the old or the new snapshot in
	// full, never a mix of ecosystems and source mappings.
	Refresh(ctx context.Context) error
}
