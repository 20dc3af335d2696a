// Package catalog provides a TTL-cached view of the ecosystem catalog.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docscope"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL is the staleness bound for the cached catalog snapshot.
const DefaultTTL = 5 * time.Minute

var _ docscope.CatalogService = (*Cache)(nil)

// Cache implements docscope.CatalogService by caching catalog fetches for a
// TTL. Refresh builds a new immutable snapshot and publishes it atomically,
// so concurrent readers see either the fully-old or fully-new catalog,
// never ecosystems from one fetch paired with sources from another.
type Cache struct {
	// Ecosystems and Sources are the storage services the catalog is
	// fetched from. Both are required.
	Ecosystems docscope.EcosystemService
	Sources    docscope.DocSourceService

	// Logger receives refresh outcomes. Defaults to slog.Default().
	Logger *slog.Logger

	// TTL is the snapshot staleness bound. Zero means DefaultTTL.
	TTL time.Duration

	// Now returns the current time. Nil means time.Now. Tests inject a
	// fake clock here to force staleness deterministically.
	Now func() time.Time

	group    singleflight.Group
	snapshot atomic.Pointer[snapshot]
}

type snapshot struct {
	catalog   *docscope.Catalog
	fetchedAt time.Time
}

// Catalog returns the current catalog snapshot, refreshing it first when the
// TTL has elapsed. Fetch failures are logged and the previous snapshot (or
// an empty catalog) is returned; the error result is always nil so detection
// degrades instead of aborting.
func (c *Cache) Catalog(ctx context.Context) (*docscope.Catalog, error) {
	if snap := c.snapshot.Load(); snap != nil && c.now().Sub(snap.fetchedAt) < c.ttl() {
		return snap.catalog, nil
	}

	if err := c.Refresh(ctx); err != nil {
		c.logger().Error("catalog refresh failed", "error", err)
		if snap := c.snapshot.Load(); snap != nil {
			return snap.catalog, nil
		}
		return &docscope.Catalog{Ecosystems: []*docscope.Ecosystem{}, Sources: map[string][]string{}}, nil
	}

	return c.snapshot.Load().catalog, nil
}

// Refresh fetches all active ecosystems ordered by descending priority and
// all assigned doc sources, then atomically replaces the snapshot.
// Concurrent callers share a single fetch.
func (c *Cache) Refresh(ctx context.Context) error {
	_, err, _ := c.group.Do("refresh", func() (any, error) {
		active := true
		ecosystems, err := c.Ecosystems.FindEcosystems(ctx, docscope.EcosystemFilter{IsActive: &active})
		if err != nil {
			return nil, fmt.Errorf("fetch ecosystems: %w", err)
		}

		assigned := true
		srcs, err := c.Sources.FindDocSources(ctx, docscope.DocSourceFilter{Assigned: &assigned})
		if err != nil {
			return nil, fmt.Errorf("fetch doc sources: %w", err)
		}

		sources := make(map[string][]string)
		for _, src := range srcs {
			if src.EcosystemID == nil {
				continue
			}
			sources[*src.EcosystemID] = append(sources[*src.EcosystemID], src.ID)
		}

		catalog := &docscope.Catalog{Ecosystems: ecosystems, Sources: sources}
		c.snapshot.Store(&snapshot{catalog: catalog, fetchedAt: c.now()})

		c.logger().Info("catalog refreshed",
			"ecosystems", len(ecosystems),
			"sources", len(srcs),
			"fingerprint", fingerprint(catalog),
		)
		return nil, nil
	})
	return err
}

// fingerprint returns a stable hash of the snapshot contents so refresh logs
// show whether the catalog actually changed.
func fingerprint(catalog *docscope.Catalog) string {
	h := xxhash.New()
	for _, eco := range catalog.Ecosystems {
		_, _ = h.WriteString(eco.ID)
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(eco.UpdatedAt.UTC().Format(time.RFC3339Nano))
		_, _ = h.WriteString("\x00")
		for _, id := range catalog.Sources[eco.ID] {
			_, _ = h.WriteString(id)
			_, _ = h.WriteString("\x01")
		}
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

func (c *Cache) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Cache) ttl() time.Duration {
	if c.TTL > 0 {
		return c.TTL
	}
	return DefaultTTL
}

func (c *Cache) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
