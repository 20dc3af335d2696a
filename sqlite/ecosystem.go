package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/docscope"
)

// Compile-time interface verification.
var _ docscope.EcosystemService = (*EcosystemService)(nil)

// EcosystemService implements docscope.EcosystemService using SQLite.
type EcosystemService struct {
	db *DB
}

// NewEcosystemService creates a new EcosystemService.
func NewEcosystemService(db *DB) *EcosystemService {
	return &EcosystemService{db: db}
}

// CreateEcosystem creates a new ecosystem. The ID is caller-assigned, so a
// duplicate is a conflict rather than a retry.
func (s *EcosystemService) CreateEcosystem(ctx context.Context, eco *docscope.Ecosystem) error {
	if err := eco.Validate(); err != nil {
		return err
	}

	var exists bool
	if err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM ecosystems WHERE id = ?)", eco.ID,
	).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return docscope.Errorf(docscope.ECONFLICT, "ecosystem already exists")
	}

	now := time.Now().UTC()
	eco.CreatedAt = now
	eco.UpdatedAt = now

	aliases, err := encodeJSON(eco.Aliases, "aliases")
	if err != nil {
		return err
	}
	keywords, err := encodeJSON(eco.Keywords, "keywords")
	if err != nil {
		return err
	}
	groups, err := encodeJSON(eco.KeywordGroups, "keyword_groups")
	if err != nil {
		return err
	}
	embedding, err := encodeEmbedding(eco.DescriptionEmbedding)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO ecosystems (id, description, aliases, keywords, keyword_groups, priority, is_active, description_embedding, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, eco.ID, eco.Description, aliases, keywords, groups, eco.Priority, eco.IsActive, embedding,
		eco.CreatedAt.Format(time.RFC3339), eco.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindEcosystemByID retrieves an ecosystem by ID.
func (s *EcosystemService) FindEcosystemByID(ctx context.Context, id string) (*docscope.Ecosystem, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, description, aliases, keywords, keyword_groups, priority, is_active, description_embedding, created_at, updated_at
		FROM ecosystems
		WHERE id = ?
	`, id)

	eco, err := scanEcosystem(row.Scan)
	if err == sql.ErrNoRows {
		return nil, docscope.Errorf(docscope.ENOTFOUND, "ecosystem not found")
	}
	if err != nil {
		return nil, err
	}

	return eco, nil
}

// FindEcosystems retrieves ecosystems matching the filter, ordered by
// descending priority. Ties break on ID for a stable catalog order.
func (s *EcosystemService) FindEcosystems(ctx context.Context, filter docscope.EcosystemFilter) ([]*docscope.Ecosystem, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, description, aliases, keywords, keyword_groups, priority, is_active, description_embedding, created_at, updated_at FROM ecosystems WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.IsActive != nil {
		query.WriteString(" AND is_active = ?")
		args = append(args, *filter.IsActive)
	}

	query.WriteString(" ORDER BY priority DESC, id ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ecosystems []*docscope.Ecosystem
	for rows.Next() {
		eco, err := scanEcosystem(rows.Scan)
		if err != nil {
			return nil, err
		}
		ecosystems = append(ecosystems, eco)
	}

	return ecosystems, rows.Err()
}

// UpdateEcosystem updates an existing ecosystem. Nil slice and map fields in
// the update are left unchanged.
func (s *EcosystemService) UpdateEcosystem(ctx context.Context, id string, upd docscope.EcosystemUpdate) (*docscope.Ecosystem, error) {
	// First check if the ecosystem exists
	eco, err := s.FindEcosystemByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Apply updates
	if upd.Description != nil {
		eco.Description = *upd.Description
	}
	if upd.Aliases != nil {
		eco.Aliases = upd.Aliases
	}
	if upd.Keywords != nil {
		eco.Keywords = upd.Keywords
	}
	if upd.KeywordGroups != nil {
		eco.KeywordGroups = upd.KeywordGroups
	}
	if upd.Priority != nil {
		eco.Priority = *upd.Priority
	}
	if upd.IsActive != nil {
		eco.IsActive = *upd.IsActive
	}
	if upd.DescriptionEmbedding != nil {
		eco.DescriptionEmbedding = upd.DescriptionEmbedding
	}

	// Validate before persisting
	if err := eco.Validate(); err != nil {
		return nil, err
	}

	eco.UpdatedAt = time.Now().UTC()

	aliases, err := encodeJSON(eco.Aliases, "aliases")
	if err != nil {
		return nil, err
	}
	keywords, err := encodeJSON(eco.Keywords, "keywords")
	if err != nil {
		return nil, err
	}
	groups, err := encodeJSON(eco.KeywordGroups, "keyword_groups")
	if err != nil {
		return nil, err
	}
	embedding, err := encodeEmbedding(eco.DescriptionEmbedding)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE ecosystems
		SET description = ?, aliases = ?, keywords = ?, keyword_groups = ?, priority = ?, is_active = ?, description_embedding = ?, updated_at = ?
		WHERE id = ?
	`, eco.Description, aliases, keywords, groups, eco.Priority, eco.IsActive, embedding,
		eco.UpdatedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return eco, nil
}

// DeleteEcosystem permanently removes an ecosystem. Doc sources assigned to it
// become unassigned via ON DELETE SET NULL.
func (s *EcosystemService) DeleteEcosystem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM ecosystems WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return docscope.Errorf(docscope.ENOTFOUND, "ecosystem not found")
	}

	return nil
}

// encodeEmbedding stores an embedding as a JSON array, or an empty string
// when the ecosystem has none.
func encodeEmbedding(vec []float32) (string, error) {
	if len(vec) == 0 {
		return "", nil
	}
	return encodeJSON(vec, "description_embedding")
}

// scanEcosystem scans a single ecosystem row, decoding the JSON-encoded
// columns. The scan argument abstracts over *sql.Row and *sql.Rows.
func scanEcosystem(scan func(dest ...any) error) (*docscope.Ecosystem, error) {
	var eco docscope.Ecosystem
	var aliases, keywords, groups, embedding string
	var createdAt, updatedAt string

	if err := scan(&eco.ID, &eco.Description, &aliases, &keywords, &groups, &eco.Priority,
		&eco.IsActive, &embedding, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if err := decodeJSON(aliases, "aliases", &eco.Aliases); err != nil {
		return nil, err
	}
	if err := decodeJSON(keywords, "keywords", &eco.Keywords); err != nil {
		return nil, err
	}
	if err := decodeJSON(groups, "keyword_groups", &eco.KeywordGroups); err != nil {
		return nil, err
	}
	if err := decodeJSON(embedding, "description_embedding", &eco.DescriptionEmbedding); err != nil {
		return nil, err
	}

	var err error
	eco.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	eco.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at")
	if err != nil {
		return nil, err
	}

	return &eco, nil
}
