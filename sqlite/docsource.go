package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/docscope"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docscope.DocSourceService = (*DocSourceService)(nil)

// DocSourceService implements docscope.DocSourceService using SQLite.
type DocSourceService struct {
	db *DB
}

// NewDocSourceService creates a new DocSourceService.
func NewDocSourceService(db *DB) *DocSourceService {
	return &DocSourceService{db: db}
}

// CreateDocSource creates a new doc source. An empty ID is assigned
// automatically.
func (s *DocSourceService) CreateDocSource(ctx context.Context, src *docscope.DocSource) error {
	if err := src.Validate(); err != nil {
		return err
	}

	if src.ID == "" {
		src.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	src.CreatedAt = now
	src.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO doc_sources (id, name, url, ecosystem_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, src.ID, src.Name, src.URL, src.EcosystemID,
		src.CreatedAt.Format(time.RFC3339), src.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindDocSourceByID retrieves a doc source by ID.
func (s *DocSourceService) FindDocSourceByID(ctx context.Context, id string) (*docscope.DocSource, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, url, ecosystem_id, created_at, updated_at
		FROM doc_sources
		WHERE id = ?
	`, id)

	src, err := scanDocSource(row.Scan)
	if err == sql.ErrNoRows {
		return nil, docscope.Errorf(docscope.ENOTFOUND, "doc source not found")
	}
	if err != nil {
		return nil, err
	}

	return src, nil
}

// FindDocSources retrieves doc sources matching the filter, ordered by name.
func (s *DocSourceService) FindDocSources(ctx context.Context, filter docscope.DocSourceFilter) ([]*docscope.DocSource, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, url, ecosystem_id, created_at, updated_at FROM doc_sources WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.EcosystemID != nil {
		query.WriteString(" AND ecosystem_id = ?")
		args = append(args, *filter.EcosystemID)
	}
	if filter.Assigned != nil {
		if *filter.Assigned {
			query.WriteString(" AND ecosystem_id IS NOT NULL")
		} else {
			query.WriteString(" AND ecosystem_id IS NULL")
		}
	}

	query.WriteString(" ORDER BY name ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []*docscope.DocSource
	for rows.Next() {
		src, err := scanDocSource(rows.Scan)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}

	return sources, rows.Err()
}

// DeleteDocSource permanently removes a doc source.
func (s *DocSourceService) DeleteDocSource(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM doc_sources WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return docscope.Errorf(docscope.ENOTFOUND, "doc source not found")
	}

	return nil
}

// scanDocSource scans a single doc source row.
func scanDocSource(scan func(dest ...any) error) (*docscope.DocSource, error) {
	var src docscope.DocSource
	var ecosystemID sql.NullString
	var createdAt, updatedAt string

	if err := scan(&src.ID, &src.Name, &src.URL, &ecosystemID, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if ecosystemID.Valid {
		src.EcosystemID = &ecosystemID.String
	}

	var err error
	src.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	src.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at")
	if err != nil {
		return nil, err
	}

	return &src, nil
}
