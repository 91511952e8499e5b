package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/deeptective/deeptective"
)

// Compile-time interface verification.
var _ deeptective.CaseService = (*CaseService)(nil)

// CaseService implements deeptective.CaseService using SQLite.
type CaseService struct {
	db *DB
}

// NewCaseService creates a new CaseService.
func NewCaseService(db *DB) *CaseService {
	return &CaseService{db: db}
}

// CreateCase stores a case, replacing any existing case with the same ID.
// Discovery times are stored in UTC with second precision; c is not modified.
func (s *CaseService) CreateCase(ctx context.Context, c *deeptective.EvidenceCase) error {
	if err := c.Validate(); err != nil {
		return err
	}

	discoveredAt := c.DiscoveredAt
	if discoveredAt.IsZero() {
		discoveredAt = time.Now()
	}
	discoveredAt = discoveredAt.UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cases (id, title, depth_level, source_url, media_type, discovered_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			depth_level = excluded.depth_level,
			source_url = excluded.source_url,
			media_type = excluded.media_type,
			discovered_at = excluded.discovered_at
	`, c.ID, c.Title, int(c.DepthLevel), c.SourceURL, string(c.MediaType),
		discoveredAt.Format(time.RFC3339))

	return err
}

// FindCaseByID retrieves a case by ID.
func (s *CaseService) FindCaseByID(ctx context.Context, id string) (*deeptective.EvidenceCase, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, depth_level, source_url, media_type, discovered_at
		FROM cases
		WHERE id = ?
	`, id)

	c, err := scanCase(row)
	if err == sql.ErrNoRows {
		return nil, deeptective.Errorf(deeptective.ENOTFOUND, "case not found")
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// FindCases retrieves cases matching the filter, newest first.
func (s *CaseService) FindCases(ctx context.Context, filter deeptective.CaseFilter) ([]*deeptective.EvidenceCase, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, title, depth_level, source_url, media_type, discovered_at FROM cases WHERE 1=1")

	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.MediaType != nil {
		query.WriteString(" AND media_type = ?")
		args = append(args, string(*filter.MediaType))
	}

	query.WriteString(" ORDER BY discovered_at DESC, id ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cases []*deeptective.EvidenceCase
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}

	return cases, rows.Err()
}

// scanner is implemented by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCase(row scanner) (*deeptective.EvidenceCase, error) {
	var c deeptective.EvidenceCase
	var depth int
	var mediaType, discoveredAt string

	if err := row.Scan(&c.ID, &c.Title, &depth, &c.SourceURL, &mediaType, &discoveredAt); err != nil {
		return nil, err
	}

	c.DepthLevel = deeptective.DepthLevel(depth)
	c.MediaType = deeptective.MediaType(mediaType)

	var err error
	if c.DiscoveredAt, err = parseRFC3339(discoveredAt, "discovered_at"); err != nil {
		return nil, err
	}
	return &c, nil
}
