package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagescope"
	"github.com/google/uuid"
)

var _ pagescope.PageService = (*PageService)(nil)

// timeFormat is fixed width so stored timestamps sort as text.
const timeFormat = "2006-01-02T15:04:05.000000000Z"

// PageService implements pagescope.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashHTML returns the xxHash of html as 16 hex digits.
func hashHTML(html string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(html))
}

// FindPageByURL retrieves the page stored for url.
func (s *PageService) FindPageByURL(ctx context.Context, url string) (*pagescope.Page, error) {
	var p pagescope.Page
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, html, content_hash, fetched_at
		FROM pages
		WHERE url = ?
	`, url).Scan(&p.ID, &p.URL, &p.HTML, &p.ContentHash, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pagescope.Errorf(pagescope.ENOTFOUND, "page not found: %s", url)
	}
	if err != nil {
		return nil, err
	}

	if p.FetchedAt, err = time.Parse(timeFormat, fetchedAt); err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}
	return &p, nil
}

// SavePage stores page, replacing the page stored for the same URL. A
// replaced page keeps its ID.
func (s *PageService) SavePage(ctx context.Context, page *pagescope.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	id := uuid.New().String()
	fetchedAt := time.Now().UTC()
	hash := hashHTML(page.HTML)

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO pages (id, url, html, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			html = excluded.html,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
		RETURNING id
	`, id, page.URL, page.HTML, hash, fetchedAt.Format(timeFormat)).Scan(&id)
	if err != nil {
		return err
	}

	page.ID = id
	page.ContentHash = hash
	page.FetchedAt = fetchedAt
	return nil
}

// DeletePage removes the page stored for url.
func (s *PageService) DeletePage(ctx context.Context, url string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM pages WHERE url = ?`, url)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return pagescope.Errorf(pagescope.ENOTFOUND, "page not found: %s", url)
	}
	return nil
}

// PrunePages removes pages fetched before cutoff and returns how many were
// removed.
func (s *PageService) PrunePages(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM pages WHERE fetched_at < ?`,
		cutoff.UTC().Format(timeFormat))
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// CountPages returns the number of stored pages.
func (s *PageService) CountPages(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pages`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
