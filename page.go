package pagescope

import (
	"context"
	"time"
)

// Page is a fetched HTML page kept in the page cache.
type Page struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	HTML        string    `json:"html"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	return nil
}

// PageService stores fetched pages by URL.
type PageService interface {
	// FindPageByURL retrieves the page stored for url.
	// Returns ENOTFOUND if no page is stored.
	FindPageByURL(ctx context.Context, url string) (*Page, error)

	// SavePage stores a page, replacing any page stored for the same URL.
	// ID, ContentHash and FetchedAt are set by the service.
	SavePage(ctx context.Context, page *Page) error

	// DeletePage removes the page stored for url.
	// Returns ENOTFOUND if no page is stored.
	DeletePage(ctx context.Context, url string) error
}
