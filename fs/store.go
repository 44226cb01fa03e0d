// Package fs writes batch scrape reports to disk.
package fs

import (
	"bytes"
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagescope"
)

// ReportPath converts a page URL to a relative file path under a directory
// named after the host.
// Example: https://example.com/docs/api → example.com/docs/api.json
func ReportPath(rawURL, ext string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", pagescope.Errorf(pagescope.EINVALID, "invalid report URL: %v", err)
	}
	if u.Host == "" {
		return "", pagescope.Errorf(pagescope.EINVALID, "report URL %q has no host", rawURL)
	}

	for _, seg := range strings.Split(u.Path, "/") {
		if seg == ".." {
			return "", pagescope.Errorf(pagescope.EINVALID, "report URL %q leaves its host directory", rawURL)
		}
	}

	path := strings.TrimPrefix(u.Path, "/")
	switch {
	case path == "":
		path = "index"
	case strings.HasSuffix(path, "/"):
		path += "index"
	}
	rel := filepath.Join(u.Host, filepath.FromSlash(path)+ext)
	if !filepath.IsLocal(rel) || !strings.HasPrefix(rel, u.Host+string(filepath.Separator)) {
		return "", pagescope.Errorf(pagescope.EINVALID, "report URL %q leaves its host directory", rawURL)
	}
	return rel, nil
}

var _ pagescope.ReportStore = (*ReportStore)(nil)

// ReportStore implements pagescope.ReportStore with atomic update
// semantics. Reports are saved to a temporary directory, then moved into
// place on Commit.
type ReportStore struct {
	baseDir string
	name    string
	enc     pagescope.Encoder
}

// NewReportStore creates a new ReportStore.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewReportStore(baseDir, name string, enc pagescope.Encoder) *ReportStore {
	return &ReportStore{
		baseDir: baseDir,
		name:    name,
		enc:     enc,
	}
}

func (s *ReportStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *ReportStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save encodes report into the temporary directory.
func (s *ReportStore) Save(ctx context.Context, report *pagescope.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := ReportPath(report.URL, s.enc.Extension())
	if err != nil {
		return err
	}
	fullPath := filepath.Join(s.tempDir(), relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := s.enc.Encode(&buf, report); err != nil {
		return err
	}
	return os.WriteFile(fullPath, buf.Bytes(), 0644)
}

// Commit replaces the output directory with the saved reports. Committing
// without any saved report leaves the output directory untouched.
func (s *ReportStore) Commit() error {
	if _, err := os.Stat(s.tempDir()); os.IsNotExist(err) {
		return nil
	}
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the saved reports.
func (s *ReportStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
