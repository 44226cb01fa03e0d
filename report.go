package pagescope

import "math"

// Report is the structured content extracted from one page.
type Report struct {
	URL        string      `json:"url,omitempty" yaml:"url,omitempty"`
	Title      string      `json:"title,omitempty" yaml:"title,omitempty"`
	Headings   []Heading   `json:"headings" yaml:"headings"`
	Links      []Link      `json:"links" yaml:"links"`
	Media      []*Media    `json:"media" yaml:"media"`
	Texts      []TextItem  `json:"texts" yaml:"texts"`
	TextPaths  []TextPath  `json:"textPaths,omitempty" yaml:"text_paths,omitempty"`
	MediaPaths []MediaPath `json:"mediaPaths,omitempty" yaml:"media_paths,omitempty"`
	Count      NodeCount   `json:"count" yaml:"count"`

	// Error is set instead of the content when a batch scrape could not
	// process the page.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ReportOptions configures BuildReport.
type ReportOptions struct {
	// Selector picks the start node: the first match of a CSS selector.
	// Empty means <body>, or the document root when there is none.
	Selector string

	// Until picks the exclusive end node: the first match of a CSS
	// selector that comes after the start node. Empty means unbounded.
	Until string

	ChildrenOnly bool
	ExcludeSelf  bool

	// KeepFragments keeps same-page "#..." links.
	KeepFragments bool

	// HeadingsAsText reports heading text as plain text records instead of
	// heading records.
	HeadingsAsText bool

	// MaxTextLen bounds Report.Texts, see HandleTextLen. Zero disables it.
	MaxTextLen int
	Truncate   bool

	// Paths fills TextPaths and MediaPaths.
	Paths bool
}

// ResolveScope returns the scope selected by the selector and until
// options against doc. An unmatched selector is ENOTFOUND; an unmatched
// until selector leaves the scope unbounded.
func ResolveScope(doc Document, opts ReportOptions) (Scope, error) {
	s := Scope{
		IncludeSelf:  !opts.ExcludeSelf,
		ChildrenOnly: opts.ChildrenOnly,
	}

	start, err := firstMatch(doc, opts.Selector, "body")
	if err != nil {
		return Scope{}, err
	}
	if start == nil && opts.Selector != "" {
		return Scope{}, Errorf(ENOTFOUND, "no element matches %q", opts.Selector)
	}
	if start == nil {
		start = doc.Root()
	}
	s.Start = start

	if opts.Until != "" {
		candidates, err := doc.Find(opts.Until)
		if err != nil {
			return Scope{}, err
		}
		marks := NewNodeSet(candidates...)
		it := Traverse(Scope{Start: start, IncludeText: true})
		for it.Next() {
			if marks.Has(it.Node()) {
				s.End = it.Node()
				break
			}
		}
	}

	return s, nil
}

func firstMatch(doc Document, selector, fallback string) (Node, error) {
	if selector == "" {
		selector = fallback
	}
	nodes, err := doc.Find(selector)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, nil
	}
	return nodes[0], nil
}

// BuildReport extracts headings, links, media records, bounded texts, node
// counts and, optionally, the path fingerprint from doc.
func BuildReport(doc Document, opts ReportOptions) (*Report, error) {
	s, err := ResolveScope(doc, opts)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Title:    doc.Title(),
		Headings: Headings(s),
		Count:    CountNodes(s.Start),
	}

	if r.Links, err = Links(s, !opts.KeepFragments); err != nil {
		return nil, err
	}

	if r.Media, err = MediaRecords(s, opts.HeadingsAsText).Collect(); err != nil {
		return nil, err
	}

	var texts []string
	for _, m := range r.Media {
		if m.Kind == MediaText {
			texts = append(texts, m.Text)
		}
	}
	maxLen := opts.MaxTextLen
	if maxLen <= 0 {
		maxLen = math.MaxInt
	}
	r.Texts = HandleTextLen(texts, maxLen, opts.Truncate)

	if opts.Paths {
		r.TextPaths, r.MediaPaths, err = MediaPaths(s.Start, PathOptions{Text: true, Media: true})
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}
