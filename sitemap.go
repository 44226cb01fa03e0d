package pagescope

import (
	"net"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Field is a named value in the LLM-readable view of a site map.
type Field struct {
	Key   string
	Value string
}

// Row is one flattened site map entry: its dotted label path and fields.
type Row struct {
	Path   string
	Fields []Field
}

// EntryInfo describes a navigation target on a site.
type EntryInfo struct {
	Label       string   `json:"contentLabel" yaml:"content_label"`
	Target      string   `json:"target" yaml:"target"`
	Method      string   `json:"targetMethod" yaml:"target_method"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Steps       []string `json:"steps,omitempty" yaml:"steps,omitempty"`
	Note        string   `json:"note,omitempty" yaml:"note,omitempty"`
}

// Fields returns the non-empty fields of i in declaration order, skipping
// the keys listed in ignored.
func (i EntryInfo) Fields(ignored ...string) []Field {
	return nonEmptyFields([]Field{
		{"content_label", i.Label},
		{"target", i.Target},
		{"target_method", i.Method},
		{"description", i.Description},
		{"steps", strings.Join(i.Steps, ";")},
		{"note", i.Note},
	}, ignored)
}

// SiteMapEntry is a node of the site map hierarchy.
type SiteMapEntry struct {
	Info       EntryInfo
	ParentPath string
	SubTargets []EntryInfo
	Children   []*SiteMapEntry
}

// LabelPath returns the dotted path of the entry: its parent path followed
// by its own label.
func (e *SiteMapEntry) LabelPath() string {
	return joinPath(e.ParentPath, e.Info.Label)
}

// CreateChild appends a child entry nested under e and returns it.
func (e *SiteMapEntry) CreateChild(info EntryInfo, subTargets ...EntryInfo) *SiteMapEntry {
	child := &SiteMapEntry{
		Info:       info,
		ParentPath: e.LabelPath(),
		SubTargets: subTargets,
	}
	e.Children = append(e.Children, child)
	return child
}

// RowOptions controls how site map entries are flattened.
type RowOptions struct {
	// Ignored lists field keys left out of every row.
	Ignored []string

	// Children descends into child entries.
	Children bool

	// SubTargets emits a row per sub-target after the entry's own row.
	SubTargets bool
}

// Rows flattens e into rows, the entry first.
func (e *SiteMapEntry) Rows(opts RowOptions) []Row {
	path := e.LabelPath()
	rows := []Row{{Path: path, Fields: e.Info.Fields(opts.Ignored...)}}

	if opts.SubTargets {
		for _, sub := range e.SubTargets {
			rows = append(rows, Row{
				Path:   joinPath(path, sub.Label),
				Fields: sub.Fields(opts.Ignored...),
			})
		}
	}

	if opts.Children {
		for _, child := range e.Children {
			rows = append(rows, child.Rows(opts)...)
		}
	}
	return rows
}

// SiteMap describes the navigable structure of a site in a form an LLM can
// read.
type SiteMap struct {
	URL          string          `json:"url"`
	Domain       string          `json:"domainUrl"`
	Subdomain    string          `json:"subdomainUrl"`
	PageTemplate string          `json:"pageUrlTemplate"`
	Description  string          `json:"description,omitempty"`
	Path         string          `json:"path"`
	Entries      []*SiteMapEntry `json:"-"`
}

// URLInfoKeys are the site fields derived from the URL.
var URLInfoKeys = []string{"url", "domain_url", "subdomain_url", "page_url_template"}

// NewSiteMap returns an empty site map for rawURL with the registrable
// domain, the host and the page URL template derived from it.
func NewSiteMap(rawURL string) (*SiteMap, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid site URL: %v", err)
	}
	if u.Host == "" {
		return nil, Errorf(EINVALID, "site URL %q has no host", rawURL)
	}

	host := u.Hostname()
	domain := host
	if net.ParseIP(host) == nil {
		// Bare suffixes and single labels have no registrable domain.
		if d, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
			domain = d
		}
	}

	return &SiteMap{
		URL:          rawURL,
		Domain:       domain,
		Subdomain:    u.Host,
		PageTemplate: pageTemplate(u),
		Path:         "root",
	}, nil
}

// pageTemplate returns the host followed by the parent path of the page.
// A single path segment is kept as is.
func pageTemplate(u *url.URL) string {
	var segments []string
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	switch len(segments) {
	case 0:
		return u.Host
	case 1:
		return u.Host + "/" + segments[0]
	default:
		return u.Host + "/" + strings.Join(segments[:len(segments)-1], "/")
	}
}

// CreateEntry appends a top-level entry and returns it.
func (m *SiteMap) CreateEntry(info EntryInfo, subTargets ...EntryInfo) *SiteMapEntry {
	entry := &SiteMapEntry{
		Info:       info,
		ParentPath: m.Path,
		SubTargets: subTargets,
	}
	m.Entries = append(m.Entries, entry)
	return entry
}

// Fields returns the non-empty site fields, skipping the keys in ignored.
func (m *SiteMap) Fields(ignored ...string) []Field {
	return nonEmptyFields([]Field{
		{"url", m.URL},
		{"domain_url", m.Domain},
		{"subdomain_url", m.Subdomain},
		{"page_url_template", m.PageTemplate},
		{"description", m.Description},
		{"path", m.Path},
	}, ignored)
}

// Rows flattens every entry of the site map.
func (m *SiteMap) Rows(opts RowOptions) []Row {
	var rows []Row
	for _, e := range m.Entries {
		rows = append(rows, e.Rows(opts)...)
	}
	return rows
}

// SiteMapFromLinks returns a site map for pageURL with one entry per link.
// Relative targets are resolved against pageURL; labels fall back to the
// target's path when the anchor has no text.
func SiteMapFromLinks(pageURL string, links []Link) (*SiteMap, error) {
	m, err := NewSiteMap(pageURL)
	if err != nil {
		return nil, err
	}
	base, _ := url.Parse(pageURL)

	for _, l := range links {
		target, targetPath := l.Href, l.Href
		if ref, err := url.Parse(l.Href); err == nil {
			resolved := base.ResolveReference(ref)
			target, targetPath = resolved.String(), resolved.Path
		}
		label := strings.Join(strings.Fields(l.Text), " ")
		if label == "" {
			label = fallbackLabel(targetPath)
		}
		m.CreateEntry(EntryInfo{Label: label, Target: target, Method: "link"})
	}
	return m, nil
}

// fallbackLabel turns a link path into a label. Dots become underscores so
// the label stays a single segment of its entry's label path.
func fallbackLabel(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return "/"
	}
	return strings.ReplaceAll(p, ".", "_")
}

// RowKeys returns the union of the field keys of rows in first-seen order.
func RowKeys(rows []Row) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, r := range rows {
		for _, f := range r.Fields {
			if !seen[f.Key] {
				seen[f.Key] = true
				keys = append(keys, f.Key)
			}
		}
	}
	return keys
}

// FormatRows renders rows as a key header line followed by one
// "path: value,value" line per row.
func FormatRows(rows []Row) string {
	if len(rows) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.Join(RowKeys(rows), ","))
	b.WriteString("\n")
	for _, r := range rows {
		values := make([]string, len(r.Fields))
		for i, f := range r.Fields {
			values[i] = f.Value
		}
		b.WriteString(r.Path)
		b.WriteString(": ")
		b.WriteString(strings.Join(values, ","))
		b.WriteString("\n")
	}
	return b.String()
}

func nonEmptyFields(fields []Field, ignored []string) []Field {
	out := fields[:0]
	for _, f := range fields {
		if f.Value == "" || slices.Contains(ignored, f.Key) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func joinPath(parent, label string) string {
	if parent == "" {
		return label
	}
	return parent + "." + label
}
