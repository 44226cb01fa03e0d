package pagescope

// MediaKind identifies which variant of a Media record is populated.
type MediaKind string

// Media record kinds.
const (
	MediaImage   MediaKind = "image"
	MediaSVG     MediaKind = "svg"
	MediaText    MediaKind = "text"
	MediaHeading MediaKind = "heading"
)

// Media is a node normalized into a uniform record. Exactly one variant is
// populated, selected by Kind: Src and Alt for images, Paths for svg, Text
// for text and headings.
type Media struct {
	Kind  MediaKind `json:"kind" yaml:"kind"`
	Src   string    `json:"src,omitempty" yaml:"src,omitempty"`
	Alt   string    `json:"alt,omitempty" yaml:"alt,omitempty"`
	Paths []string  `json:"paths,omitempty" yaml:"paths,omitempty"`
	Text  string    `json:"text,omitempty" yaml:"text,omitempty"`
}

// ParseMediaNode normalizes n into a Media record.
//
// Images require a src attribute and are an EATTRIBUTE error without one;
// alt defaults to empty. An svg collects the d attribute of its path
// elements in document order. Text and heading nodes carry their trimmed
// text. Any other tag yields a nil record and no error.
func ParseMediaNode(n Node) (*Media, error) {
	tag := n.Tag()
	switch {
	case tag == TagImage:
		src, ok := n.Attr("src")
		if !ok {
			return nil, Errorf(EATTRIBUTE, "<%s> missing required attribute %q", tag, "src")
		}
		alt, _ := n.Attr("alt")
		return &Media{Kind: MediaImage, Src: src, Alt: alt}, nil
	case tag == TagSVG:
		return &Media{Kind: MediaSVG, Paths: svgPaths(n)}, nil
	case tag == TextTag:
		return &Media{Kind: MediaText, Text: n.Text()}, nil
	case IsHeading(tag):
		return &Media{Kind: MediaHeading, Text: n.Text()}, nil
	}
	return nil, nil
}

// svgPaths returns the path data of the path elements below n. Paths
// without a d attribute carry nothing to report and are skipped.
func svgPaths(n Node) []string {
	paths := []string{}
	it := Traverse(Scope{Start: n, Tags: NewTagSet(TagPath), Mode: Include})
	for it.Next() {
		if d, ok := it.Node().Attr("d"); ok {
			paths = append(paths, d)
		}
	}
	return paths
}

// MediaIterator is a lazy sequence of Media records. Iteration stops at
// the first node that cannot be normalized; Err reports why. Records
// produced before the failure have already been handed out, so callers
// needing all-or-nothing semantics should use Collect.
type MediaIterator struct {
	nodes  *Iterator
	record *Media
	node   Node
	err    error
}

// MediaRecords returns the records of the nodes selected by MediaNodes.
func MediaRecords(s Scope, headingsAsText bool) *MediaIterator {
	return &MediaIterator{nodes: MediaNodes(s, headingsAsText)}
}

// Next advances to the next record.
func (it *MediaIterator) Next() bool {
	if it.err != nil {
		return false
	}
	for it.nodes.Next() {
		n := it.nodes.Node()
		m, err := ParseMediaNode(n)
		if err != nil {
			it.err = err
			it.record, it.node = nil, nil
			return false
		}
		if m == nil {
			continue
		}
		it.record, it.node = m, n
		return true
	}
	it.record, it.node = nil, nil
	return false
}

// Media returns the current record.
func (it *MediaIterator) Media() *Media {
	return it.record
}

// Node returns the node the current record was built from.
func (it *MediaIterator) Node() Node {
	return it.node
}

// Err returns the error that stopped iteration, if any.
func (it *MediaIterator) Err() error {
	return it.err
}

// Collect drains the iterator. On error no records are returned.
func (it *MediaIterator) Collect() ([]*Media, error) {
	var records []*Media
	for it.Next() {
		records = append(records, it.Media())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
