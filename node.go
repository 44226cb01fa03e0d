package pagescope

// Reserved pseudo-tags reported by Node.Tag.
const (
	// TextTag is the tag of text nodes.
	TextTag = "#text"

	// DocumentTag is the tag of the document root.
	DocumentTag = "#document"
)

// Tag names the engine gives special meaning to.
const (
	TagAnchor = "a"
	TagImage  = "img"
	TagSVG    = "svg"
	TagPath   = "path"
)

// HeadingTags lists the heading elements h1 through h6.
var HeadingTags = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// Node is a single element or text unit in a parsed document tree.
//
// The tree is owned by its provider and is never mutated by this package.
// Node values must be comparable: two values are equal iff they denote the
// same tree node, which is what NodeSet relies on.
type Node interface {
	// Tag returns the lowercase element name, TextTag for text nodes or
	// DocumentTag for the root.
	Tag() string

	// Text returns the trimmed text content of the whole subtree.
	Text() string

	// OwnText returns the trimmed text of the node itself. For text nodes
	// this is the node data; for elements it is the concatenation of the
	// direct text children.
	OwnText() string

	// Attr looks up an attribute. The bool result is false when the
	// attribute is absent.
	Attr(name string) (string, bool)

	// Parent returns the parent node, or nil for the root.
	Parent() Node

	// Children returns the child nodes in document order, text included.
	Children() []Node
}

// NodeSet is a set of nodes keyed by identity.
type NodeSet map[Node]struct{}

// NewNodeSet returns a set containing nodes.
func NewNodeSet(nodes ...Node) NodeSet {
	s := make(NodeSet, len(nodes))
	for _, n := range nodes {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether n is in the set. A nil set contains nothing.
func (s NodeSet) Has(n Node) bool {
	_, ok := s[n]
	return ok
}

// TagSet is a set of tag names.
type TagSet map[string]struct{}

// NewTagSet returns a set containing tags.
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether tag is in the set. A nil set contains nothing.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// With returns a new set holding the tags of s plus tags. s is unchanged.
func (s TagSet) With(tags ...string) TagSet {
	out := make(TagSet, len(s)+len(tags))
	for t := range s {
		out[t] = struct{}{}
	}
	for _, t := range tags {
		out[t] = struct{}{}
	}
	return out
}

// FilterMode selects how a TagSet filters nodes.
type FilterMode int

const (
	// Exclude passes every tag not in the set. With an empty set every
	// node passes. This is the zero value.
	Exclude FilterMode = iota

	// Include passes only tags in the set.
	Include
)

// String returns the mode name.
func (m FilterMode) String() string {
	if m == Include {
		return "include"
	}
	return "exclude"
}

// Match reports whether tag passes the filter formed by tags and the mode.
// Traversal and the ancestor predicate share this single rule.
func (m FilterMode) Match(tags TagSet, tag string) bool {
	if m == Exclude {
		return !tags.Has(tag)
	}
	return tags.Has(tag)
}

// IsHeading reports whether tag is one of h1 through h6.
func IsHeading(tag string) bool {
	return HeadingLevel(tag) > 0
}

// HeadingLevel returns 1 through 6 for heading tags and 0 otherwise.
func HeadingLevel(tag string) int {
	if len(tag) != 2 || tag[0] != 'h' {
		return 0
	}
	if tag[1] < '1' || tag[1] > '6' {
		return 0
	}
	return int(tag[1] - '0')
}
