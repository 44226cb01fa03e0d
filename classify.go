package pagescope

import (
	"strings"
	"unicode/utf8"
)

// Heading is a heading element found by Headings.
type Heading struct {
	Node  Node   `json:"-" yaml:"-"`
	Level int    `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// Headings returns the h1-h6 elements selected by s in document order.
// The tag filter and text inclusion of s are replaced; range, ignore set,
// IncludeSelf and ChildrenOnly are honored.
func Headings(s Scope) []Heading {
	s.Tags = NewTagSet(HeadingTags...)
	s.Mode = Include
	s.IncludeText = false

	var headings []Heading
	it := Traverse(s)
	for it.Next() {
		n := it.Node()
		headings = append(headings, Heading{
			Node:  n,
			Level: HeadingLevel(n.Tag()),
			Text:  n.Text(),
		})
	}
	return headings
}

// Link is an anchor element and its target.
type Link struct {
	Node Node   `json:"-" yaml:"-"`
	Href string `json:"href" yaml:"href"`
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

// ExtractLink returns the href of an anchor. The bool result is false when
// ignoreFragments is set and the target is a same-page fragment ("#...").
// An anchor without an href attribute is an EATTRIBUTE error.
func ExtractLink(n Node, ignoreFragments bool) (string, bool, error) {
	href, ok := n.Attr("href")
	if !ok {
		return "", false, Errorf(EATTRIBUTE, "<%s> missing required attribute %q", n.Tag(), "href")
	}
	if ignoreFragments && strings.HasPrefix(href, "#") {
		return "", false, nil
	}
	return href, true, nil
}

// Links returns the anchors selected by s in document order. Fragment
// links are dropped when ignoreFragments is set. The first anchor without
// an href aborts the call with an EATTRIBUTE error.
func Links(s Scope, ignoreFragments bool) ([]Link, error) {
	s.Tags = NewTagSet(TagAnchor)
	s.Mode = Include
	s.IncludeText = false

	var links []Link
	it := Traverse(s)
	for it.Next() {
		n := it.Node()
		href, ok, err := ExtractLink(n, ignoreFragments)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		links = append(links, Link{Node: n, Href: href, Text: n.Text()})
	}
	return links, nil
}

// MediaNodes returns a lazy sequence of the image, svg and text nodes
// selected by s.
//
// When headingsAsText is false, heading elements are yielded as units and
// anything nested under a heading is vetoed, so a heading's inner text is
// never reported twice. When headingsAsText is true, headings are not
// yielded and every media or text node is, including those inside
// headings.
func MediaNodes(s Scope, headingsAsText bool) *Iterator {
	s.Tags = NewTagSet(TagImage, TagSVG, TextTag)
	s.Mode = Include
	s.IncludeText = true

	if headingsAsText {
		return Traverse(s)
	}

	s.Tags = s.Tags.With(HeadingTags...)
	headings := NewTagSet(HeadingTags...)
	return FilteredTraverse(s, func(n Node) bool {
		return !HasAncestor(n, nil, headings, Include)
	})
}

// TextNodes returns the text nodes selected by s. The tag filter of s is
// replaced with text-only.
func TextNodes(s Scope) []Node {
	s.Tags = NewTagSet(TextTag)
	s.Mode = Include
	s.IncludeText = true
	return Traverse(s).Collect()
}

// TextLengths returns the rune length of each text node selected by s.
func TextLengths(s Scope) []int {
	nodes := TextNodes(s)
	if len(nodes) == 0 {
		return nil
	}
	lengths := make([]int, len(nodes))
	for i, n := range nodes {
		lengths[i] = utf8.RuneCountInString(n.Text())
	}
	return lengths
}

// NodeCount holds node totals for a subtree.
type NodeCount struct {
	Nodes int `json:"nodes" yaml:"nodes"`
	Text  int `json:"text" yaml:"text"`
}

// CountNodes counts every node in the subtree rooted at n, n included, and
// how many of them are text nodes.
func CountNodes(n Node) NodeCount {
	return countNodes(Scope{Start: n, IncludeSelf: true, IncludeText: true})
}

// CountChildNodes is like CountNodes but only counts the direct children
// of n.
func CountChildNodes(n Node) NodeCount {
	return countNodes(Scope{Start: n, ChildrenOnly: true, IncludeText: true})
}

func countNodes(s Scope) NodeCount {
	var c NodeCount
	it := Traverse(s)
	for it.Next() {
		c.Nodes++
		if it.Node().Tag() == TextTag {
			c.Text++
		}
	}
	return c
}
