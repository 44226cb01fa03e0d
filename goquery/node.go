package goquery

import (
	"strings"

	"github.com/fwojciec/pagescope"
	"golang.org/x/net/html"
)

var _ pagescope.Node = node{}

// node adapts an *html.Node to pagescope.Node. It is a value type holding a
// single pointer, so equal values denote the same tree node.
type node struct {
	n *html.Node
}

// Wrap returns n as a pagescope.Node, or nil when n is nil.
func Wrap(n *html.Node) pagescope.Node {
	if n == nil {
		return nil
	}
	return node{n: n}
}

// Unwrap returns the *html.Node behind a Node produced by this package.
func Unwrap(n pagescope.Node) (*html.Node, bool) {
	x, ok := n.(node)
	if !ok {
		return nil, false
	}
	return x.n, true
}

func (x node) Tag() string {
	switch x.n.Type {
	case html.TextNode:
		return pagescope.TextTag
	case html.DocumentNode:
		return pagescope.DocumentTag
	}
	return strings.ToLower(x.n.Data)
}

func (x node) Text() string {
	if x.n.Type == html.TextNode {
		return strings.TrimSpace(x.n.Data)
	}
	var b strings.Builder
	textContent(&b, x.n)
	return strings.TrimSpace(b.String())
}

func (x node) OwnText() string {
	if x.n.Type == html.TextNode {
		return strings.TrimSpace(x.n.Data)
	}
	var b strings.Builder
	for c := x.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(b.String())
}

func (x node) Attr(name string) (string, bool) {
	for _, a := range x.n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

func (x node) Parent() pagescope.Node {
	return Wrap(x.n.Parent)
}

func (x node) Children() []pagescope.Node {
	var children []pagescope.Node
	for c := x.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode || c.Type == html.TextNode {
			children = append(children, node{n: c})
		}
	}
	return children
}

func textContent(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		textContent(b, c)
	}
}
