// Package goquery provides the document tree used by pagescope, built with
// goquery on top of golang.org/x/net/html.
package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/pagescope"
	"golang.org/x/net/html"
)

var (
	_ pagescope.Parser   = (*Parser)(nil)
	_ pagescope.Document = (*Document)(nil)
)

// strippedSelector matches elements that never carry readable content.
const strippedSelector = "script, style, noscript, template"

// Parser parses and sanitizes HTML.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse builds a Document from raw HTML. Script, style, noscript and
// template elements are removed along with comments, doctype nodes and
// whitespace-only text.
func (p *Parser) Parse(rawHTML string) (pagescope.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagescope.Errorf(pagescope.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find(strippedSelector).Remove()
	for _, n := range doc.Nodes {
		sanitize(n)
	}
	return &Document{doc: doc}, nil
}

// sanitize removes comments, doctypes and whitespace-only text below n.
func sanitize(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		switch {
		case c.Type == html.CommentNode, c.Type == html.DoctypeNode:
			n.RemoveChild(c)
		case c.Type == html.TextNode && strings.TrimSpace(c.Data) == "":
			n.RemoveChild(c)
		default:
			sanitize(c)
		}
		c = next
	}
}

// Document is a parsed HTML document.
type Document struct {
	doc *goquery.Document
}

// Root returns the document node.
func (d *Document) Root() pagescope.Node {
	return Wrap(d.doc.Nodes[0])
}

// Title returns the trimmed text of the first <title> element.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// Find returns the elements matching selector in document order.
func (d *Document) Find(selector string) ([]pagescope.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, pagescope.Errorf(pagescope.EINVALID, "invalid selector %q: %v", selector, err)
	}
	matches := d.doc.FindMatcher(sel)
	nodes := make([]pagescope.Node, 0, matches.Length())
	for _, n := range matches.Nodes {
		nodes = append(nodes, Wrap(n))
	}
	return nodes, nil
}

// HTML renders the subtree rooted at n.
func (d *Document) HTML(n pagescope.Node) (string, error) {
	hn, ok := Unwrap(n)
	if !ok {
		return "", pagescope.Errorf(pagescope.EINVALID, "node does not belong to a goquery document")
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, hn); err != nil {
		return "", err
	}
	return buf.String(), nil
}
