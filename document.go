package pagescope

// Document is a parsed, sanitized HTML document.
type Document interface {
	// Root returns the document root node.
	Root() Node

	// Title returns the trimmed <title> text, or "" when absent.
	Title() string

	// Find returns the nodes matching a CSS selector in document order.
	// Returns an EINVALID error for a selector that does not compile.
	Find(selector string) ([]Node, error)

	// HTML renders the subtree rooted at n back to markup.
	HTML(n Node) (string, error)
}

// Parser builds Documents from raw HTML.
//
// Implementations remove script and style elements, comments and
// whitespace-only text before returning, so the engine never sees them.
type Parser interface {
	Parse(html string) (Document, error)
}
