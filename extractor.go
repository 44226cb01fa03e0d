package pagescope

// ExtractResult holds the main content of an HTML page.
type ExtractResult struct {
	// Title is the page title taken from metadata.
	Title string

	// ContentHTML is the main content as HTML with navigation, footers,
	// sidebars and ads removed.
	ContentHTML string
}

// Extractor narrows a page down to its main content before traversal.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown.
	Convert(html string) (string, error)
}
