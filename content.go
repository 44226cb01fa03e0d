package pagescope

// Framework identifies the documentation generator that produced a page.
type Framework string

// Supported frameworks.
const (
	FrameworkUnknown    Framework = ""
	FrameworkDocusaurus Framework = "docusaurus"
	FrameworkMkDocs     Framework = "mkdocs"
	FrameworkSphinx     Framework = "sphinx"
	FrameworkVitePress  Framework = "vitepress"
	FrameworkVuePress   Framework = "vuepress"
	FrameworkGitBook    Framework = "gitbook"
	FrameworkNextra     Framework = "nextra"
)

// ContentDetector locates the main content region of a page, so a scope
// can start there instead of at <body> with its navigation and footers.
type ContentDetector interface {
	// Detect returns the framework of doc and a CSS selector for its main
	// content region. The selector is empty when the framework is unknown.
	Detect(doc Document) (Framework, string)
}

// DetectSelector fills in opts.Selector from the content region found by
// d when no selector was given. opts is returned unchanged when d is nil
// or finds nothing.
func DetectSelector(d ContentDetector, doc Document, opts ReportOptions) ReportOptions {
	if d == nil || opts.Selector != "" {
		return opts
	}
	if _, selector := d.Detect(doc); selector != "" {
		opts.Selector = selector
	}
	return opts
}
