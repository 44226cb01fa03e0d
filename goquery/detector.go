package goquery

import (
	"strings"

	"github.com/fwojciec/pagescope"
)

var _ pagescope.ContentDetector = (*Detector)(nil)

// contentSelectors maps each framework to the CSS selector of the element
// holding the page body, without sidebars, navbars and footers.
var contentSelectors = map[pagescope.Framework]string{
	pagescope.FrameworkDocusaurus: "article",
	pagescope.FrameworkMkDocs:     ".md-content",
	pagescope.FrameworkSphinx:     "[role='main'], div.body",
	pagescope.FrameworkVitePress:  ".vp-doc",
	pagescope.FrameworkVuePress:   ".theme-default-content",
	pagescope.FrameworkGitBook:    "main",
	pagescope.FrameworkNextra:     "article",
}

// Detector identifies documentation frameworks from framework-specific
// CSS classes, data attributes, meta tags and structural markers.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the framework of doc and the selector of its content
// region. Only selectors that match something in doc are returned.
func (d *Detector) Detect(doc pagescope.Document) (pagescope.Framework, string) {
	framework := d.framework(doc)
	selector, ok := contentSelectors[framework]
	if !ok || !has(doc, selector) {
		return framework, ""
	}
	return framework, selector
}

func (d *Detector) framework(doc pagescope.Document) pagescope.Framework {
	// Meta generator tags are the most reliable marker when present.
	if framework := fromMetaGenerator(doc); framework != pagescope.FrameworkUnknown {
		return framework
	}

	switch {
	case has(doc, "#__docusaurus_skipToContent_fallback"),
		has(doc, ".theme-doc-sidebar-container"),
		has(doc, "[data-rh]") && has(doc, "[data-theme]"):
		return pagescope.FrameworkDocusaurus
	case has(doc, "[data-md-color-scheme]"),
		has(doc, "[data-md-component]"),
		has(doc, ".md-nav--primary"):
		return pagescope.FrameworkMkDocs
	case has(doc, ".toctree-wrapper"),
		has(doc, ".wy-nav-side"),
		has(doc, ".sphinxsidebar"):
		return pagescope.FrameworkSphinx
	// VitePress before VuePress: it is its successor and shares markers.
	case has(doc, "#VPContent"), has(doc, ".VPDoc"):
		return pagescope.FrameworkVitePress
	case has(doc, ".theme-default-content"),
		has(doc, ".vuepress-navbar"):
		return pagescope.FrameworkVuePress
	case has(doc, "[data-testid='space.sidebar']"),
		gitBookClasses(doc) >= 2:
		return pagescope.FrameworkGitBook
	case has(doc, ".nextra-navbar"),
		has(doc, ".nextra-sidebar"),
		has(doc, ".nextra-toc"):
		return pagescope.FrameworkNextra
	}
	return pagescope.FrameworkUnknown
}

func fromMetaGenerator(doc pagescope.Document) pagescope.Framework {
	metas, _ := doc.Find("meta[name='generator']")
	var generator string
	for _, m := range metas {
		if content, ok := m.Attr("content"); ok {
			generator = strings.ToLower(content)
		}
	}
	if generator == "" {
		return pagescope.FrameworkUnknown
	}

	for _, f := range []pagescope.Framework{
		pagescope.FrameworkSphinx,
		pagescope.FrameworkGitBook,
		pagescope.FrameworkDocusaurus,
		pagescope.FrameworkMkDocs,
		pagescope.FrameworkVitePress,
		pagescope.FrameworkVuePress,
		pagescope.FrameworkNextra,
	} {
		if strings.Contains(generator, string(f)) {
			return f
		}
	}
	return pagescope.FrameworkUnknown
}

// gitBookClasses counts the GitBook theme classes on the html element.
func gitBookClasses(doc pagescope.Document) int {
	count := 0
	for _, class := range []string{"circular-corners", "theme-clean", "tint"} {
		if has(doc, "html."+class) {
			count++
		}
	}
	return count
}

func has(doc pagescope.Document, selector string) bool {
	nodes, err := doc.Find(selector)
	return err == nil && len(nodes) > 0
}
