package pagescope_test

import (
	"testing"

	"github.com/fwojciec/pagescope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><head><title>Guide</title></head><body>
<nav><a href="/home">Home</a></nav>
<main>
	<h1>Install</h1>
	<p>Run the installer and wait.</p>
	<a href="#step2">Next</a>
	<img src="shot.png" alt="Screenshot">
	<footer><p>Footer text</p></footer>
</main>
</body></html>`

func TestResolveScope(t *testing.T) {
	t.Parallel()

	t.Run("defaults to the body", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page)

		s, err := pagescope.ResolveScope(doc, pagescope.ReportOptions{})

		require.NoError(t, err)
		assert.Equal(t, find(t, doc, "body"), s.Start)
		assert.Nil(t, s.End)
		assert.True(t, s.IncludeSelf)
	})

	t.Run("picks the first match of the selector", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page)

		s, err := pagescope.ResolveScope(doc, pagescope.ReportOptions{Selector: "main", ExcludeSelf: true, ChildrenOnly: true})

		require.NoError(t, err)
		assert.Equal(t, find(t, doc, "main"), s.Start)
		assert.False(t, s.IncludeSelf)
		assert.True(t, s.ChildrenOnly)
	})

	t.Run("reports an unmatched selector", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page)

		_, err := pagescope.ResolveScope(doc, pagescope.ReportOptions{Selector: "article"})

		assert.Equal(t, pagescope.ENOTFOUND, pagescope.ErrorCode(err))
	})

	t.Run("reports an invalid selector", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page)

		_, err := pagescope.ResolveScope(doc, pagescope.ReportOptions{Until: "[["})

		assert.Equal(t, pagescope.EINVALID, pagescope.ErrorCode(err))
	})

	t.Run("bounds the scope with the first match after the start", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page)

		s, err := pagescope.ResolveScope(doc, pagescope.ReportOptions{Selector: "main", Until: "footer, nav"})

		require.NoError(t, err)
		assert.Equal(t, find(t, doc, "footer"), s.End)
	})

	t.Run("leaves the scope unbounded when until never follows the start", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page)

		s, err := pagescope.ResolveScope(doc, pagescope.ReportOptions{Selector: "main", Until: "nav"})

		require.NoError(t, err)
		assert.Nil(t, s.End)
	})

	t.Run("falls back to the root without a body", func(t *testing.T) {
		t.Parallel()

		doc := &stubDocument{Document: parse(t, page)}

		s, err := pagescope.ResolveScope(doc, pagescope.ReportOptions{})

		require.NoError(t, err)
		assert.Equal(t, pagescope.DocumentTag, s.Start.Tag())
	})
}

// stubDocument finds nothing, like a document without a body.
type stubDocument struct {
	pagescope.Document
}

func (d *stubDocument) Find(string) ([]pagescope.Node, error) {
	return nil, nil
}

func TestBuildReport(t *testing.T) {
	t.Parallel()

	t.Run("collects the content of the scope", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page)

		r, err := pagescope.BuildReport(doc, pagescope.ReportOptions{Selector: "main", Until: "footer"})

		require.NoError(t, err)
		assert.Equal(t, "Guide", r.Title)
		require.Len(t, r.Headings, 1)
		assert.Equal(t, "Install", r.Headings[0].Text)
		assert.Empty(t, r.Links)
		assert.Equal(t, []*pagescope.Media{
			{Kind: pagescope.MediaHeading, Text: "Install"},
			{Kind: pagescope.MediaText, Text: "Run the installer and wait."},
			{Kind: pagescope.MediaText, Text: "Next"},
			{Kind: pagescope.MediaImage, Src: "shot.png", Alt: "Screenshot"},
		}, r.Media)
		assert.Equal(t, []string{"Run the installer and wait.", "Next"}, strs(r.Texts))
		assert.Nil(t, r.TextPaths)
		assert.Nil(t, r.MediaPaths)
	})

	t.Run("keeps fragments and bounds texts", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page)

		r, err := pagescope.BuildReport(doc, pagescope.ReportOptions{
			Selector:      "main",
			KeepFragments: true,
			MaxTextLen:    8,
		})

		require.NoError(t, err)
		require.Len(t, r.Links, 1)
		assert.Equal(t, "#step2", r.Links[0].Href)
		assert.Equal(t, []string{"27", "Next", "11"}, strs(r.Texts))
	})

	t.Run("adds the path fingerprint", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page)

		r, err := pagescope.BuildReport(doc, pagescope.ReportOptions{Selector: "footer", Paths: true})

		require.NoError(t, err)
		assert.Equal(t, []pagescope.TextPath{{Path: "footer.p", Length: 11}}, r.TextPaths)
		assert.Empty(t, r.MediaPaths)
		assert.Equal(t, pagescope.NodeCount{Nodes: 3, Text: 1}, r.Count)
	})

	t.Run("fails on an anchor without href", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><a>broken</a></body>`)

		_, err := pagescope.BuildReport(doc, pagescope.ReportOptions{})

		assert.Equal(t, pagescope.EATTRIBUTE, pagescope.ErrorCode(err))
	})
}
