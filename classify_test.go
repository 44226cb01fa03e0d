package pagescope_test

import (
	"testing"

	"github.com/fwojciec/pagescope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadings(t *testing.T) {
	t.Parallel()

	t.Run("returns headings with their text", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div><h1>Intro</h1><p><span>body text</span></p></div>`)

		headings := pagescope.Headings(pagescope.Scope{Start: find(t, doc, "div")})

		require.Len(t, headings, 1)
		assert.Equal(t, "Intro", headings[0].Text)
		assert.Equal(t, 1, headings[0].Level)
		assert.Equal(t, find(t, doc, "h1"), headings[0].Node)
	})

	t.Run("keeps document order across levels", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<main><h2>B</h2><section><h1> A </h1><h6>F</h6></section></main>`)

		headings := pagescope.Headings(pagescope.Scope{Start: find(t, doc, "main")})

		require.Len(t, headings, 3)
		assert.Equal(t, "B", headings[0].Text)
		assert.Equal(t, 2, headings[0].Level)
		assert.Equal(t, "A", headings[1].Text)
		assert.Equal(t, 6, headings[2].Level)
	})

	t.Run("overrides the caller's tag filter", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div><h1>Intro</h1></div>`)

		headings := pagescope.Headings(pagescope.Scope{
			Start: find(t, doc, "div"),
			Tags:  pagescope.NewTagSet("h1"),
		})

		assert.Len(t, headings, 1)
	})
}

func TestLinks(t *testing.T) {
	t.Parallel()

	const html = `<div><a href="/home">Home</a><a href="#sec1">Section</a><a href="/about">About</a></div>`

	t.Run("drops fragment links when asked", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, html)

		links, err := pagescope.Links(pagescope.Scope{Start: find(t, doc, "div")}, true)

		require.NoError(t, err)
		assert.Equal(t, []string{"/home", "/about"}, hrefs(links))
	})

	t.Run("keeps fragment links otherwise", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, html)

		links, err := pagescope.Links(pagescope.Scope{Start: find(t, doc, "div")}, false)

		require.NoError(t, err)
		assert.Equal(t, []string{"/home", "#sec1", "/about"}, hrefs(links))
		assert.Equal(t, "Section", links[1].Text)
	})

	t.Run("fails on an anchor without href", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div><a href="/ok">ok</a><a name="top">top</a></div>`)

		links, err := pagescope.Links(pagescope.Scope{Start: find(t, doc, "div")}, true)

		require.Error(t, err)
		assert.Equal(t, pagescope.EATTRIBUTE, pagescope.ErrorCode(err))
		assert.Nil(t, links)
	})

	t.Run("returns an empty result without anchors", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div><p>none</p></div>`)

		links, err := pagescope.Links(pagescope.Scope{Start: find(t, doc, "div")}, true)

		require.NoError(t, err)
		assert.Empty(t, links)
	})
}

func hrefs(links []pagescope.Link) []string {
	out := make([]string, len(links))
	for i, l := range links {
		out[i] = l.Href
	}
	return out
}

func TestMediaNodes(t *testing.T) {
	t.Parallel()

	t.Run("yields the heading instead of its nested media", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div><h1><img src="a.png"></h1></div>`)

		nodes := pagescope.MediaNodes(pagescope.Scope{Start: find(t, doc, "div")}, false).Collect()

		assert.Equal(t, []string{"h1"}, labels(nodes))
	})

	t.Run("yields nested media when headings are text", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div><h1><img src="a.png"></h1></div>`)

		nodes := pagescope.MediaNodes(pagescope.Scope{Start: find(t, doc, "div")}, true).Collect()

		assert.Equal(t, []string{"img"}, labels(nodes))
	})

	t.Run("mixes text images and svg in document order", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div><h2>Title <em>here</em></h2><p>Intro</p><img src="a.png"><svg><path d="M0"></path></svg><p>End</p></div>`)
		div := find(t, doc, "div")

		assert.Equal(t,
			[]string{"h2", "#text:Intro", "img", "svg", "#text:End"},
			labels(pagescope.MediaNodes(pagescope.Scope{Start: div}, false).Collect()))
		assert.Equal(t,
			[]string{"#text:Title", "#text:here", "#text:Intro", "img", "svg", "#text:End"},
			labels(pagescope.MediaNodes(pagescope.Scope{Start: div}, true).Collect()))
	})
}

func TestTextNodes(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<div><p>héllo</p><p>a <b>bc</b></p></div>`)
	s := pagescope.Scope{Start: find(t, doc, "div")}

	assert.Equal(t, []string{"#text:héllo", "#text:a", "#text:bc"}, labels(pagescope.TextNodes(s)))
	assert.Equal(t, []int{5, 1, 2}, pagescope.TextLengths(s))
}

func TestTextLengths_Empty(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<div><img src="x"></div>`)

	assert.Nil(t, pagescope.TextLengths(pagescope.Scope{Start: find(t, doc, "div")}))
}

func TestCountNodes(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<div><p>hi</p><p>yo <b>x</b></p></div>`)
	div := find(t, doc, "div")

	assert.Equal(t, pagescope.NodeCount{Nodes: 7, Text: 3}, pagescope.CountNodes(div))
	assert.Equal(t, pagescope.NodeCount{Nodes: 2, Text: 0}, pagescope.CountChildNodes(div))
}
