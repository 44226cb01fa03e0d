package pagescope_test

import (
	"testing"

	"github.com/fwojciec/pagescope"
	"github.com/fwojciec/pagescope/goquery"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) pagescope.Document {
	t.Helper()
	doc, err := goquery.NewParser().Parse(html)
	require.NoError(t, err)
	return doc
}

func find(t *testing.T, doc pagescope.Document, selector string) pagescope.Node {
	t.Helper()
	nodes, err := doc.Find(selector)
	require.NoError(t, err)
	require.NotEmpty(t, nodes, "no match for %q", selector)
	return nodes[0]
}

// labels renders nodes as their tags, with text nodes shown as "#text:<text>".
func labels(nodes []pagescope.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		if n.Tag() == pagescope.TextTag {
			out[i] = "#text:" + n.Text()
			continue
		}
		out[i] = n.Tag()
	}
	return out
}
