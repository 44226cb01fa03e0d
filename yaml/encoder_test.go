package yaml_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/pagescope"
	"github.com/fwojciec/pagescope/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_Encode(t *testing.T) {
	t.Parallel()

	t.Run("encodes a report", func(t *testing.T) {
		t.Parallel()

		r := &pagescope.Report{
			URL:      "https://example.com/",
			Headings: []pagescope.Heading{},
			Texts:    pagescope.HandleTextLen([]string{"ok", "hello world"}, 5, false),
		}

		var buf bytes.Buffer
		require.NoError(t, yaml.NewEncoder().Encode(&buf, r))

		out := buf.String()
		assert.Contains(t, out, "url: https://example.com/\n")
		assert.Contains(t, out, "headings: []\n")
		assert.Contains(t, out, "- ok\n")
		assert.Contains(t, out, "- 11\n")
		assert.NotContains(t, out, "error:")
	})

	t.Run("uses yaml extension", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, ".yaml", yaml.NewEncoder().Extension())
	})
}
