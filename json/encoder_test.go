package json_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/pagescope"
	"github.com/fwojciec/pagescope/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_Encode(t *testing.T) {
	t.Parallel()

	t.Run("encodes elided texts as lengths", func(t *testing.T) {
		t.Parallel()

		r := &pagescope.Report{
			URL:   "https://example.com/?a=1&b=2",
			Texts: pagescope.HandleTextLen([]string{"ok", "hello world"}, 5, false),
		}

		var buf bytes.Buffer
		require.NoError(t, json.NewEncoder().Encode(&buf, r))

		out := buf.String()
		assert.Contains(t, out, `"url": "https://example.com/?a=1&b=2"`)
		assert.Contains(t, out, "\"texts\": [\n    \"ok\",\n    11\n  ]")
		assert.NotContains(t, out, `"error"`)
	})

	t.Run("reports unsupported values", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := json.NewEncoder().Encode(&buf, make(chan int))

		require.Error(t, err)
	})

	t.Run("uses json extension", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, ".json", json.NewEncoder().Extension())
	})
}
