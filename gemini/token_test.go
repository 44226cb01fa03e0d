package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pagescope"
	"github.com/fwojciec/pagescope/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCounter_CountTokens(t *testing.T) {
	t.Parallel()

	tc, err := gemini.NewTokenCounter("")
	require.NoError(t, err)

	t.Run("counts tokens in text", func(t *testing.T) {
		t.Parallel()

		count, err := tc.CountTokens(context.Background(), "Hello, world!")

		require.NoError(t, err)
		assert.Positive(t, count)
	})

	t.Run("empty string returns zero", func(t *testing.T) {
		t.Parallel()

		count, err := tc.CountTokens(context.Background(), "")

		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("clips texts to a token budget", func(t *testing.T) {
		t.Parallel()

		items, err := pagescope.ClipTokens(context.Background(), tc, []string{"short", "a much longer paragraph of documentation text that will not fit"}, 4, false)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.False(t, items[0].Elided)
		assert.True(t, items[1].Elided)
	})

	t.Run("stops on canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := tc.CountTokens(ctx, "Hello")

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewTokenCounter_UnknownModel(t *testing.T) {
	t.Parallel()

	_, err := gemini.NewTokenCounter("not-a-model")

	assert.Equal(t, pagescope.EINVALID, pagescope.ErrorCode(err))
}
