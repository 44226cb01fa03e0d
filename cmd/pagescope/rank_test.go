package main_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/pagescope"
	main "github.com/fwojciec/pagescope/cmd/pagescope"
	"github.com/fwojciec/pagescope/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("ranks the texts of the scope", func(t *testing.T) {
		t.Parallel()

		var gotTexts []string
		var gotLimit int
		deps, stdout, _ := newDeps()
		deps.Retriever = &mock.Retriever{
			RankFn: func(_ context.Context, query string, texts []string, limit int) ([]pagescope.Match, error) {
				assert.Equal(t, "install", query)
				gotTexts, gotLimit = texts, limit
				return []pagescope.Match{
					{Index: 1, Text: texts[1], Score: 0.91},
					{Index: 0, Text: texts[0], Score: 0.42},
				}, nil
			},
		}
		cmd := &main.RankCmd{Query: "install", Source: writePage(t, `<body><p>Read this.</p><p>Install it.</p></body>`), Limit: 2}

		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, []string{"Read this.", "Install it."}, gotTexts)
		assert.Equal(t, 2, gotLimit)
		assert.Equal(t, "0.9100\tInstall it.\n0.4200\tRead this.\n", stdout.String())
	})

	t.Run("returns retriever errors", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Retriever = &mock.Retriever{
			RankFn: func(_ context.Context, _ string, _ []string, _ int) ([]pagescope.Match, error) {
				return nil, errors.New("quota exceeded")
			},
		}
		cmd := &main.RankCmd{Query: "q", Source: writePage(t, `<body><p>x</p></body>`)}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: ")
	})
}
