package main_test

import (
	"testing"

	"github.com/fwojciec/pagescope"
	main "github.com/fwojciec/pagescope/cmd/pagescope"
	"github.com/fwojciec/pagescope/mock"
	"github.com/fwojciec/pagescope/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yamlv3 "gopkg.in/yaml.v3"
)

func TestReportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints every section of the report", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		cmd := &main.ReportCmd{Source: writePage(t, docPage)}
		cmd.Select = "article"

		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.Contains(t, out, "Title: Guide\n")
		assert.Contains(t, out, "Headings:\n# Intro\n## Setup\n")
		assert.Contains(t, out, "Links:\n/docs/install\tInstall guide\n")
		assert.Contains(t, out, "Texts:\nPagescope reads pages.\n")
		assert.NotContains(t, out, "Paths:")
	})

	t.Run("encodes the report as yaml", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Encoder = yaml.NewEncoder()
		cmd := &main.ReportCmd{Source: writePage(t, docPage), Paths: true}
		cmd.Select = "article"
		cmd.MaxLen = 10

		require.NoError(t, cmd.Run(deps))

		var got struct {
			Title     string `yaml:"title"`
			Texts     []any  `yaml:"texts"`
			TextPaths []struct {
				Path string `yaml:"path"`
			} `yaml:"text_paths"`
		}
		require.NoError(t, yamlv3.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, "Guide", got.Title)
		assert.Equal(t, []any{22, "Jump", 38, 13}, got.Texts)
		require.NotEmpty(t, got.TextPaths)
		assert.Equal(t, "article.h1", got.TextPaths[0].Path)
	})

	t.Run("uses the extractor title when the content has none", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(html string) (*pagescope.ExtractResult, error) {
				return &pagescope.ExtractResult{
					Title:       "Extracted",
					ContentHTML: "<div><h1>Main</h1></div>",
				}, nil
			},
		}
		cmd := &main.ReportCmd{Source: writePage(t, docPage)}

		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "Title: Extracted\n")
		assert.Contains(t, stdout.String(), "# Main\n")
		assert.NotContains(t, stdout.String(), "Intro")
	})

	t.Run("prints error message on failure", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		cmd := &main.ReportCmd{Source: writePage(t, docPage)}
		cmd.Select = "[["

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pagescope.EINVALID, pagescope.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: invalid selector")
	})
}
