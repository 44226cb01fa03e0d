package main

import (
	"math"

	"github.com/fwojciec/pagescope"
)

// Run executes the headings command.
func (c *HeadingsCmd) Run(deps *Dependencies) error {
	p, err := loadPage(deps, c.Source)
	if err != nil {
		return deps.fail(err)
	}
	s, err := p.scope(deps, c.ScopeFlags.options())
	if err != nil {
		return deps.fail(err)
	}

	headings := pagescope.Headings(s)
	if deps.structured() {
		if headings == nil {
			headings = []pagescope.Heading{}
		}
		return deps.encode(headings)
	}
	writeHeadings(deps.Stdout, headings)
	return nil
}

// Run executes the links command.
func (c *LinksCmd) Run(deps *Dependencies) error {
	p, err := loadPage(deps, c.Source)
	if err != nil {
		return deps.fail(err)
	}
	s, err := p.scope(deps, c.ScopeFlags.options())
	if err != nil {
		return deps.fail(err)
	}

	links, err := pagescope.Links(s, !c.KeepFragments)
	if err != nil {
		return deps.fail(err)
	}
	if deps.structured() {
		if links == nil {
			links = []pagescope.Link{}
		}
		return deps.encode(links)
	}
	writeLinks(deps.Stdout, links)
	return nil
}

// Run executes the media command.
func (c *MediaCmd) Run(deps *Dependencies) error {
	p, err := loadPage(deps, c.Source)
	if err != nil {
		return deps.fail(err)
	}
	s, err := p.scope(deps, c.ScopeFlags.options())
	if err != nil {
		return deps.fail(err)
	}

	records, err := pagescope.MediaRecords(s, c.HeadingsAsText).Collect()
	if err != nil {
		return deps.fail(err)
	}
	items := boundMedia(records, c.LengthFlags)

	if deps.structured() {
		return deps.encode(items)
	}
	writeMedia(deps.Stdout, items)
	return nil
}

// boundMedia applies the length flags to the text of text and heading
// records.
func boundMedia(records []*pagescope.Media, flags LengthFlags) []mediaItem {
	var texts []string
	for _, m := range records {
		if m.Kind == pagescope.MediaText || m.Kind == pagescope.MediaHeading {
			texts = append(texts, m.Text)
		}
	}
	bounded := boundTexts(texts, flags)

	items := make([]mediaItem, 0, len(records))
	for _, m := range records {
		item := mediaItem{Kind: m.Kind, Src: m.Src, Alt: m.Alt, Paths: m.Paths}
		if m.Kind == pagescope.MediaText || m.Kind == pagescope.MediaHeading {
			item.Text = &bounded[0]
			bounded = bounded[1:]
		}
		items = append(items, item)
	}
	return items
}

// boundTexts bounds texts by the length flags. A zero MaxLen leaves
// texts unbounded.
func boundTexts(texts []string, flags LengthFlags) []pagescope.TextItem {
	maxLen := flags.MaxLen
	if maxLen <= 0 {
		maxLen = math.MaxInt
	}
	return pagescope.HandleTextLen(texts, maxLen, flags.Truncate)
}

// Run executes the texts command.
func (c *TextsCmd) Run(deps *Dependencies) error {
	p, err := loadPage(deps, c.Source)
	if err != nil {
		return deps.fail(err)
	}
	s, err := p.scope(deps, c.ScopeFlags.options())
	if err != nil {
		return deps.fail(err)
	}

	var texts []string
	for _, n := range pagescope.TextNodes(s) {
		texts = append(texts, n.Text())
	}

	var items []pagescope.TextItem
	if c.MaxTokens > 0 {
		items, err = pagescope.ClipTokens(deps.Ctx, deps.Tokens, texts, c.MaxTokens, c.Truncate)
		if err != nil {
			return deps.fail(err)
		}
	} else {
		items = boundTexts(texts, c.LengthFlags)
	}

	if deps.structured() {
		return deps.encode(items)
	}
	writeTexts(deps.Stdout, items)
	return nil
}

// Run executes the count command.
func (c *CountCmd) Run(deps *Dependencies) error {
	p, err := loadPage(deps, c.Source)
	if err != nil {
		return deps.fail(err)
	}
	s, err := p.scope(deps, pagescope.ReportOptions{Selector: c.Select})
	if err != nil {
		return deps.fail(err)
	}

	count := pagescope.CountNodes(s.Start)
	if c.Children {
		count = pagescope.CountChildNodes(s.Start)
	}

	if deps.structured() {
		return deps.encode(count)
	}
	writeCount(deps.Stdout, count)
	return nil
}

// pathsResult is the structured output of the paths command.
type pathsResult struct {
	TextPaths  []pagescope.TextPath  `json:"textPaths" yaml:"text_paths"`
	MediaPaths []pagescope.MediaPath `json:"mediaPaths" yaml:"media_paths"`
}

// Run executes the paths command.
func (c *PathsCmd) Run(deps *Dependencies) error {
	p, err := loadPage(deps, c.Source)
	if err != nil {
		return deps.fail(err)
	}
	s, err := p.scope(deps, pagescope.ReportOptions{Selector: c.Select})
	if err != nil {
		return deps.fail(err)
	}

	texts, media, err := pagescope.MediaPaths(s.Start, pagescope.PathOptions{
		Prefix: c.Prefix,
		Text:   !c.NoText,
		Media:  !c.NoMedia,
	})
	if err != nil {
		return deps.fail(err)
	}

	if deps.structured() {
		res := pathsResult{TextPaths: texts, MediaPaths: media}
		if res.TextPaths == nil {
			res.TextPaths = []pagescope.TextPath{}
		}
		if res.MediaPaths == nil {
			res.MediaPaths = []pagescope.MediaPath{}
		}
		return deps.encode(res)
	}
	writePaths(deps.Stdout, texts, media)
	return nil
}
