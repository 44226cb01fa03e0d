package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/pagescope"
)

// structured reports whether results go through the encoder.
func (deps *Dependencies) structured() bool {
	return deps.Encoder != nil
}

// encode writes v with the configured encoder.
func (deps *Dependencies) encode(v any) error {
	return deps.Encoder.Encode(deps.Stdout, v)
}

// fail prints err the way every command reports errors and returns it.
func (deps *Dependencies) fail(err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", pagescope.ErrorMessage(err))
	return err
}

// oneLine collapses whitespace runs so a text fits on a single output line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func writeHeadings(w io.Writer, headings []pagescope.Heading) {
	for _, h := range headings {
		fmt.Fprintf(w, "%s %s\n", strings.Repeat("#", h.Level), oneLine(h.Text))
	}
}

func writeLinks(w io.Writer, links []pagescope.Link) {
	for _, l := range links {
		fmt.Fprintf(w, "%s\t%s\n", l.Href, oneLine(l.Text))
	}
}

func writeTexts(w io.Writer, texts []pagescope.TextItem) {
	for _, t := range texts {
		if t.Elided {
			fmt.Fprintf(w, "[%d]\n", t.Length)
			continue
		}
		fmt.Fprintln(w, oneLine(t.Text))
	}
}

// mediaItem is a media record with its text bounded.
type mediaItem struct {
	Kind  pagescope.MediaKind `json:"kind" yaml:"kind"`
	Src   string              `json:"src,omitempty" yaml:"src,omitempty"`
	Alt   string              `json:"alt,omitempty" yaml:"alt,omitempty"`
	Paths []string            `json:"paths,omitempty" yaml:"paths,omitempty"`
	Text  *pagescope.TextItem `json:"text,omitempty" yaml:"text,omitempty"`
}

func writeMedia(w io.Writer, items []mediaItem) {
	for _, m := range items {
		switch m.Kind {
		case pagescope.MediaImage:
			fmt.Fprintf(w, "image\t%s\t%s\n", m.Src, oneLine(m.Alt))
		case pagescope.MediaSVG:
			fmt.Fprintf(w, "svg\t%d paths\n", len(m.Paths))
		default:
			text := oneLine(m.Text.Text)
			if m.Text.Elided {
				text = fmt.Sprintf("[%d]", m.Text.Length)
			}
			fmt.Fprintf(w, "%s\t%s\n", m.Kind, text)
		}
	}
}

func writeCount(w io.Writer, c pagescope.NodeCount) {
	fmt.Fprintf(w, "nodes: %d\ntext: %d\n", c.Nodes, c.Text)
}

func writePaths(w io.Writer, texts []pagescope.TextPath, media []pagescope.MediaPath) {
	for _, p := range texts {
		fmt.Fprintf(w, "%s\t%d\n", p.Path, p.Length)
	}
	for _, p := range media {
		switch {
		case len(p.SVG) > 0:
			fmt.Fprintf(w, "%s\tsvg %d paths\n", p.Path, len(p.SVG))
		case p.Src != "":
			fmt.Fprintf(w, "%s\t%s\n", p.Path, p.Src)
		default:
			fmt.Fprintf(w, "%s\t%s\n", p.Path, p.Alt)
		}
	}
}

// writeReport prints the text form of a report, one section per field.
func writeReport(w io.Writer, r *pagescope.Report) {
	if r.URL != "" {
		fmt.Fprintf(w, "URL: %s\n", r.URL)
	}
	if r.Title != "" {
		fmt.Fprintf(w, "Title: %s\n", r.Title)
	}
	if r.Error != "" {
		fmt.Fprintf(w, "Error: %s\n", r.Error)
		return
	}

	fmt.Fprintln(w, "\nHeadings:")
	writeHeadings(w, r.Headings)
	fmt.Fprintln(w, "\nLinks:")
	writeLinks(w, r.Links)
	fmt.Fprintln(w, "\nTexts:")
	writeTexts(w, r.Texts)
	if len(r.TextPaths) > 0 || len(r.MediaPaths) > 0 {
		fmt.Fprintln(w, "\nPaths:")
		writePaths(w, r.TextPaths, r.MediaPaths)
	}
	fmt.Fprintln(w, "\nCount:")
	writeCount(w, r.Count)
}
