package pagescope

import "unicode/utf8"

// TextPath pairs a dotted tag path with the length of the text found there.
type TextPath struct {
	Path   string `json:"path" yaml:"path"`
	Length int    `json:"length" yaml:"length"`
}

// MediaPath pairs a dotted tag path with a media descriptor: Src for
// images (the alt text when src is absent), SVG path data for svg.
type MediaPath struct {
	Path string   `json:"path" yaml:"path"`
	Src  string   `json:"src,omitempty" yaml:"src,omitempty"`
	Alt  string   `json:"alt,omitempty" yaml:"alt,omitempty"`
	SVG  []string `json:"svg,omitempty" yaml:"svg,omitempty"`
}

// PathOptions configures MediaPaths.
type PathOptions struct {
	// Prefix is prepended to every label. Empty means labels start with
	// the tag of the node passed to MediaPaths.
	Prefix string

	// Text collects TextPath entries.
	Text bool

	// Media collects MediaPath entries.
	Media bool
}

// MediaPaths builds a structural fingerprint of the subtree rooted at n.
//
// Every element gets a label made of its ancestors' tags joined by ".",
// starting at n. Elements with non-empty own text yield a TextPath with
// the rune length of that text; images and svgs yield a MediaPath. Text
// nodes are accounted to their parent element and get no label of their
// own. A category disabled in opts is neither computed nor returned.
//
// The walk runs over the raw subtree; no scope filtering applies.
func MediaPaths(n Node, opts PathOptions) ([]TextPath, []MediaPath, error) {
	if n == nil || (!opts.Text && !opts.Media) {
		return nil, nil, nil
	}
	b := &pathBuilder{opts: opts}
	if err := b.walk(n, opts.Prefix); err != nil {
		return nil, nil, err
	}
	return b.texts, b.media, nil
}

type pathBuilder struct {
	opts  PathOptions
	texts []TextPath
	media []MediaPath
}

func (b *pathBuilder) walk(n Node, parent string) error {
	tag := n.Tag()
	if tag == TextTag {
		return nil
	}

	path := tag
	if parent != "" {
		path = parent + "." + tag
	}

	if b.opts.Text {
		if text := n.OwnText(); text != "" {
			b.texts = append(b.texts, TextPath{Path: path, Length: utf8.RuneCountInString(text)})
		}
	}

	if b.opts.Media {
		switch tag {
		case TagImage:
			src, hasSrc := n.Attr("src")
			alt, hasAlt := n.Attr("alt")
			if !hasSrc && !hasAlt {
				return Errorf(EATTRIBUTE, "<%s> at %s has neither src nor alt", tag, path)
			}
			if !hasSrc {
				src = alt
			}
			b.media = append(b.media, MediaPath{Path: path, Src: src, Alt: alt})
		case TagSVG:
			b.media = append(b.media, MediaPath{Path: path, SVG: svgPaths(n)})
		}
	}

	for _, c := range n.Children() {
		if err := b.walk(c, path); err != nil {
			return err
		}
	}
	return nil
}
