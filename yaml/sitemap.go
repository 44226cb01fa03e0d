package yaml

import (
	"strings"

	"github.com/fwojciec/pagescope"
	"gopkg.in/yaml.v3"
)

// ViewOptions controls the LLM view of a site map.
type ViewOptions struct {
	// IgnoredSiteFields lists site field keys left out of the header.
	IgnoredSiteFields []string

	// IgnoreURLInfo leaves out the fields derived from the site URL.
	IgnoreURLInfo bool

	Rows pagescope.RowOptions
}

// SiteMapView renders m for an LLM: a YAML mapping of the non-empty site
// fields followed by the compact row listing of its entries.
func SiteMapView(m *pagescope.SiteMap, opts ViewOptions) (string, error) {
	ignored := opts.IgnoredSiteFields
	if opts.IgnoreURLInfo {
		ignored = append(append([]string(nil), ignored...), pagescope.URLInfoKeys...)
	}

	var b strings.Builder
	if fields := m.Fields(ignored...); len(fields) > 0 {
		header, err := MarshalFields(fields)
		if err != nil {
			return "", err
		}
		b.WriteString(header)
	}
	b.WriteString(pagescope.FormatRows(m.Rows(opts.Rows)))
	return b.String(), nil
}

// EntryInfoView renders the non-empty fields of info as a YAML mapping.
func EntryInfoView(info pagescope.EntryInfo, ignored ...string) (string, error) {
	return MarshalFields(info.Fields(ignored...))
}

// MarshalFields renders fields as a YAML mapping in their given order.
func MarshalFields(fields []pagescope.Field) (string, error) {
	if len(fields) == 0 {
		return "", nil
	}
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range fields {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Value},
		)
	}
	out, err := yaml.Marshal(node)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
