// Package tagset holds the read-only catalog of POS tag descriptions shown
// to users on request.
package tagset

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/crimson-sun/tagviz/internal/model"
)

//go:embed penn.yaml
var pennYAML []byte

// Catalog maps tag symbols to descriptions. It is built once and never
// modified, so it may be shared freely.
type Catalog struct {
	entries []model.TagsetEntry
	index   map[string]int
	text    string
}

type document struct {
	Tags []model.TagsetEntry `yaml:"tags"`
}

// Default returns the Penn Treebank catalog bundled with the binary.
func Default() (*Catalog, error) {
	return Load(pennYAML)
}

// Load parses a catalog document and formats its description text.
func Load(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("tagset: parse: %w: %w", err, model.ErrResourceUnavailable)
	}
	if len(doc.Tags) == 0 {
		return nil, fmt.Errorf("tagset: no tags: %w", model.ErrResourceUnavailable)
	}

	c := &Catalog{
		entries: doc.Tags,
		index:   make(map[string]int, len(doc.Tags)),
	}
	var b strings.Builder
	for i, e := range doc.Tags {
		if e.Tag == "" {
			return nil, fmt.Errorf("tagset: entry %d has no tag: %w", i, model.ErrResourceUnavailable)
		}
		if _, dup := c.index[e.Tag]; dup {
			return nil, fmt.Errorf("tagset: duplicate tag %q: %w", e.Tag, model.ErrResourceUnavailable)
		}
		c.index[e.Tag] = i
		fmt.Fprintf(&b, "%s: %s, %s\n", e.Tag, e.Meaning, e.Examples)
	}
	c.text = b.String()
	return c, nil
}

// DescribeAll returns one "SYMBOL: meaning, examples" line per tag.
func (c *Catalog) DescribeAll() string {
	return c.text
}

// Lookup returns the entry for tag.
func (c *Catalog) Lookup(tag string) (model.TagsetEntry, bool) {
	i, ok := c.index[tag]
	if !ok {
		return model.TagsetEntry{}, false
	}
	return c.entries[i], true
}

// Describe returns the meaning of tag, or the tag itself when the catalog
// does not know it.
func (c *Catalog) Describe(tag string) string {
	if e, ok := c.Lookup(tag); ok {
		return e.Meaning
	}
	return tag
}

// Entries returns a copy of all entries in catalog order.
func (c *Catalog) Entries() []model.TagsetEntry {
	out := make([]model.TagsetEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of tags.
func (c *Catalog) Len() int {
	return len(c.entries)
}
