package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-utilkit/collections"
	"github.com/hasbyte1/go-utilkit/digest"
	"github.com/hasbyte1/go-utilkit/obj"
)

// ─────────────────────────────────────────────────────────────────────────────
// Types
// ─────────────────────────────────────────────────────────────────────────────

// Param documents one function parameter.
type Param struct {
	Name        string `yaml:"name" toml:"name" json:"name"`
	Type        string `yaml:"type" toml:"type" json:"type"`
	Description string `yaml:"description,omitempty" toml:"description" json:"description,omitempty"`
	Optional    bool   `yaml:"optional,omitempty" toml:"optional" json:"optional,omitempty"`
}

// Entry documents one exported function.
type Entry struct {
	Name        string   `yaml:"name" toml:"name" json:"name"`
	Category    string   `yaml:"category" toml:"category" json:"category"`
	Signature   string   `yaml:"signature" toml:"signature" json:"signature"`
	Description string   `yaml:"description" toml:"description" json:"description"`
	Since       string   `yaml:"since,omitempty" toml:"since" json:"since,omitempty"`
	Params      []Param  `yaml:"params,omitempty" toml:"params" json:"params,omitempty"`
	Returns     string   `yaml:"returns,omitempty" toml:"returns" json:"returns,omitempty"`
	Examples    []string `yaml:"examples,omitempty" toml:"examples" json:"examples,omitempty"`
	Tags        []string `yaml:"tags,omitempty" toml:"tags" json:"tags,omitempty"`
	Deprecated  bool     `yaml:"deprecated,omitempty" toml:"deprecated" json:"deprecated,omitempty"`
}

// ID returns a short stable identifier derived from the category and name.
func (e Entry) ID() string {
	return digest.String(e.Category + "." + e.Name)[:12]
}

// Constant documents one exported constant.
type Constant struct {
	Name        string   `yaml:"name" toml:"name" json:"name"`
	Value       any      `yaml:"value" toml:"value" json:"value"`
	Group       string   `yaml:"group" toml:"group" json:"group"`
	Description string   `yaml:"description,omitempty" toml:"description" json:"description,omitempty"`
	Related     []string `yaml:"related,omitempty" toml:"related" json:"related,omitempty"`
}

// Catalog is a set of entries and constants.
type Catalog struct {
	Entries   []Entry    `yaml:"entries" toml:"entries" json:"entries"`
	Constants []Constant `yaml:"constants" toml:"constants" json:"constants"`
}

// CategoryCount pairs a category with its number of entries.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Loading
// ─────────────────────────────────────────────────────────────────────────────

// Format identifies a catalog encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
	JSON Format = "json"
)

// FormatOf infers the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".json":
		return JSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// Parse decodes and validates a catalog.
func Parse(data []byte, format Format) (*Catalog, error) {
	var c Catalog
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &c)
	case TOML:
		_, err = toml.Decode(string(data), &c)
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&c)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: decode %s: %w", format, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads a catalog file, choosing the decoder by extension.
func Load(path string) (*Catalog, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read: %w", err)
	}
	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadAll loads paths concurrently and merges them in argument order.
// Names must be unique across all files.
func LoadAll(ctx context.Context, paths ...string) (*Catalog, error) {
	parts := make([]*Catalog, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := Load(path)
			if err != nil {
				return err
			}
			parts[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &Catalog{}
	for _, part := range parts {
		merged.Entries = append(merged.Entries, part.Entries...)
		merged.Constants = append(merged.Constants, part.Constants...)
	}
	if err := merged.validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

//go:embed data/catalog.yaml
var embedded []byte

// Default returns the catalog shipped with this module.
func Default() (*Catalog, error) {
	return Parse(embedded, YAML)
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool, len(c.Entries))
	for i, e := range c.Entries {
		if strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("%w: entry #%d has no name", ErrInvalidEntry, i)
		}
		key := strings.ToLower(e.Name)
		if seen[key] {
			return fmt.Errorf("%w: %q", ErrDuplicateEntry, e.Name)
		}
		seen[key] = true
	}
	consts := make(map[string]bool, len(c.Constants))
	for i, k := range c.Constants {
		if strings.TrimSpace(k.Name) == "" {
			return fmt.Errorf("%w: constant #%d has no name", ErrInvalidEntry, i)
		}
		if consts[k.Name] {
			return fmt.Errorf("%w: constant %q", ErrDuplicateEntry, k.Name)
		}
		consts[k.Name] = true
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Queries
// ─────────────────────────────────────────────────────────────────────────────

// Lookup returns the entry called name, ignoring case.
func (c *Catalog) Lookup(name string) (Entry, error) {
	e, _, ok := collections.Find(c.Entries, func(e Entry, _ int) bool {
		return strings.EqualFold(e.Name, name)
	})
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrEntryNotFound, name)
	}
	return e, nil
}

// Categories returns every category with its entry count, sorted by name.
func (c *Catalog) Categories() []CategoryCount {
	counts := collections.CountBy(c.Entries, func(e Entry, _ int) string { return e.Category })
	out := make([]CategoryCount, 0, len(counts))
	for _, name := range obj.Keys(counts) {
		out = append(out, CategoryCount{Name: name, Count: counts[name]})
	}
	return out
}

// Filter is [FilterData] over the catalog's entries.
func (c *Catalog) Filter(q Query) []Entry {
	return FilterData(c.Entries, q)
}
