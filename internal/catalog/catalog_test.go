package catalog_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-utilkit/internal/catalog"
)

const yamlCatalog = `
entries:
  - name: Chunk
    category: arr
    signature: "func Chunk[T any](items []T, size int) [][]T"
    description: Splits items into groups.
    since: 0.1.0
    params:
      - {name: items, type: "[]T"}
      - {name: size, type: int}
    tags: [slice, split]
  - name: Once
    category: fn
    signature: "func Once[R any](f func() R) func() R"
    description: Runs f once.
    deprecated: true
constants:
  - name: Asc
    value: asc
    group: collections
    related: [Desc]
`

const tomlCatalog = `
[[entries]]
name = "Chunk"
category = "arr"
signature = "func Chunk[T any](items []T, size int) [][]T"
description = "Splits items into groups."
since = "0.1.0"
tags = ["slice", "split"]

  [[entries.params]]
  name = "items"
  type = "[]T"

  [[entries.params]]
  name = "size"
  type = "int"

[[entries]]
name = "Once"
category = "fn"
signature = "func Once[R any](f func() R) func() R"
description = "Runs f once."
deprecated = true

[[constants]]
name = "Asc"
value = "asc"
group = "collections"
related = ["Desc"]
`

const jsonCatalog = `{
  "entries": [
    {
      "name": "Chunk",
      "category": "arr",
      "signature": "func Chunk[T any](items []T, size int) [][]T",
      "description": "Splits items into groups.",
      "since": "0.1.0",
      "params": [{"name": "items", "type": "[]T"}, {"name": "size", "type": "int"}],
      "tags": ["slice", "split"]
    },
    {
      "name": "Once",
      "category": "fn",
      "signature": "func Once[R any](f func() R) func() R",
      "description": "Runs f once.",
      "deprecated": true
    }
  ],
  "constants": [
    {"name": "Asc", "value": "asc", "group": "collections", "related": ["Desc"]}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseFormatsAgree(t *testing.T) {
	fromYAML, err := catalog.Parse([]byte(yamlCatalog), catalog.YAML)
	require.NoError(t, err)
	fromTOML, err := catalog.Parse([]byte(tomlCatalog), catalog.TOML)
	require.NoError(t, err)
	fromJSON, err := catalog.Parse([]byte(jsonCatalog), catalog.JSON)
	require.NoError(t, err)

	require.Len(t, fromYAML.Entries, 2)
	assert.Equal(t, "Chunk", fromYAML.Entries[0].Name)
	assert.True(t, fromYAML.Entries[1].Deprecated)

	if diff := cmp.Diff(fromYAML, fromTOML); diff != "" {
		t.Errorf("yaml vs toml mismatch (-yaml +toml):\n%s", diff)
	}
	if diff := cmp.Diff(fromYAML, fromJSON); diff != "" {
		t.Errorf("yaml vs json mismatch (-yaml +json):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := catalog.Parse([]byte(yamlCatalog), catalog.Format("xml"))
	assert.ErrorIs(t, err, catalog.ErrUnsupportedFormat)

	_, err = catalog.Parse([]byte("entries: [{name: A}, {name: a}]"), catalog.YAML)
	assert.ErrorIs(t, err, catalog.ErrDuplicateEntry)

	_, err = catalog.Parse([]byte("entries: [{category: arr}]"), catalog.YAML)
	assert.ErrorIs(t, err, catalog.ErrInvalidEntry)

	_, err = catalog.Parse([]byte("constants: [{name: A}, {name: A}]"), catalog.YAML)
	assert.ErrorIs(t, err, catalog.ErrDuplicateEntry)

	_, err = catalog.Parse([]byte(`{"entries": [], "extra": 1}`), catalog.JSON)
	assert.Error(t, err)

	_, err = catalog.Parse([]byte("entries: [oops"), catalog.YAML)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	c, err := catalog.Load(writeFile(t, dir, "lib.yml", yamlCatalog))
	require.NoError(t, err)
	assert.Len(t, c.Entries, 2)

	c, err = catalog.Load(writeFile(t, dir, "lib.toml", tomlCatalog))
	require.NoError(t, err)
	assert.Len(t, c.Constants, 1)

	_, err = catalog.Load(writeFile(t, dir, "lib.txt", yamlCatalog))
	assert.ErrorIs(t, err, catalog.ErrUnsupportedFormat)

	_, err = catalog.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.yaml", yamlCatalog)
	second := writeFile(t, dir, "b.json", `{"entries": [{"name": "Uniq", "category": "arr"}]}`)

	c, err := catalog.LoadAll(context.Background(), first, second)
	require.NoError(t, err)
	names := make([]string, 0, len(c.Entries))
	for _, e := range c.Entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Chunk", "Once", "Uniq"}, names)

	dup := writeFile(t, dir, "c.toml", tomlCatalog)
	_, err = catalog.LoadAll(context.Background(), first, dup)
	assert.ErrorIs(t, err, catalog.ErrDuplicateEntry)

	_, err = catalog.LoadAll(context.Background(), first, filepath.Join(dir, "nope.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = catalog.LoadAll(ctx, first)
	assert.ErrorIs(t, err, context.Canceled)

	c, err = catalog.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, c.Entries)
}

func TestDefault(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	require.NotEmpty(t, c.Entries)
	require.NotEmpty(t, c.Constants)

	for _, e := range c.Entries {
		assert.NotEmpty(t, e.Category, e.Name)
		assert.NotEmpty(t, e.Signature, e.Name)
		assert.NotEmpty(t, e.Description, e.Name)
	}

	e, err := c.Lookup("chunk")
	require.NoError(t, err)
	assert.Equal(t, "Chunk", e.Name)
	assert.Equal(t, "arr", e.Category)

	_, err = c.Lookup("DoesNotExist")
	assert.ErrorIs(t, err, catalog.ErrEntryNotFound)

	cats := c.Categories()
	require.NotEmpty(t, cats)
	total := 0
	for i, cat := range cats {
		if i > 0 {
			assert.Less(t, cats[i-1].Name, cat.Name)
		}
		total += cat.Count
	}
	assert.Equal(t, len(c.Entries), total)
}

func TestEntryID(t *testing.T) {
	e := catalog.Entry{Name: "Chunk", Category: "arr"}
	assert.Len(t, e.ID(), 12)
	assert.Equal(t, e.ID(), catalog.Entry{Name: "Chunk", Category: "arr", Since: "9"}.ID())
	assert.NotEqual(t, e.ID(), catalog.Entry{Name: "Chunk", Category: "collections"}.ID())
}
