package edgefile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dmath/dijkstra"
	"github.com/katalvlaran/dmath/edgefile"
)

const yamlDoc = `
undirected: false
edges:
  - {from: A, to: B, weight: 1}
  - {from: B, to: C, weight: 2}
  - {from: A, to: C, weight: 5}
`

const tomlDoc = `
undirected = false

[[edges]]
from = "A"
to = "B"
weight = 1.0

[[edges]]
from = "B"
to = "C"
weight = 2.0

[[edges]]
from = "A"
to = "C"
weight = 5.0
`

const jsonDoc = `{
  "undirected": false,
  "edges": [
    {"from": "A", "to": "B", "weight": 1},
    {"from": "B", "to": "C", "weight": 2},
    {"from": "A", "to": "C", "weight": 5}
  ]
}`

func triangle() dijkstra.EdgeWeights[string, float64] {
	return dijkstra.EdgeWeights[string, float64]{
		{From: "A", To: "B"}: 1,
		{From: "B", To: "C"}: 2,
		{From: "A", To: "C"}: 5,
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := []struct {
		path string
		f    edgefile.Format
		gz   bool
	}{
		{"g.yaml", edgefile.YAML, false},
		{"dir/G.YML", edgefile.YAML, false},
		{"g.toml", edgefile.TOML, false},
		{"g.json", edgefile.JSON, false},
		{"g.json.gz", edgefile.JSON, true},
		{"/tmp/x.yaml.GZ", edgefile.YAML, true},
	}
	for _, tc := range cases {
		f, gz, err := edgefile.FormatFromPath(tc.path)
		require.NoError(t, err, tc.path)
		assert.Equal(t, tc.f, f, tc.path)
		assert.Equal(t, tc.gz, gz, tc.path)
	}

	_, _, err := edgefile.FormatFromPath("g.csv")
	require.ErrorIs(t, err, edgefile.ErrUnknownFormat)
	_, _, err = edgefile.FormatFromPath("g.gz")
	require.ErrorIs(t, err, edgefile.ErrUnknownFormat)
}

func TestDecode_AllFormatsAgree(t *testing.T) {
	docs := map[edgefile.Format]string{
		edgefile.YAML: yamlDoc,
		edgefile.TOML: tomlDoc,
		edgefile.JSON: jsonDoc,
	}
	for format, doc := range docs {
		t.Run(string(format), func(t *testing.T) {
			f, err := edgefile.Decode(strings.NewReader(doc), format)
			require.NoError(t, err)
			assert.False(t, f.Undirected)
			require.Len(t, f.Edges, 3)

			ew, err := f.EdgeWeights()
			require.NoError(t, err)
			assert.Equal(t, triangle(), ew)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	_, err := edgefile.Decode(strings.NewReader(jsonDoc), "xml")
	require.ErrorIs(t, err, edgefile.ErrUnknownFormat)

	_, err = edgefile.Decode(strings.NewReader(`{"edges": [`), edgefile.JSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json parse error")

	_, err = edgefile.Decode(strings.NewReader("edges = [[["), edgefile.TOML)
	require.Error(t, err)
}

func TestEdgeWeights_Undirected(t *testing.T) {
	f := &edgefile.File{
		Undirected: true,
		Edges: []edgefile.Record{
			{From: "A", To: "B", Weight: 3},
			{From: "C", To: "C", Weight: 1},
		},
	}
	ew, err := f.EdgeWeights()
	require.NoError(t, err)
	assert.Equal(t, dijkstra.EdgeWeights[string, float64]{
		{From: "A", To: "B"}: 3,
		{From: "B", To: "A"}: 3,
		{From: "C", To: "C"}: 1,
	}, ew)
}

func TestEdgeWeights_Errors(t *testing.T) {
	f := &edgefile.File{Edges: []edgefile.Record{{From: "A", To: "", Weight: 1}}}
	_, err := f.EdgeWeights()
	require.ErrorIs(t, err, edgefile.ErrEmptyNode)

	f = &edgefile.File{Edges: []edgefile.Record{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "B", Weight: 2},
	}}
	_, err = f.EdgeWeights()
	require.ErrorIs(t, err, edgefile.ErrDuplicateEdge)

	// Listing both directions of an undirected edge collides after mirroring.
	f = &edgefile.File{Undirected: true, Edges: []edgefile.Record{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "A", Weight: 1},
	}}
	_, err = f.EdgeWeights()
	require.ErrorIs(t, err, edgefile.ErrDuplicateEdge)
}

func TestSaveLoad_Gzip(t *testing.T) {
	dir := t.TempDir()
	want := &edgefile.File{
		Undirected: true,
		Edges: []edgefile.Record{
			{From: "x", To: "y", Weight: 0.5},
			{From: "y", To: "z", Weight: 2},
		},
	}

	for _, name := range []string{"g.yaml.gz", "g.toml", "g.json.gz"} {
		path := filepath.Join(dir, name)
		require.NoError(t, edgefile.Save(path, want), name)

		got, err := edgefile.Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "g.json.gz"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1f, 0x8b}, raw[:2], "gzip magic")
}

func TestLoad_Errors(t *testing.T) {
	_, err := edgefile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "plain.json.gz")
	require.NoError(t, os.WriteFile(path, []byte(jsonDoc), 0o644))
	_, err = edgefile.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gzip")
}

func TestLoad_FeedsEngine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o644))

	f, err := edgefile.Load(path)
	require.NoError(t, err)
	ew, err := f.EdgeWeights()
	require.NoError(t, err)

	e, err := dijkstra.New(ew)
	require.NoError(t, err)
	require.NoError(t, e.Run("A"))
	p, err := e.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, p)
}
