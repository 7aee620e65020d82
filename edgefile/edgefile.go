// Package edgefile reads and writes weighted edge lists for the shortest-path
// Engine. A document holds a list of {from, to, weight} records and an
// optional undirected flag; it may be written as YAML, TOML or JSON, and
// gzip-compressed when the file name ends in ".gz".
//
//	undirected: true
//	edges:
//	  - {from: A, to: B, weight: 1}
//	  - {from: B, to: C, weight: 2.5}
package edgefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/gzip"
	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/dmath/dijkstra"
)

var (
	// ErrUnknownFormat indicates an extension or format name that is not supported.
	ErrUnknownFormat = errors.New("edgefile: unknown format")

	// ErrEmptyNode indicates a record with an empty from or to field.
	ErrEmptyNode = errors.New("edgefile: empty node identifier")

	// ErrDuplicateEdge indicates the same directed pair listed twice.
	ErrDuplicateEdge = errors.New("edgefile: duplicate edge")
)

// Format names a serialisation.
type Format string

// Supported formats.
const (
	YAML Format = "yaml"
	TOML Format = "toml"
	JSON Format = "json"
)

// Record is one weighted edge.
type Record struct {
	From   string  `yaml:"from" toml:"from" json:"from"`
	To     string  `yaml:"to" toml:"to" json:"to"`
	Weight float64 `yaml:"weight" toml:"weight" json:"weight"`
}

// File is a decoded edge-list document.
type File struct {
	Undirected bool     `yaml:"undirected" toml:"undirected" json:"undirected"`
	Edges      []Record `yaml:"edges" toml:"edges" json:"edges"`
}

// FormatFromPath infers the format from the file extension. A trailing ".gz"
// is stripped first and reported through gz.
func FormatFromPath(path string) (f Format, gz bool, err error) {
	name := strings.ToLower(filepath.Base(path))
	if strings.HasSuffix(name, ".gz") {
		gz = true
		name = strings.TrimSuffix(name, ".gz")
	}

	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return YAML, gz, nil
	case ".toml":
		return TOML, gz, nil
	case ".json":
		return JSON, gz, nil
	default:
		return "", gz, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Decode reads a whole document from r.
func Decode(r io.Reader, format Format) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("edgefile: read: %w", err)
	}

	var f File
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &f)
	case TOML:
		err = toml.Unmarshal(data, &f)
	case JSON:
		err = sonic.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("edgefile: %s parse error: %w", format, err)
	}

	return &f, nil
}

// Encode writes f to w.
func Encode(w io.Writer, format Format, f *File) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case YAML:
		data, err = yaml.Marshal(f)
	case TOML:
		data, err = toml.Marshal(f)
	case JSON:
		data, err = sonic.ConfigStd.MarshalIndent(f, "", "  ")
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("edgefile: %s encoding error: %w", format, err)
	}

	_, err = w.Write(data)
	return err
}

// Load opens path, decompresses it if it ends in ".gz" and decodes it in the
// format given by its extension.
func Load(path string) (*File, error) {
	format, gz, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgefile: %w", err)
	}
	defer fh.Close()

	var r io.Reader = fh
	if gz {
		zr, err := gzip.NewReader(fh)
		if err != nil {
			return nil, fmt.Errorf("edgefile: gzip: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	return Decode(r, format)
}

// Save writes f to path in the format given by its extension, compressing
// when the name ends in ".gz".
func Save(path string, f *File) error {
	format, gz, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = Encode(&buf, format, f); err != nil {
		return err
	}

	data := buf.Bytes()
	if gz {
		var zbuf bytes.Buffer
		zw := gzip.NewWriter(&zbuf)
		if _, err = zw.Write(data); err != nil {
			return fmt.Errorf("edgefile: gzip: %w", err)
		}
		if err = zw.Close(); err != nil {
			return fmt.Errorf("edgefile: gzip: %w", err)
		}
		data = zbuf.Bytes()
	}

	return os.WriteFile(path, data, 0o644)
}

// EdgeWeights converts the records into an edge map. Undirected documents
// contribute both directions of every non-loop record.
//
// Errors:
//   - ErrEmptyNode if a record lacks an endpoint.
//   - ErrDuplicateEdge if a directed pair appears twice (after mirroring).
func (f *File) EdgeWeights() (dijkstra.EdgeWeights[string, float64], error) {
	out := make(dijkstra.EdgeWeights[string, float64], len(f.Edges))
	add := func(i int, from, to string, w float64) error {
		e := dijkstra.Edge[string]{From: from, To: to}
		if _, dup := out[e]; dup {
			return fmt.Errorf("%w: record %d %s→%s", ErrDuplicateEdge, i, from, to)
		}
		out[e] = w
		return nil
	}

	for i, r := range f.Edges {
		if r.From == "" || r.To == "" {
			return nil, fmt.Errorf("%w: record %d", ErrEmptyNode, i)
		}
		if err := add(i, r.From, r.To, r.Weight); err != nil {
			return nil, err
		}
		if f.Undirected && r.From != r.To {
			if err := add(i, r.To, r.From, r.Weight); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
