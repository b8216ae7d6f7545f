// Package toml decodes theme documents using BurntSushi/toml.
package toml

import (
	"errors"
	"io"
	"math"
	"sort"

	tomllib "github.com/BurntSushi/toml"
	"github.com/fwojciec/themegen"
)

// Compile-time interface verification.
var _ themegen.DocumentDecoder = (*Decoder)(nil)

// Decoder parses TOML into ordered themegen tables.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode reads a TOML document. Keys of every table keep the order in which
// they first appear in the source. Tables nested inside arrays have no
// addressable key path and are ordered lexically.
func (d *Decoder) Decode(r io.Reader) (*themegen.Table, error) {
	var raw map[string]any
	md, err := tomllib.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, malformed(err)
	}

	// Rank every key path, including implicit parents of dotted keys and
	// table headers, by its first appearance.
	order := make(map[string]int)
	for i, key := range md.Keys() {
		for n := 1; n <= len(key); n++ {
			s := key[:n].String()
			if _, ok := order[s]; !ok {
				order[s] = i
			}
		}
	}

	b := builder{order: order}
	return b.table(raw, tomllib.Key{}), nil
}

func malformed(err error) error {
	terr := &themegen.Error{Kind: themegen.ErrMalformedDocument, Err: err}
	var perr tomllib.ParseError
	if errors.As(err, &perr) {
		terr.Line = perr.Position.Line
	}
	return terr
}

type builder struct {
	order map[string]int
}

// table converts m, whose key path is path (nil inside arrays).
func (b builder) table(m map[string]any, path tomllib.Key) *themegen.Table {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}

	rank := func(name string) int {
		if path == nil {
			return math.MaxInt
		}
		if i, ok := b.order[b.child(path, name).String()]; ok {
			return i
		}
		return math.MaxInt
	}
	sort.SliceStable(names, func(i, j int) bool {
		ri, rj := rank(names[i]), rank(names[j])
		if ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})

	t := themegen.NewTable()
	for _, name := range names {
		var childPath tomllib.Key
		if path != nil {
			childPath = b.child(path, name)
		}
		t.Set(name, b.value(m[name], childPath))
	}
	return t
}

func (b builder) value(v any, path tomllib.Key) any {
	switch v := v.(type) {
	case map[string]any:
		return b.table(v, path)
	case []map[string]any:
		out := make([]any, 0, len(v))
		for _, m := range v {
			out = append(out, b.table(m, nil))
		}
		return out
	case []any:
		out := make([]any, 0, len(v))
		for _, e := range v {
			out = append(out, b.value(e, nil))
		}
		return out
	default:
		return v
	}
}

func (b builder) child(path tomllib.Key, name string) tomllib.Key {
	k := make(tomllib.Key, len(path), len(path)+1)
	copy(k, path)
	return append(k, name)
}
