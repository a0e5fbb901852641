package schema

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DuplicateKeyError reports a key repeated inside one mapping. Only
// DecodeStrict returns it.
type DuplicateKeyError struct {
	Key       string
	Line      int
	Col       int
	FirstLine int
	FirstCol  int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("schema: duplicate key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// Decode parses a JSON or YAML object into a Map. Integers decode as int64,
// other numbers as float64. A key repeated inside one mapping keeps the last
// value at the position of its first occurrence.
func Decode(data []byte) (*Map, error) {
	return decode(data, false)
}

// DecodeStrict is Decode but fails with DuplicateKeyError on repeated keys.
func DecodeStrict(data []byte) (*Map, error) {
	return decode(data, true)
}

func decode(data []byte, strict bool) (*Map, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("schema: document is empty")
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("schema: parse document: %w", err)
	}
	v, err := nodeDecoder{strict: strict}.value(&root)
	if err != nil {
		return nil, err
	}
	m, ok := v.(*Map)
	if !ok {
		return nil, fmt.Errorf("schema: document root must be an object, got %T", v)
	}
	return m, nil
}

// EncodeJSON renders v, typically a *Map, as indented JSON.
func EncodeJSON(v any) ([]byte, error) {
	out, err := j.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schema: encode json: %w", err)
	}
	return append(out, '\n'), nil
}

// EncodeYAML renders v, typically a *Map, as YAML.
func EncodeYAML(v any) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("schema: encode yaml: %w", err)
	}
	return out, nil
}

type nodeDecoder struct {
	strict bool
}

func (d nodeDecoder) value(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.value(n.Content[0])
	case yaml.AliasNode:
		return d.value(n.Alias)
	case yaml.MappingNode:
		m := NewMap()
		first := make(map[string][2]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			pos, dup := first[k.Value]
			if dup && d.strict {
				return nil, &DuplicateKeyError{Key: k.Value, FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column}
			}
			if !dup {
				first[k.Value] = [2]int{k.Line, k.Column}
			}
			val, err := d.value(v)
			if err != nil {
				return nil, err
			}
			m.Set(k.Value, val)
		}
		return m, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := d.value(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		return scalar(n)
	}
	return nil, nil
}

func scalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("schema: line %d: %w", n.Line, err)
		}
		return b, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return i, nil
		}
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil && !math.IsInf(f, 0) {
			return f, nil
		}
		return n.Value, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("schema: line %d: %w", n.Line, err)
		}
		return f, nil
	default:
		return n.Value, nil
	}
}
