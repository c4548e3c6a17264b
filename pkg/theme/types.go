package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// NamedColor is one entry of an ordered colour map.
type NamedColor struct {
	Name  string
	Color string
}

// NamedColors is an ordered colour map. It marshals to a JSON object and a
// YAML mapping with keys in slice order, and decodes YAML mappings keeping
// document order.
type NamedColors []NamedColor

// Get returns the colour stored under name.
func (nc NamedColors) Get(name string) (string, bool) {
	for _, entry := range nc {
		if entry.Name == name {
			return entry.Color, true
		}
	}
	return "", false
}

// Names returns the entry names in order.
func (nc NamedColors) Names() []string {
	names := make([]string, len(nc))
	for i, entry := range nc {
		names[i] = entry.Name
	}
	return names
}

// Clone returns a copy that shares no backing array with nc.
func (nc NamedColors) Clone() NamedColors {
	if nc == nil {
		return nil
	}
	return append(NamedColors(nil), nc...)
}

// MarshalJSON implements json.Marshaler.
func (nc NamedColors) MarshalJSON() ([]byte, error) {
	keys := make([]string, len(nc))
	values := make([]string, len(nc))
	for i, entry := range nc {
		keys[i], values[i] = entry.Name, entry.Color
	}
	return orderedJSON(keys, values)
}

// MarshalYAML implements yaml.Marshaler.
func (nc NamedColors) MarshalYAML() (any, error) {
	keys := make([]string, len(nc))
	values := make([]string, len(nc))
	for i, entry := range nc {
		keys[i], values[i] = entry.Name, entry.Color
	}
	return orderedYAML(keys, values), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (nc *NamedColors) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of name to color", value.Line)
	}

	out := make(NamedColors, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: color for %q must be a string", val.Line, key.Value)
		}
		out = append(out, NamedColor{Name: key.Value, Color: val.Value})
	}
	*nc = out
	return nil
}

// Ramp is a named, ordered list of colours whose entries are keyed
// "<name>-1" through "<name>-N".
type Ramp struct {
	Name   string
	Colors []string
}

// Key returns the key of the 1-based index.
func (r Ramp) Key(index int) string {
	return r.Name + "-" + strconv.Itoa(index)
}

// Keys returns every key in order.
func (r Ramp) Keys() []string {
	keys := make([]string, len(r.Colors))
	for i := range r.Colors {
		keys[i] = r.Key(i + 1)
	}
	return keys
}

// Get returns the colour stored under key.
func (r Ramp) Get(key string) (string, bool) {
	for i, c := range r.Colors {
		if r.Key(i+1) == key {
			return c, true
		}
	}
	return "", false
}

// Named flattens the ramp into NamedColors.
func (r Ramp) Named() NamedColors {
	out := make(NamedColors, len(r.Colors))
	for i, c := range r.Colors {
		out[i] = NamedColor{Name: r.Key(i + 1), Color: c}
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (r Ramp) MarshalJSON() ([]byte, error) {
	return orderedJSON(r.Keys(), r.Colors)
}

// MarshalYAML implements yaml.Marshaler.
func (r Ramp) MarshalYAML() (any, error) {
	return orderedYAML(r.Keys(), r.Colors), nil
}

// Ramps is an ordered set of ramps, such as one ramp per semantic colour.
type Ramps []Ramp

// Get returns the ramp with the given name.
func (rs Ramps) Get(name string) (Ramp, bool) {
	for _, r := range rs {
		if r.Name == name {
			return r, true
		}
	}
	return Ramp{}, false
}

// MarshalJSON nests every ramp under its name.
func (rs Ramps) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range rs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(r.Name)
		if err != nil {
			return nil, err
		}
		body, err := r.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML nests every ramp under its name.
func (rs Ramps) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, r := range rs {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.Name},
			orderedYAML(r.Keys(), r.Colors),
		)
	}
	return node, nil
}

func orderedJSON(keys, values []string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(keys[i])
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func orderedYAML(keys, values []string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := range keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: keys[i]},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: values[i], Style: yaml.DoubleQuotedStyle},
		)
	}
	return node
}
