// Package presenter turns computed charts into the JSON shapes served by the
// API and printed by the CLI.
package presenter

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/sjson"
)

// OrderedMap is a JSON object whose keys serialize in insertion order.
type OrderedMap struct {
	keys   []string
	values map[string]interface{}
}

func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: make(map[string]interface{})}
}

// Set appends k, or replaces its value in place if already present.
func (m *OrderedMap) Set(k string, v interface{}) {
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
}

func (m *OrderedMap) Get(k string) (interface{}, bool) {
	v, ok := m.values[k]
	return v, ok
}

func (m *OrderedMap) Keys() []string {
	return append([]string(nil), m.keys...)
}

func (m *OrderedMap) Len() int { return len(m.keys) }

func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	out := []byte("{}")
	if m == nil {
		return out, nil
	}
	for _, k := range m.keys {
		raw, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		out, err = sjson.SetRawBytes(out, pathKey(k), raw)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

var pathEscaper = strings.NewReplacer(
	`\`, `\\`,
	`.`, `\.`,
	`*`, `\*`,
	`?`, `\?`,
	`|`, `\|`,
	`#`, `\#`,
	`@`, `\@`,
	`!`, `\!`,
	`=`, `\=`,
	`<`, `\<`,
	`>`, `\>`,
	`%`, `\%`,
	`:`, `\:`,
)

// pathKey escapes sjson path syntax so k is always a literal member name.
func pathKey(k string) string {
	k = pathEscaper.Replace(k)
	if isDigits(k) {
		return ":" + k
	}
	return k
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
