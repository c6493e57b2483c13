package smolbuf

import (
	"iter"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Map is a hash map keyed by the text of Str16 values. Keys that hold the
// same text are the same key, inline or not. Lookups by plain string need no
// Str16 at all.
//
// The map owns its keys: Set stores a clone of a new key, so the caller may
// Release its own value afterwards, and Delete releases the stored key. Keys
// handed out by All and Keys are borrowed; Clone them to keep them past a
// Delete.
//
// The zero value is an empty map ready to use. Like a Go map, a Map must not
// be written concurrently with any other access.
type Map[V any] struct {
	buckets map[uint64][]mapEntry[V]
	n       int
}

type mapEntry[V any] struct {
	key Str16
	val V
}

// NewMap returns a Map with room for about size keys.
func NewMap[V any](size int) *Map[V] {
	return &Map[V]{buckets: make(map[uint64][]mapEntry[V], size)}
}

func (m *Map[V]) find(text string) (uint64, int) {
	h := xxhash.Sum64String(text)
	for i, e := range m.buckets[h] {
		if e.key.EqualString(text) {
			return h, i
		}
	}
	return h, -1
}

// Set stores v under k, replacing any value stored under the same text.
// A replaced entry keeps its original key.
func (m *Map[V]) Set(k Str16, v V) {
	m.store(k, v, false)
}

// store inserts or replaces an entry. With owned set, k already belongs to
// the map and is released if the key is present; otherwise a new key is
// cloned.
func (m *Map[V]) store(k Str16, v V, owned bool) {
	if m.buckets == nil {
		m.buckets = make(map[uint64][]mapEntry[V])
	}
	h, i := m.find(k.View())
	if i >= 0 {
		m.buckets[h][i].val = v
		if owned {
			k.Release()
		}
		return
	}
	if !owned {
		k = k.Clone()
	}
	m.buckets[h] = append(m.buckets[h], mapEntry[V]{key: k, val: v})
	m.n++
}

// Get returns the value stored under the text of k.
func (m *Map[V]) Get(k Str16) (V, bool) {
	return m.Lookup(k.View())
}

// Lookup returns the value stored under text.
func (m *Map[V]) Lookup(text string) (V, bool) {
	h, i := m.find(text)
	if i < 0 {
		var zero V
		return zero, false
	}
	return m.buckets[h][i].val, true
}

// Delete removes the entry stored under the text of k and reports whether
// there was one.
func (m *Map[V]) Delete(k Str16) bool {
	h, i := m.find(k.View())
	if i < 0 {
		return false
	}
	m.buckets[h][i].key.Release()
	bucket := slices.Delete(m.buckets[h], i, i+1)
	if len(bucket) == 0 {
		delete(m.buckets, h)
	} else {
		m.buckets[h] = bucket
	}
	m.n--
	return true
}

// Len returns the number of keys.
func (m *Map[V]) Len() int {
	return m.n
}

// All yields every entry in no particular order.
func (m *Map[V]) All() iter.Seq2[Str16, V] {
	return func(yield func(Str16, V) bool) {
		for _, bucket := range m.buckets {
			for _, e := range bucket {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

// Keys returns the keys sorted by text.
func (m *Map[V]) Keys() []Str16 {
	keys := make([]Str16, 0, m.n)
	for k := range m.All() {
		keys = append(keys, k)
	}
	Sort(keys)
	return keys
}

// MarshalJSON encodes the map as a JSON object with keys in sorted order.
func (m Map[V]) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, k := range m.Keys() {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(k.View())
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to marshal map key"), "key", k.String())
		}
		v, _ := m.Get(k)
		val, err := json.Marshal(v)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to marshal map value"), "key", k.String())
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, val...)
	}
	return append(buf, '}'), nil
}

// UnmarshalJSON decodes a JSON object into the map, adding to any entries
// already present.
func (m *Map[V]) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return zerr.Wrap(err, "failed to unmarshal map")
	}
	for k, msg := range raw {
		var v V
		if err := json.Unmarshal(msg, &v); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to unmarshal map value"), "key", k)
		}
		m.store(fromString(k), v, true)
	}
	return nil
}

// MarshalYAML encodes the map as a YAML mapping with keys in sorted order.
func (m Map[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		var val yaml.Node
		if err := val.Encode(v); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to marshal map value"), "key", k.String())
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k.String()}
		node.Content = append(node.Content, key, &val)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping into the map, adding to any entries
// already present.
func (m *Map[V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return zerr.With(zerr.New("failed to unmarshal map: not a mapping"), "line", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var k string
		if err := node.Content[i].Decode(&k); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to unmarshal map key"), "line", node.Content[i].Line)
		}
		var v V
		if err := node.Content[i+1].Decode(&v); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to unmarshal map value"), "key", k)
		}
		m.store(fromString(k), v, true)
	}
	return nil
}
