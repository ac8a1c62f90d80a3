package models

// Meta is the front-matter block of a glossary: string pairs kept in the
// order their keys first appeared.
type Meta struct {
	keys   []string
	values map[string]string
}

// NewMeta returns an empty Meta.
func NewMeta() *Meta {
	return &Meta{values: make(map[string]string)}
}

// Set stores value under key. A repeated key keeps its original position.
func (m *Meta) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Meta) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Meta) Keys() []string { return m.keys }

// Len returns the number of keys.
func (m *Meta) Len() int { return len(m.keys) }
