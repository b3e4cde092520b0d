package grouping

// Map groups values by key while remembering the order in which keys
// were first seen. Aggregations that expose "first encountered"
// semantics must not depend on Go's randomized map iteration, so all
// iteration here follows insertion order.
type Map[K comparable, V any] struct {
	keys []K
	vals map[K]V
}

// New constructs an empty insertion-ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{vals: make(map[K]V)}
}

// Get returns the value stored for key, if any.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Set stores value under key, appending the key on first insert.
func (m *Map[K, V]) Set(key K, value V) {
	if _, seen := m.vals[key]; !seen {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = value
}

// Update applies fn to the current value for key (zero value on first
// insert) and stores the result.
func (m *Map[K, V]) Update(key K, fn func(V) V) {
	m.Set(key, fn(m.vals[key]))
}

// Len reports the number of distinct keys.
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order. The returned slice is the
// map's own backing storage and must not be mutated.
func (m *Map[K, V]) Keys() []K {
	return m.keys
}

// Values returns the values in key-insertion order.
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.vals[k])
	}
	return out
}
