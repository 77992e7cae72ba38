package linkedmap

// LinkedMap is a map that remembers the order keys were first set in.
type LinkedMap[K comparable, V any] struct {
	ValuesByKey map[K]*LinkedMapEntry[K, V]
	First       *LinkedMapEntry[K, V]
	Last        *LinkedMapEntry[K, V]
}

type LinkedMapEntry[K comparable, V any] struct {
	Key   K
	Value V
	Prev  *LinkedMapEntry[K, V]
	Next  *LinkedMapEntry[K, V]
}

func CreateLinkedMap[K comparable, V any](size int) *LinkedMap[K, V] {
	return &LinkedMap[K, V]{
		ValuesByKey: make(map[K]*LinkedMapEntry[K, V], size),
	}
}

func (m *LinkedMap[K, V]) Get(key K) (V, bool) {
	entry := m.ValuesByKey[key]
	if entry == nil {
		var zero V
		return zero, false
	}
	return entry.Value, true
}

func (m *LinkedMap[K, V]) Has(key K) bool {
	return m.ValuesByKey[key] != nil
}

// Set stores value under key. A key that is already present keeps its position.
func (m *LinkedMap[K, V]) Set(key K, value V) {
	if entry, found := m.ValuesByKey[key]; found {
		entry.Value = value
		return
	}
	entry := &LinkedMapEntry[K, V]{Key: key, Value: value}
	if m.First == nil {
		m.First = entry
		m.Last = entry
	} else {
		entry.Prev = m.Last
		m.Last.Next = entry
		m.Last = entry
	}
	m.ValuesByKey[key] = entry
}

func (m *LinkedMap[K, V]) Delete(key K) {
	entry := m.ValuesByKey[key]
	if entry == nil {
		return
	}
	delete(m.ValuesByKey, key)
	if entry.Prev != nil {
		entry.Prev.Next = entry.Next
	} else {
		m.First = entry.Next
	}
	if entry.Next != nil {
		entry.Next.Prev = entry.Prev
	} else {
		m.Last = entry.Prev
	}
}

func (m *LinkedMap[K, V]) Len() int {
	return len(m.ValuesByKey)
}

// Values returns the values in insertion order.
func (m *LinkedMap[K, V]) Values() []V {
	values := make([]V, 0, len(m.ValuesByKey))
	for e := m.First; e != nil; e = e.Next {
		values = append(values, e.Value)
	}
	return values
}
