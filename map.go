package automaton

import "iter"

// Hashable is a key of HashMap.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap is a chained hash table keyed by Hashable values. It is used for
// keys Go maps cannot hold directly, such as state sets and signatures.
// It is not safe for concurrent use.
type HashMap[T any] struct {
	buckets    []*Entry[T]
	size       int
	mask       uint64
	loadFactor float64
}

// Entry is one key/value pair in a bucket chain.
type Entry[T any] struct {
	key   Hashable
	value T
	next  *Entry[T]
}

type optionsHashMap struct {
	capacity   int
	loadFactor float64
}

type OptionsHashMap func(*optionsHashMap)

// WithCapacity Sets the initial number of buckets, rounded up to a power of two.
func WithCapacity(capacity int) OptionsHashMap {
	return func(o *optionsHashMap) {
		o.capacity = capacity
	}
}

// WithLoadFactor Sets the size/buckets ratio above which the table doubles.
func WithLoadFactor(loadFactor float64) OptionsHashMap {
	return func(o *optionsHashMap) {
		o.loadFactor = loadFactor
	}
}

func NewHashMap[T any](options ...OptionsHashMap) *HashMap[T] {
	opts := &optionsHashMap{
		capacity:   1,
		loadFactor: 0.75,
	}
	for _, fn := range options {
		fn(opts)
	}

	realCap := 1
	for realCap < opts.capacity {
		realCap <<= 1
	}

	return &HashMap[T]{
		buckets:    make([]*Entry[T], realCap),
		mask:       uint64(realCap - 1),
		loadFactor: opts.loadFactor,
	}
}

// Set inserts or replaces the value stored under key.
func (m *HashMap[T]) Set(key Hashable, value T) {
	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}

	m.buckets[index] = &Entry[T]{
		key:   key,
		value: value,
		next:  m.buckets[index],
	}
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > m.loadFactor {
		m.resize()
	}
}

func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	var zero T
	return zero, false
}

func (m *HashMap[T]) resize() {
	newCap := len(m.buckets) << 1
	newBuckets := make([]*Entry[T], newCap)
	newMask := uint64(newCap - 1)

	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			i := e.key.Hash() & newMask
			newBuckets[i] = &Entry[T]{
				key:   e.key,
				value: e.value,
				next:  newBuckets[i],
			}
		}
	}

	m.buckets = newBuckets
	m.mask = newMask
}

func (m *HashMap[T]) Size() int {
	return m.size
}

// All iterates over the entries in no particular order.
func (m *HashMap[T]) All() iter.Seq2[Hashable, T] {
	return func(yield func(Hashable, T) bool) {
		for _, bucket := range m.buckets {
			for e := bucket; e != nil; e = e.next {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}
