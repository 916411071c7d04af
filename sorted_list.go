package sortedlist

import (
	"cmp"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/koivunej/sorted-list/utils"
)

var (
	ErrModifiedDuringIteration = errors.New("sorted list modified during iteration")
	ErrNilComparator           = errors.New("key comparator and value equality are required")
)

type (
	SortedList[K any, V any] struct {
		keys    []K
		values  []V
		compare func(a, b K) int
		equal   func(a, b V) bool
		version uint64
	}

	ForEachFn[K any, V any]      func(key K, value V, order int)
	ForEachUntilFn[K any, V any] func(key K, value V, order int) bool

	config struct {
		capacity int
	}

	Option func(c *config)
)

// Capacity pre-sizes the key and value slices.
func Capacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// New creates an empty SortedList ordered by the natural order of K.
func New[K constraints.Ordered, V comparable](options ...Option) *SortedList[K, V] {
	return NewFunc[K, V](cmp.Compare[K], func(a, b V) bool { return a == b }, options...)
}

// NewFunc creates an empty SortedList using compare as the total order of
// keys and equal to detect duplicate values under the same key.
func NewFunc[K any, V any](
	compare func(a, b K) int,
	equal func(a, b V) bool,
	options ...Option,
) *SortedList[K, V] {
	if compare == nil || equal == nil {
		panic(errors.WithStack(ErrNilComparator))
	}

	var cfg config
	for _, o := range options {
		o(&cfg)
	}

	return &SortedList[K, V]{
		keys:    make([]K, 0, cfg.capacity),
		values:  make([]V, 0, cfg.capacity),
		compare: compare,
		equal:   equal,
	}
}

// Len returns the number of stored pairs.
func (l *SortedList[K, V]) Len() int {
	return len(l.keys)
}

// Insert adds the pair unless an identical pair is already stored, and
// reports whether the list was modified.
func (l *SortedList[K, V]) Insert(key K, value V) (added bool) {
	at, found := l.search(key)
	if !found {
		l.insertAt(at, key, value)
		return true
	}

	for i := at; i < len(l.keys); i++ {
		if l.compare(l.keys[i], key) != 0 {
			// ran past the run, the new value goes last among its key
			l.insertAt(i, key, value)
			return true
		}

		if l.equal(l.values[i], value) {
			return false
		}
	}

	l.insertAt(len(l.keys), key, value)
	return true
}

// Extend inserts every pair of the batch. The batch is sorted by key first
// (stable, so values of a key keep their batch order) which keeps inserts on
// the append path for a list whose keys precede the batch. Returns the
// number of pairs actually added.
func (l *SortedList[K, V]) Extend(pairs []utils.Pair[K, V]) (added int) {
	batch := slices.Clone(pairs)
	slices.SortStableFunc(batch, func(a, b utils.Pair[K, V]) int {
		return l.compare(a.Key, b.Key)
	})

	for _, p := range batch {
		if l.Insert(p.Key, p.Value) {
			added++
		}
	}

	return added
}

func (l *SortedList[K, V]) Has(key K) bool {
	_, found := l.search(key)
	return found
}

// Contains reports whether the exact (key, value) pair is stored.
func (l *SortedList[K, V]) Contains(key K, value V) bool {
	first, last := l.bounds(key)
	for i := first; i < last; i++ {
		if l.equal(l.values[i], value) {
			return true
		}
	}

	return false
}

// Keys returns a copy of all keys in order, duplicates included.
func (l *SortedList[K, V]) Keys() []K {
	return slices.Clone(l.keys)
}

// Values returns a copy of all values in key order.
func (l *SortedList[K, V]) Values() []V {
	return slices.Clone(l.values)
}

// ForEach calls f for every pair in order. f must not insert into the
// list; doing so panics with ErrModifiedDuringIteration.
func (l *SortedList[K, V]) ForEach(f ForEachFn[K, V]) {
	l.ForEachUntil(func(key K, value V, order int) bool {
		f(key, value, order)
		return true
	})
}

func (l *SortedList[K, V]) ForEachUntil(f ForEachUntilFn[K, V]) *SortedList[K, V] {
	version := l.version
	for i := 0; i < len(l.keys); i++ {
		l.checkVersion(version)
		if canGoOn := f(l.keys[i], l.values[i], i); !canGoOn {
			break
		}
	}
	l.checkVersion(version)

	return l
}

func (l *SortedList[K, V]) Clone() *SortedList[K, V] {
	return &SortedList[K, V]{
		keys:    slices.Clone(l.keys),
		values:  slices.Clone(l.values),
		compare: l.compare,
		equal:   l.equal,
	}
}

func (l *SortedList[K, V]) checkVersion(version uint64) {
	if l.version != version {
		panic(errors.WithStack(ErrModifiedDuringIteration))
	}
}

func (l *SortedList[K, V]) insertAt(i int, key K, value V) {
	l.keys = slices.Insert(l.keys, i, key)
	l.values = slices.Insert(l.values, i, value)
	l.version++

	if len(l.keys) != len(l.values) {
		panic(errors.Errorf("sorted list out of sync: %d keys, %d values", len(l.keys), len(l.values)))
	}
}
