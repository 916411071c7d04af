package sortedlist

import (
	"context"

	"github.com/koivunej/sorted-list/stream"
	"github.com/koivunej/sorted-list/utils"
)

type (
	// Tuples walks the pairs in [index, end) of a SortedList.
	Tuples[K any, V any] struct {
		view[K, V]
	}

	// Values walks the values in [index, end) of a SortedList.
	Values[K any, V any] struct {
		view[K, V]
	}

	view[K any, V any] struct {
		list    *SortedList[K, V]
		version uint64
		index   int
		end     int
	}
)

func newView[K any, V any](l *SortedList[K, V], start, end int) view[K, V] {
	return view[K, V]{list: l, version: l.version, index: start, end: end}
}

func newTuples[K any, V any](l *SortedList[K, V], start, end int) *Tuples[K, V] {
	return &Tuples[K, V]{view: newView(l, start, end)}
}

// Len returns the exact number of items left.
func (v *view[K, V]) Len() int {
	v.check()
	return v.end - v.index
}

func (v *view[K, V]) check() {
	v.list.checkVersion(v.version)
}

func (v *view[K, V]) advance() (int, bool) {
	v.check()

	if v.index >= v.end {
		return 0, false
	}

	i := v.index
	v.index++
	return i, true
}

// Iter iterates all pairs, keys in order and values in insertion order.
func (l *SortedList[K, V]) Iter() *Tuples[K, V] {
	return newTuples(l, 0, l.Len())
}

// ValuesOf iterates the values stored under key in insertion order.
func (l *SortedList[K, V]) ValuesOf(key K) *Values[K, V] {
	first, last := l.bounds(key)
	return &Values[K, V]{view: newView(l, first, last)}
}

func (t *Tuples[K, V]) Next() (K, V, bool) {
	i, ok := t.advance()
	if !ok {
		return utils.GetZero[K](), utils.GetZero[V](), false
	}

	return t.list.keys[i], t.list.values[i], true
}

func (t *Tuples[K, V]) Clone() *Tuples[K, V] {
	return &Tuples[K, V]{view: t.view}
}

// Collect drains the remaining pairs.
func (t *Tuples[K, V]) Collect() []utils.Pair[K, V] {
	result := make([]utils.Pair[K, V], 0, t.Len())
	for k, v, ok := t.Next(); ok; k, v, ok = t.Next() {
		result = append(result, utils.NewPair(k, v))
	}
	return result
}

func (vs *Values[K, V]) Next() (V, bool) {
	i, ok := vs.advance()
	if !ok {
		return utils.GetZero[V](), false
	}

	return vs.list.values[i], true
}

func (vs *Values[K, V]) Clone() *Values[K, V] {
	return &Values[K, V]{view: vs.view}
}

// Collect drains the remaining values.
func (vs *Values[K, V]) Collect() []V {
	result := make([]V, 0, vs.Len())
	for v, ok := vs.Next(); ok; v, ok = vs.Next() {
		result = append(result, v)
	}
	return result
}

// Pairs streams a snapshot of the stored pairs taken at call time. The
// channel is closed when all pairs were sent or ctx is done.
func (l *SortedList[K, V]) Pairs(ctx context.Context) <-chan utils.Pair[K, V] {
	return stream.Channel[K, V](ctx, l.snapshot())
}

// Emit sends a snapshot of the stored pairs, so a stream may pipe a list
// back into itself.
func (l *SortedList[K, V]) Emit(ctx context.Context, emit func(utils.Pair[K, V]) bool) {
	l.snapshot().Emit(ctx, emit)
}

func (l *SortedList[K, V]) snapshot() stream.SourceFunc[K, V] {
	return stream.FromPairs(l.Iter().Collect())
}

func (l *SortedList[K, V]) Stream(options ...stream.FlowOption) *stream.Stream[K, V] {
	return stream.New[K, V](l, options...)
}
