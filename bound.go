package sortedlist

import "fmt"

type BoundKind uint8

const (
	UnboundedKind BoundKind = iota
	IncludedKind
	ExcludedKind
)

// Bound is one end of a key range.
type Bound[K any] struct {
	kind BoundKind
	key  K
}

func Included[K any](key K) Bound[K] {
	return Bound[K]{kind: IncludedKind, key: key}
}

func Excluded[K any](key K) Bound[K] {
	return Bound[K]{kind: ExcludedKind, key: key}
}

func Unbounded[K any]() Bound[K] {
	return Bound[K]{kind: UnboundedKind}
}

func (b Bound[K]) Kind() BoundKind {
	return b.kind
}

// Key returns the bounding key; false for an unbounded end.
func (b Bound[K]) Key() (K, bool) {
	return b.key, b.kind != UnboundedKind
}

func (b Bound[K]) String() string {
	switch b.kind {
	case IncludedKind:
		return fmt.Sprintf("Included(%v)", b.key)
	case ExcludedKind:
		return fmt.Sprintf("Excluded(%v)", b.key)
	default:
		return "Unbounded"
	}
}

// Range iterates the pairs whose key lies between lower and upper. An
// inverted or empty range yields nothing.
func (l *SortedList[K, V]) Range(lower, upper Bound[K]) *Tuples[K, V] {
	start, end := l.resolve(lower, upper)
	if end < start {
		end = start
	}

	return newTuples(l, start, end)
}

func (l *SortedList[K, V]) resolve(lower, upper Bound[K]) (start int, end int) {
	switch lower.kind {
	case IncludedKind:
		start = l.FirstPosition(lower.key).Index()
	case ExcludedKind:
		start = l.LastPosition(lower.key).Index()
	default:
		start = 0
	}

	switch upper.kind {
	case IncludedKind:
		end = l.LastPosition(upper.key).Index()
	case ExcludedKind:
		end = l.FirstPosition(upper.key).Index()
	default:
		end = l.Len()
	}

	return start, end
}
