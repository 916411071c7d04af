package sortedlist

import (
	"golang.org/x/exp/slices"
)

// Position is the result of a key lookup: either the index of a key that
// is stored, or the index the key would be inserted at.
type Position struct {
	index int
	found bool
}

func found(i int) Position {
	return Position{index: i, found: true}
}

func vacant(i int) Position {
	return Position{index: i}
}

func (p Position) Index() int {
	return p.index
}

// Found reports whether the key is stored. When false Index is the
// insertion bound.
func (p Position) Found() bool {
	return p.found
}

// FirstPosition locates the first index holding key.
func (l *SortedList[K, V]) FirstPosition(key K) Position {
	pos, ok := l.search(key)
	if !ok {
		return vacant(pos)
	}

	for pos > 0 && l.compare(l.keys[pos-1], key) == 0 {
		pos--
	}

	return found(pos)
}

// LastPosition locates the index one past the last occurrence of key.
func (l *SortedList[K, V]) LastPosition(key K) Position {
	pos, ok := l.search(key)
	if !ok {
		return vacant(pos)
	}

	for pos < len(l.keys) && l.compare(l.keys[pos], key) == 0 {
		pos++
	}

	return found(pos)
}

// bounds returns the [first, last) run of key, empty when absent.
func (l *SortedList[K, V]) bounds(key K) (int, int) {
	first := l.FirstPosition(key)
	if !first.Found() {
		return first.Index(), first.Index()
	}

	last := first.Index()
	for last < len(l.keys) && l.compare(l.keys[last], key) == 0 {
		last++
	}

	return first.Index(), last
}

func (l *SortedList[K, V]) search(key K) (int, bool) {
	return slices.BinarySearchFunc(l.keys, key, l.compare)
}
