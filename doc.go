// Package sortedlist implements SortedList, an ordered multimap.
//
// A SortedList stores (key, value) pairs ordered by key. Values sharing a
// key are kept in the order they were inserted, and an identical pair is
// stored at most once. Keys and values live in two index-aligned slices,
// so appending already sorted input is cheap while reverse ordered input
// degrades to O(n) per insert.
//
// Views returned by Iter, Range and ValuesOf borrow the store. The store
// must not be mutated while a view is in use; a view that observes a
// mutation panics with ErrModifiedDuringIteration. A SortedList is not
// safe for concurrent mutation.
package sortedlist
