package sortedlist_test

import (
	"sort"
	"testing"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	sortedlist "github.com/koivunej/sorted-list"
	"github.com/koivunej/sorted-list/utils"
)

// model is a treemap of key to the values inserted under it, in order.
type model struct {
	m *treemap.Map
}

func newModel() *model {
	return &model{m: treemap.NewWithIntComparator()}
}

func (m *model) insert(key, value int) bool {
	var values []int
	if found, ok := m.m.Get(key); ok {
		values = found.([]int)
	}

	for _, v := range values {
		if v == value {
			return false
		}
	}

	m.m.Put(key, append(values, value))
	return true
}

func (m *model) valuesOf(key int) []int {
	if found, ok := m.m.Get(key); ok {
		return found.([]int)
	}
	return []int{}
}

func (m *model) pairs() []utils.Pair[int, int] {
	result := []utils.Pair[int, int]{}
	it := m.m.Iterator()
	for it.Next() {
		for _, v := range it.Value().([]int) {
			result = append(result, utils.NewPair(it.Key().(int), v))
		}
	}
	return result
}

func drawPairs(t *rapid.T, label string) []utils.Pair[int, int] {
	n := rapid.IntRange(0, 60).Draw(t, label+"-len")
	result := make([]utils.Pair[int, int], 0, n)
	for i := 0; i < n; i++ {
		result = append(result, utils.NewPair(
			rapid.IntRange(-5, 5).Draw(t, "key"),
			rapid.IntRange(0, 8).Draw(t, "value"),
		))
	}
	return result
}

func drawBound(t *rapid.T, label string) sortedlist.Bound[int] {
	key := rapid.IntRange(-7, 7).Draw(t, label+"-key")
	switch rapid.IntRange(0, 2).Draw(t, label+"-kind") {
	case 0:
		return sortedlist.Unbounded[int]()
	case 1:
		return sortedlist.Included(key)
	default:
		return sortedlist.Excluded(key)
	}
}

func satisfies(key int, lower, upper sortedlist.Bound[int]) bool {
	if b, ok := lower.Key(); ok {
		if key < b || (lower.Kind() == sortedlist.ExcludedKind && key == b) {
			return false
		}
	}

	if b, ok := upper.Key(); ok {
		if key > b || (upper.Kind() == sortedlist.ExcludedKind && key == b) {
			return false
		}
	}

	return true
}

func TestSortedList_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := sortedlist.New[int, int]()
		m := newModel()

		for _, p := range drawPairs(t, "inserts") {
			require.Equal(t, m.insert(p.Key, p.Value), l.Insert(p.Key, p.Value), "insert (%d, %d)", p.Key, p.Value)
		}

		all := l.Iter().Collect()
		if diff := cmp.Diff(m.pairs(), all); diff != "" {
			t.Fatalf("iteration differs from model (-want +got):\n%s", diff)
		}

		keys := l.Keys()
		require.True(t, sort.IntsAreSorted(keys), "keys not sorted: %v", keys)
		require.Len(t, l.Values(), len(keys))

		for key := -6; key <= 6; key++ {
			got := l.ValuesOf(key).Collect()
			if diff := cmp.Diff(m.valuesOf(key), got); diff != "" {
				t.Fatalf("values of %d differ (-want +got):\n%s", key, diff)
			}

			var zipped []utils.Pair[int, int]
			for _, v := range got {
				zipped = append(zipped, utils.NewPair(key, v))
			}
			require.Equal(t, zipped, nilIfEmpty(l.Range(sortedlist.Included(key), sortedlist.Included(key)).Collect()))
		}

		require.Equal(t, all, l.Range(sortedlist.Unbounded[int](), sortedlist.Unbounded[int]()).Collect())

		lower, upper := drawBound(t, "lower"), drawBound(t, "upper")
		var want []utils.Pair[int, int]
		for _, p := range all {
			if satisfies(p.Key, lower, upper) {
				want = append(want, p)
			}
		}
		require.Equal(t, want, nilIfEmpty(l.Range(lower, upper).Collect()), "range %s..%s", lower, upper)
	})
}

func TestSortedList_ExtendProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		batch := drawPairs(t, "batch")

		extended := sortedlist.New[int, int]()
		extended.Extend(batch)

		sorted := append([]utils.Pair[int, int](nil), batch...)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

		inserted := sortedlist.New[int, int]()
		for _, p := range sorted {
			inserted.Insert(p.Key, p.Value)
		}

		if diff := cmp.Diff(inserted.Iter().Collect(), extended.Iter().Collect()); diff != "" {
			t.Fatalf("extend differs from sorted inserts (-want +got):\n%s", diff)
		}
	})
}

func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}
