package sortedlist

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

func (l *SortedList[K, V]) String() string {
	return "SortedList { " + l.Iter().String() + " }"
}

// String renders the remaining pairs without consuming them.
func (t *Tuples[K, V]) String() string {
	clone := t.Clone()

	var b strings.Builder
	b.WriteString("[")
	for k, v, ok := clone.Next(); ok; k, v, ok = clone.Next() {
		fmt.Fprintf(&b, "(%v, %v)", k, v)
		if clone.Len() > 0 {
			b.WriteString(", ")
		}
	}
	b.WriteString("]")
	return b.String()
}

// String renders the remaining values without consuming them.
func (vs *Values[K, V]) String() string {
	clone := vs.Clone()

	var b strings.Builder
	b.WriteString("[")
	for v, ok := clone.Next(); ok; v, ok = clone.Next() {
		fmt.Fprintf(&b, "%v", v)
		if clone.Len() > 0 {
			b.WriteString(", ")
		}
	}
	b.WriteString("]")
	return b.String()
}

func (l *SortedList[K, V]) MarshalZerologObject(e *zerolog.Event) {
	e.Int("len", l.Len()).Array("pairs", l.Iter())
}

func (t *Tuples[K, V]) MarshalZerologArray(a *zerolog.Array) {
	clone := t.Clone()
	for k, v, ok := clone.Next(); ok; k, v, ok = clone.Next() {
		a.Dict(zerolog.Dict().Interface("key", k).Interface("value", v))
	}
}

func (vs *Values[K, V]) MarshalZerologArray(a *zerolog.Array) {
	clone := vs.Clone()
	for v, ok := clone.Next(); ok; v, ok = clone.Next() {
		a.Interface(v)
	}
}
