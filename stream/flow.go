package stream

import (
	"context"

	"github.com/koivunej/sorted-list/utils"
)

const (
	// DefaultConcurrency keeps a single worker per stage so pairs leave the
	// stream in the order the source produced them.
	DefaultConcurrency = 1
)

type (
	flowControl struct {
		concurrency int
	}

	FlowOption func(fc *flowControl)

	// PredicateContext allows to filter key value pairs
	PredicateContext[K any, V any] func(ctx context.Context, k K, v V) (bool, error)

	MapperContext[K any, V any] func(ctx context.Context, k K, v V) (V, error)

	IteratorContext[K any, V any] func(ctx context.Context, k K, v V) error

	// Reducer takes a carry from previous iteration and a key and a value
	// and returns a new version of carry
	Reducer[K any, V any, R any] func(carry R, k K, v V) R
)

// Concurrency sets the number of workers of a stream, or of a single stage
// when passed to that stage. More than one worker does not preserve order.
func Concurrency(n int) FlowOption {
	return func(fc *flowControl) {
		fc.concurrency = n
	}
}

func (fc flowControl) with(options ...FlowOption) flowControl {
	for _, o := range options {
		o(&fc)
	}
	return fc
}

// SourceFunc adapts a function to a StreamSource.
type SourceFunc[K any, V any] func(ctx context.Context, emit func(utils.Pair[K, V]) bool)

func (f SourceFunc[K, V]) Emit(ctx context.Context, emit func(utils.Pair[K, V]) bool) {
	f(ctx, emit)
}

// FromPairs is a source of the given pairs in order.
func FromPairs[K any, V any](pairs []utils.Pair[K, V]) SourceFunc[K, V] {
	return func(ctx context.Context, emit func(utils.Pair[K, V]) bool) {
		for _, p := range pairs {
			if ctx.Err() != nil || !emit(p) {
				return
			}
		}
	}
}

// Channel runs source in its own goroutine and delivers the pairs on the
// returned channel. The channel is closed once the source returns, which
// happens when all pairs were sent or ctx is done.
func Channel[K any, V any](ctx context.Context, source StreamSource[K, V]) <-chan utils.Pair[K, V] {
	resultCh := make(chan utils.Pair[K, V])

	go func() {
		defer close(resultCh)
		forward(ctx, source, resultCh)
	}()

	return resultCh
}

func forward[K any, V any](ctx context.Context, source StreamSource[K, V], out chan<- utils.Pair[K, V]) {
	source.Emit(ctx, func(p utils.Pair[K, V]) bool {
		return send(ctx, out, p)
	})
}
