package stream

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/koivunej/sorted-list/utils"
)

type (
	// StreamSource pushes its pairs in order to emit until emit returns
	// false or ctx is done. Emit must not return before it stops calling emit.
	StreamSource[K any, V any] interface {
		Emit(ctx context.Context, emit func(utils.Pair[K, V]) bool)
	}

	StreamDestination[K any, V any] interface {
		Insert(key K, value V) bool
	}

	// Stream is a lazy pipeline over the pairs of a source. Nothing runs
	// until one of the sinks is called.
	Stream[K any, V any] struct {
		source StreamSource[K, V]
		fc     flowControl
		stages []stage[K, V]
	}

	pipe[K any, V any] func(
		ctx context.Context,
		g *errgroup.Group,
		in <-chan utils.Pair[K, V],
	) <-chan utils.Pair[K, V]

	stage[K any, V any] struct {
		concurrency int
		pipe        pipe[K, V]
	}

	pairFn[K any, V any] func(ctx context.Context, p utils.Pair[K, V]) (out utils.Pair[K, V], keep bool, err error)
)

func New[K any, V any](
	source StreamSource[K, V],
	options ...FlowOption,
) *Stream[K, V] {
	fc := flowControl{
		concurrency: DefaultConcurrency,
	}

	return &Stream[K, V]{
		source: source,
		fc:     fc.with(options...),
	}
}

// ForEach calls iterator for every pair and passes the pair on.
func (s *Stream[K, V]) ForEach(
	iterator IteratorContext[K, V],
	options ...FlowOption,
) *Stream[K, V] {
	return s.parallel(s.fc.with(options...).concurrency, func(ctx context.Context, p utils.Pair[K, V]) (utils.Pair[K, V], bool, error) {
		if err := iterator(ctx, p.Key, p.Value); err != nil {
			return p, false, errors.Wrapf(err, "for each failed on key %v", p.Key)
		}
		return p, true, nil
	})
}

// Filter the stream items
func (s *Stream[K, V]) Filter(
	predicate PredicateContext[K, V],
	options ...FlowOption,
) *Stream[K, V] {
	return s.parallel(s.fc.with(options...).concurrency, func(ctx context.Context, p utils.Pair[K, V]) (utils.Pair[K, V], bool, error) {
		keep, err := predicate(ctx, p.Key, p.Value)
		if err != nil {
			return p, false, errors.Wrapf(err, "filter failed on key %v", p.Key)
		}
		return p, keep, nil
	})
}

// Map the stream values
func (s *Stream[K, V]) Map(
	mapper MapperContext[K, V],
	options ...FlowOption,
) *Stream[K, V] {
	return s.parallel(s.fc.with(options...).concurrency, func(ctx context.Context, p utils.Pair[K, V]) (utils.Pair[K, V], bool, error) {
		newValue, err := mapper(ctx, p.Key, p.Value)
		if err != nil {
			return p, false, errors.Wrapf(err, "map failed on key %v", p.Key)
		}
		return utils.NewPair(p.Key, newValue), true, nil
	})
}

// Take n items from stream
func (s *Stream[K, V]) Take(n int) *Stream[K, V] {
	f := func(ctx context.Context, g *errgroup.Group, in <-chan utils.Pair[K, V]) <-chan utils.Pair[K, V] {
		out := make(chan utils.Pair[K, V])

		g.Go(func() error {
			defer close(out)

			for taken := 0; taken < n; taken++ {
				select {
				case <-ctx.Done():
					return nil
				case pair, ok := <-in:
					if !ok || !send(ctx, out, pair) {
						return nil
					}
				}
			}

			return nil
		})

		return out
	}

	s.stages = append(s.stages, stage[K, V]{concurrency: 1, pipe: f})
	return s
}

// PipeInto a destination
func (s *Stream[K, V]) PipeInto(
	ctx context.Context,
	dst StreamDestination[K, V],
) error {
	return s.drain(ctx, func(p utils.Pair[K, V]) {
		dst.Insert(p.Key, p.Value)
	})
}

// Collect the stream items in the order they leave the stream
func (s *Stream[K, V]) Collect(ctx context.Context) ([]utils.Pair[K, V], error) {
	var result []utils.Pair[K, V]
	if err := s.drain(ctx, func(p utils.Pair[K, V]) {
		result = append(result, p)
	}); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Stream[K, V]) parallel(concurrency int, fn pairFn[K, V]) *Stream[K, V] {
	f := func(ctx context.Context, g *errgroup.Group, in <-chan utils.Pair[K, V]) <-chan utils.Pair[K, V] {
		out := make(chan utils.Pair[K, V])

		var wg sync.WaitGroup
		wg.Add(concurrency)

		for i := 0; i < concurrency; i++ {
			g.Go(func() error {
				defer wg.Done()

				for {
					select {
					case <-ctx.Done():
						return nil
					case pair, ok := <-in:
						if !ok {
							return nil
						}

						result, keep, err := fn(ctx, pair)
						if err != nil {
							return err
						}

						if keep && !send(ctx, out, result) {
							return nil
						}
					}
				}
			})
		}

		g.Go(func() error {
			wg.Wait()
			close(out)
			return nil
		})

		return out
	}

	s.stages = append(s.stages, stage[K, V]{concurrency: concurrency, pipe: f})
	return s
}

func (s *Stream[K, V]) drain(baseCtx context.Context, sink func(utils.Pair[K, V])) error {
	ctx, cancel := context.WithCancel(baseCtx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	outCh, err := s.run(gctx, g)
	if err != nil {
		return err
	}

	for pair := range outCh {
		sink(pair)
	}

	// stages cut short by Take leave upstream workers waiting to send
	cancel()

	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "stream failed")
	}

	if err := baseCtx.Err(); err != nil {
		return errors.Wrap(err, "stream interrupted")
	}

	return nil
}

func (s *Stream[K, V]) run(ctx context.Context, g *errgroup.Group) (<-chan utils.Pair[K, V], error) {
	for i, st := range s.stages {
		if st.concurrency < 1 {
			return nil, errors.Wrapf(ErrInvalidConcurrency, "stage %d should have at least 1 worker, got %d", i, st.concurrency)
		}
	}

	sourceCh := make(chan utils.Pair[K, V])
	g.Go(func() error {
		defer close(sourceCh)
		forward(ctx, s.source, sourceCh)
		return nil
	})

	var outCh <-chan utils.Pair[K, V] = sourceCh
	for _, st := range s.stages {
		outCh = st.pipe(ctx, g, outCh)
	}

	return outCh, nil
}

func send[K any, V any](ctx context.Context, out chan<- utils.Pair[K, V], pair utils.Pair[K, V]) bool {
	select {
	case <-ctx.Done():
		return false
	case out <- pair:
		return true
	}
}
