package stream

import (
	"context"

	"github.com/pkg/errors"

	"github.com/koivunej/sorted-list/utils"
)

// Reduce folds the stream into a single value starting from initial.
func Reduce[K any, V any, R any](
	ctx context.Context,
	s *Stream[K, V],
	initial R,
	reducer Reducer[K, V, R],
) (R, error) {
	if reducer == nil {
		return utils.GetZero[R](), ErrReducerRequired
	}

	result := initial
	if err := s.drain(ctx, func(p utils.Pair[K, V]) {
		result = reducer(result, p.Key, p.Value)
	}); err != nil {
		return utils.GetZero[R](), errors.Wrap(err, "reduce failed")
	}

	return result, nil
}
