package stream

import "github.com/pkg/errors"

var (
	ErrInvalidConcurrency = errors.New("invalid concurrency")
	ErrReducerRequired    = errors.New("reducer function is required")
)
