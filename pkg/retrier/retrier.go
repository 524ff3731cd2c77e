// Package retrier defines the retry contract; concrete backoff policies live
// in subpackages.
package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

// ShouldRetryFunc classifies an error as transient. Returning false stops
// the retry loop and surfaces the error as-is.
type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// Nil retries every error.
	ShouldRetry ShouldRetryFunc
}
