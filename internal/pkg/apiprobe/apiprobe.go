// Package apiprobe checks that the remote API answers before the interactive
// loop starts. Any HTTP answer counts as reachable, including failures the
// server produced itself; only transport-level errors are retried.
package apiprobe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"panel/internal/gateway/rest"
	retrierconfig "panel/pkg/retrier"
	"panel/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 10 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type doer interface {
	Do(ctx context.Context, method, path string, body, out any) error
}

type Probe struct {
	client  doer
	retrier retrierconfig.Retrier
}

func New(client doer) *Probe {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isUnreachable,
	}

	return &Probe{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

// WaitReady pings the API until it answers or the backoff budget runs out.
func (p *Probe) WaitReady(ctx context.Context) error {
	err := p.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		err := p.client.Do(ctx, http.MethodGet, "/dashboard/kpis", nil, nil)
		if err != nil && !isUnreachable(err) {
			// The server answered; an application-level failure still
			// proves reachability.
			return nil
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("api not reachable: %w", err)
	}
	return nil
}

func isUnreachable(err error) bool {
	if err == nil {
		return false
	}
	var terr *rest.TransportError
	return !errors.As(err, &terr)
}
