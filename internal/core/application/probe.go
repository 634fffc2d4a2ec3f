package application

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/monawallet/internal/core/ports"
)

type probeResult struct {
	backend ports.Backend
	err     error
}

// ProbeEndpoints pings all candidates concurrently and returns the first one
// that answers successfully. Pending probes are not canceled, their results
// are just dropped.
func ProbeEndpoints(
	ctx context.Context, candidates []ports.Backend,
) (ports.Backend, error) {
	if len(candidates) <= 0 {
		return nil, ErrNullSessionBackends
	}

	// buffered so that losers never block
	results := make(chan probeResult, len(candidates))
	for _, c := range candidates {
		go func(b ports.Backend) {
			results <- probeResult{b, b.Ping(ctx)}
		}(c)
	}

	errs := make([]error, 0, len(candidates))
	for range candidates {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case res := <-results:
			if res.err == nil {
				log.Debugf("adopted endpoint %s", res.backend.Name())
				return res.backend, nil
			}
			errs = append(errs, fmt.Errorf(
				"%w: %s: %s", ErrBackendUnavailable, res.backend.Name(), res.err,
			))
		}
	}

	return nil, fmt.Errorf(
		"%w: %w", ErrAllEndpointsUnavailable, errors.Join(errs...),
	)
}
