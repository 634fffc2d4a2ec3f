package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/monawallet/internal/core/ports"
	"github.com/tdex-network/monawallet/pkg/explorer"
	"github.com/tdex-network/monawallet/pkg/stats"
)

const (
	opFetchUtxos = "fetch_utxos"
	opBroadcast  = "broadcast"
)

// Session holds the ordered list of backends of a wallet and which of them
// is currently preferred. Operations start from the preferred backend and,
// when it fails, move the preference to the next one and retry there. The
// preference is never moved back automatically: a new session, built after
// probing the endpoints again, is required for that.
type Session struct {
	id       string
	backends []ports.Backend

	lock      *sync.Mutex
	preferred int
}

// NewSession returns a session for the given backends, the first being the
// primary one.
func NewSession(backends ...ports.Backend) (*Session, error) {
	if len(backends) <= 0 {
		return nil, ErrNullSessionBackends
	}
	for _, b := range backends {
		if b == nil {
			return nil, ErrNullSessionBackends
		}
	}
	return &Session{
		id:       uuid.New().String(),
		backends: backends,
		lock:     &sync.Mutex{},
	}, nil
}

// ID ...
func (s *Session) ID() string {
	return s.id
}

// Preferred returns the backend operations are currently tried first with.
func (s *Session) Preferred() ports.Backend {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.backends[s.preferred]
}

// FetchUtxos returns the unspents of the given address together with the
// backend that served them.
func (s *Session) FetchUtxos(
	ctx context.Context, addr string,
) ([]explorer.Utxo, ports.BalanceSource, error) {
	var utxos []explorer.Utxo
	source, err := s.do(ctx, opFetchUtxos, func(b ports.Backend) error {
		u, err := b.GetUnspents(ctx, addr)
		if err != nil {
			return err
		}
		utxos = u
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return utxos, source, nil
}

// Broadcast submits the given signed tx and returns its hash.
func (s *Session) Broadcast(ctx context.Context, txHex string) (string, error) {
	var txid string
	backend, err := s.do(ctx, opBroadcast, func(b ports.Backend) error {
		id, err := b.BroadcastTransaction(ctx, txHex)
		if err != nil {
			return err
		}
		txid = id
		return nil
	})
	if err != nil {
		return "", err
	}

	stats.BroadcastedTransactions.WithLabelValues(backend.Name()).Inc()
	return txid, nil
}

func (s *Session) do(
	ctx context.Context, operation string, fn func(ports.Backend) error,
) (ports.Backend, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	errs := make([]error, 0, len(s.backends))
	for attempt := 0; attempt < len(s.backends); attempt++ {
		backend := s.backends[s.preferred]
		err := fn(backend)
		if err == nil {
			return backend, nil
		}
		// a canceled operation says nothing about the backend's health
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		err = fmt.Errorf("%w: %s: %s", ErrBackendUnavailable, backend.Name(), err)
		errs = append(errs, err)

		if attempt == len(s.backends)-1 {
			break
		}

		next := (s.preferred + 1) % len(s.backends)
		log.WithError(err).WithFields(log.Fields{
			"session":   s.id,
			"operation": operation,
			"backend":   backend.Name(),
			"fallback":  s.backends[next].Name(),
		}).Warn("backend failed, switching to fallback")
		stats.BackendFailovers.WithLabelValues(
			operation, backend.Name(), s.backends[next].Name(),
		).Inc()
		s.preferred = next
	}

	return nil, fmt.Errorf(
		"%w: %w", ErrAllEndpointsUnavailable, errors.Join(errs...),
	)
}
