package application_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/monawallet/internal/core/application"
	"github.com/tdex-network/monawallet/internal/core/ports"
)

func TestProbeEndpoints(t *testing.T) {
	failing := newMockBackend("probe-failing", true)
	failing.On("Ping", mock.Anything).Return(errConnRefused)
	fast := newMockBackend("probe-fast", true)
	fast.On("Ping", mock.Anything).After(20 * time.Millisecond).Return(nil)
	slow := newMockBackend("probe-slow", true)
	slow.On("Ping", mock.Anything).After(500 * time.Millisecond).Return(nil)

	start := time.Now()
	backend, err := application.ProbeEndpoints(
		ctx, []ports.Backend{slow, failing, fast},
	)
	require.NoError(t, err)
	require.Equal(t, fast.Name(), backend.Name())
	// the slow probe is not waited for
	require.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestFailingProbeEndpoints(t *testing.T) {
	_, err := application.ProbeEndpoints(ctx, nil)
	require.ErrorIs(t, err, application.ErrNullSessionBackends)

	a := newMockBackend("probe-a", true)
	a.On("Ping", mock.Anything).Return(errConnRefused)
	b := newMockBackend("probe-b", false)
	b.On("Ping", mock.Anything).Return(errConnRefused)

	_, err = application.ProbeEndpoints(ctx, []ports.Backend{a, b})
	require.ErrorIs(t, err, application.ErrAllEndpointsUnavailable)
	a.AssertNumberOfCalls(t, "Ping", 1)
	b.AssertNumberOfCalls(t, "Ping", 1)
}
