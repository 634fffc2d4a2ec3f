package domain_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/monawallet/internal/core/domain"
)

func TestWalletStateReplace(t *testing.T) {
	t.Parallel()

	state := domain.NewWalletState()
	require.True(t, state.RefreshedAt().IsZero())
	require.Empty(t, state.Unspents())
	require.Zero(t, state.Balance().Total())

	unspents := []domain.Unspent{
		{TxID: testTxid, VOut: 0, Value: 100000000, Confirmed: true},
		{TxID: testTxid, VOut: 1, Value: 2500, Confirmed: false},
	}
	state.Replace(unspents, "esplora", true)

	// the state owns its copy
	unspents[0].Value = 1
	got := state.Unspents()
	require.Equal(t, uint64(100000000), got[0].Value)
	got[1].Value = 1
	require.Equal(t, uint64(2500), state.Unspents()[1].Value)

	require.Equal(t, domain.Balance{Confirmed: 100000000, Unconfirmed: 2500}, state.Balance())
	require.Equal(t, "esplora", state.Source())
	require.True(t, state.MempoolAware())
	require.False(t, state.RefreshedAt().IsZero())

	state.Replace(nil, "monaparty", false)
	require.Empty(t, state.Unspents())
	require.Zero(t, state.Balance().Total())
	require.False(t, state.MempoolAware())
}

func TestWalletStateAssetBalances(t *testing.T) {
	t.Parallel()

	state := domain.NewWalletState()
	state.ReplaceAssetBalances([]domain.AssetBalance{{Asset: "XMP", Quantity: 1}})
	require.Len(t, state.AssetBalances(), 1)
}

func TestWalletStateConcurrentAccess(t *testing.T) {
	t.Parallel()

	state := domain.NewWalletState()
	wg := &sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			state.Replace([]domain.Unspent{
				{TxID: testTxid, Value: uint64(i), Confirmed: true},
				{TxID: testTxid, VOut: 1, Value: uint64(i)},
			}, "esplora", true)
		}(i)
		go func() {
			defer wg.Done()
			// balance and utxos are always consistent with each other
			b := state.Balance()
			assert.Equal(t, b.Confirmed, b.Unconfirmed)
		}()
	}
	wg.Wait()
}
