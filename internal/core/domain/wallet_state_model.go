package domain

import (
	"sync"
	"time"
)

// WalletState holds the last known utxo set of the wallet together with the
// derived balances. Refreshes replace it as a whole.
type WalletState struct {
	lock *sync.RWMutex

	unspents      []Unspent
	balance       Balance
	source        string
	mempoolAware  bool
	refreshedAt   time.Time
	assetBalances []AssetBalance
}

// NewWalletState returns an empty, never refreshed, WalletState.
func NewWalletState() *WalletState {
	return &WalletState{
		lock:          &sync.RWMutex{},
		unspents:      []Unspent{},
		assetBalances: []AssetBalance{},
	}
}
