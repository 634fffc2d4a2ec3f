package domain

import (
	"time"
)

// Replace swaps the utxo set with the given one, fetched from the named
// source, and recomputes the balance.
func (s *WalletState) Replace(
	unspents []Unspent, source string, mempoolAware bool,
) {
	cp := make([]Unspent, len(unspents))
	copy(cp, unspents)
	balance := NewBalance(cp)

	s.lock.Lock()
	defer s.lock.Unlock()

	s.unspents = cp
	s.balance = balance
	s.source = source
	s.mempoolAware = mempoolAware
	s.refreshedAt = time.Now()
}

// ReplaceAssetBalances swaps the asset balances with the given ones.
func (s *WalletState) ReplaceAssetBalances(balances []AssetBalance) {
	cp := make([]AssetBalance, len(balances))
	copy(cp, balances)

	s.lock.Lock()
	defer s.lock.Unlock()

	s.assetBalances = cp
}

// Unspents returns a copy of the current utxo set.
func (s *WalletState) Unspents() []Unspent {
	s.lock.RLock()
	defer s.lock.RUnlock()

	cp := make([]Unspent, len(s.unspents))
	copy(cp, s.unspents)
	return cp
}

// Balance ...
func (s *WalletState) Balance() Balance {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.balance
}

// AssetBalances returns a copy of the current asset balances.
func (s *WalletState) AssetBalances() []AssetBalance {
	s.lock.RLock()
	defer s.lock.RUnlock()

	cp := make([]AssetBalance, len(s.assetBalances))
	copy(cp, s.assetBalances)
	return cp
}

// Source returns the name of the backend that served the last refresh.
func (s *WalletState) Source() string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.source
}

// MempoolAware returns whether the source of the last refresh reports
// unconfirmed utxos reliably.
func (s *WalletState) MempoolAware() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.mempoolAware
}

// RefreshedAt returns the time of the last refresh, zero if never refreshed.
func (s *WalletState) RefreshedAt() time.Time {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.refreshedAt
}
