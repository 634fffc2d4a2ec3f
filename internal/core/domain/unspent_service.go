package domain

import (
	"github.com/tdex-network/monawallet/pkg/explorer"
)

// NewUnspentFromUtxo returns an Unspent from the given explorer utxo. The
// script, if not nil, overrides the utxo's one.
func NewUnspentFromUtxo(u explorer.Utxo, script []byte) Unspent {
	if script == nil {
		script = u.Script()
	}
	return Unspent{
		TxID:          u.Hash(),
		VOut:          u.Index(),
		Value:         u.Value(),
		ScriptPubKey:  script,
		Confirmed:     u.IsConfirmed(),
		Confirmations: u.Confirmations(),
	}
}

// IsKeyEqual returns whether the provided UnspentKey matches that or the
// current unspent.
func (u *Unspent) IsKeyEqual(key UnspentKey) bool {
	return u.TxID == key.TxID && u.VOut == key.VOut
}

// IsConfirmed returns whether the unspent is already confirmed.
func (u *Unspent) IsConfirmed() bool {
	return u.Confirmed
}

// Key returns the UnspentKey of the current unspent.
func (u *Unspent) Key() UnspentKey {
	return UnspentKey{
		TxID: u.TxID,
		VOut: u.VOut,
	}
}

// ToUtxo returns the current unpsent as an explorer.Utxo interface
func (u *Unspent) ToUtxo() explorer.Utxo {
	return explorer.NewUtxo(
		u.TxID,
		u.VOut,
		u.Value,
		u.ScriptPubKey,
		u.Confirmed,
		u.Confirmations,
	)
}

// UnspentsToUtxos converts a list of unspents to explorer utxos, keeping
// their order.
func UnspentsToUtxos(unspents []Unspent) []explorer.Utxo {
	utxos := make([]explorer.Utxo, 0, len(unspents))
	for i := range unspents {
		utxos = append(utxos, unspents[i].ToUtxo())
	}
	return utxos
}
