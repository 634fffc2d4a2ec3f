package explorer

import (
	"errors"
	"fmt"
)

// SelectionMargin is added on top of the target amount so that the selected
// coins are likely to also cover the network fees (1/1000 of a coin).
const SelectionMargin = uint64(100000)

// ErrInsufficientFunds is returned when the eligible utxos don't cover the
// target amount plus the selection margin.
var ErrInsufficientFunds = errors.New("insufficient funds")

// SelectUnspents performs a greedy coin selection over the given list of
// utxos, in their order, and returns the first prefix of eligible ones whose
// total covers targetAmount + SelectionMargin.
// Unconfirmed utxos are eligible only if allowUnconfirmed is true.
func SelectUnspents(
	utxos []Utxo,
	targetAmount uint64,
	allowUnconfirmed bool,
) (coins []Utxo, total uint64, err error) {
	needed := targetAmount + SelectionMargin

	for i := range utxos {
		utxo := utxos[i]
		if !utxo.IsConfirmed() && !allowUnconfirmed {
			continue
		}

		coins = append(coins, utxo)
		total += utxo.Value()
		if total >= needed {
			return coins, total, nil
		}
	}

	return nil, 0, fmt.Errorf(
		"%w: needed %d, available %d", ErrInsufficientFunds, needed, total,
	)
}
