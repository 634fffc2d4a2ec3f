// Package blueprint turns unsigned transactions built remotely by the
// monaparty server (blueprints) into transactions the wallet can sign.
package blueprint

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/wire"
	"github.com/tdex-network/monawallet/pkg/bufferutil"
	"github.com/tdex-network/monawallet/pkg/mathutil"
)

var (
	// ErrNullBlueprint ...
	ErrNullBlueprint = errors.New("blueprint must not be null")
	// ErrInvalidBlueprint ...
	ErrInvalidBlueprint = errors.New("invalid blueprint")
	// ErrUnknownInputUtxo is returned when a blueprint spends an output that
	// is not in the wallet utxo set.
	ErrUnknownInputUtxo = errors.New("blueprint input does not match any wallet utxo")
	// ErrExcessiveOutflow is returned when a blueprint sends away more value
	// than allowed for its size.
	ErrExcessiveOutflow = errors.New("blueprint outflow exceeds the allowed cap")
)

// Blueprint is an unsigned legacy-format transaction built by a remote
// server. Raw is the exact serialization received.
type Blueprint struct {
	Raw []byte
	Tx  *wire.MsgTx
}

// Parse decodes a blueprint from its hex serialization.
func Parse(txHex string) (*Blueprint, error) {
	raw, err := hex.DecodeString(txHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBlueprint, err)
	}
	tx, err := bufferutil.TxFromBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBlueprint, err)
	}
	if len(tx.TxIn) <= 0 || len(tx.TxOut) <= 0 {
		return nil, fmt.Errorf("%w: no inputs or outputs", ErrInvalidBlueprint)
	}
	total := int64(0)
	for i, out := range tx.TxOut {
		if out.Value < 0 || out.Value > mathutil.MaxWatanabe {
			return nil, fmt.Errorf(
				"%w: output %d value %d out of range", ErrInvalidBlueprint, i, out.Value,
			)
		}
		total += out.Value
		if total > mathutil.MaxWatanabe {
			return nil, fmt.Errorf(
				"%w: total output value out of range", ErrInvalidBlueprint,
			)
		}
	}
	return &Blueprint{Raw: raw, Tx: tx}, nil
}

// Size returns the size in bytes of the serialized blueprint.
func (bp *Blueprint) Size() int {
	return len(bp.Raw)
}

// TotalOutput returns the sum of all output values. Parse guarantees it
// does not exceed mathutil.MaxWatanabe.
func (bp *Blueprint) TotalOutput() uint64 {
	total := uint64(0)
	for _, out := range bp.Tx.TxOut {
		total += uint64(out.Value)
	}
	return total
}
