package blueprint

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/wire"
	"github.com/tdex-network/monawallet/pkg/explorer"
)

// Convert re-expresses the blueprint as a witness-signable transaction bound
// to the given wallet utxos. Version, locktime, input outpoints and
// sequences are kept, outputs are copied verbatim and in order. Every input
// must match one of the utxos, whose value and script are used as witness
// utxo.
func Convert(bp *Blueprint, utxos []explorer.Utxo) (*psbt.Packet, error) {
	if bp == nil || bp.Tx == nil {
		return nil, ErrNullBlueprint
	}

	utxosByKey := make(map[string]explorer.Utxo, len(utxos))
	for _, u := range utxos {
		utxosByKey[u.Key()] = u
	}

	inputs := make([]*wire.OutPoint, 0, len(bp.Tx.TxIn))
	sequences := make([]uint32, 0, len(bp.Tx.TxIn))
	prevouts := make([]*wire.TxOut, 0, len(bp.Tx.TxIn))
	for _, in := range bp.Tx.TxIn {
		prevOutPoint := in.PreviousOutPoint
		key := explorer.OutpointKey(prevOutPoint.Hash.String(), prevOutPoint.Index)
		u, ok := utxosByKey[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownInputUtxo, key)
		}
		_, prevout, err := u.Parse()
		if err != nil {
			return nil, err
		}

		inputs = append(inputs, wire.NewOutPoint(&prevOutPoint.Hash, prevOutPoint.Index))
		sequences = append(sequences, in.Sequence)
		prevouts = append(prevouts, prevout)
	}

	outputs := make([]*wire.TxOut, 0, len(bp.Tx.TxOut))
	for _, out := range bp.Tx.TxOut {
		script := make([]byte, len(out.PkScript))
		copy(script, out.PkScript)
		outputs = append(outputs, wire.NewTxOut(out.Value, script))
	}

	ptx, err := psbt.New(
		inputs, outputs, bp.Tx.Version, bp.Tx.LockTime, sequences,
	)
	if err != nil {
		return nil, err
	}
	for i, prevout := range prevouts {
		ptx.Inputs[i].WitnessUtxo = prevout
	}
	return ptx, nil
}
