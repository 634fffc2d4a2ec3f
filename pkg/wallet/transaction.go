package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/tdex-network/monawallet/pkg/explorer"
)

const (
	// DustThreshold is the max amount of an output considered dust. A change
	// not greater than this is left to the fees instead of being added as an
	// output.
	DustThreshold = uint64(546)

	txVersion = 2
)

// BuildTransactionOpts is the struct given to BuildTransaction method
type BuildTransactionOpts struct {
	Utxos        []explorer.Utxo
	Destination  string
	Amount       uint64
	ChangeScript []byte
	Fee          uint64
	Network      *chaincfg.Params
}

func (o BuildTransactionOpts) validate() error {
	if o.Network == nil {
		return ErrNullNetwork
	}
	if len(o.Utxos) <= 0 {
		return ErrEmptyInputs
	}
	for _, u := range o.Utxos {
		if _, _, err := u.Parse(); err != nil {
			return err
		}
	}
	if o.Amount == 0 {
		return ErrZeroOutputAmount
	}
	if o.Amount <= DustThreshold {
		return ErrDustOutputAmount
	}
	if _, err := destinationScript(o.Destination, o.Network); err != nil {
		return err
	}
	if len(o.ChangeScript) <= 0 {
		return ErrNullOutputScript
	}
	return nil
}

// BuildTransaction returns an unsigned transaction spending all the given
// utxos to pay Amount to Destination. The remainder, net of Fee, is sent
// back to ChangeScript only if it's greater than DustThreshold.
func BuildTransaction(opts BuildTransactionOpts) (*psbt.Packet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	inputs := make([]*wire.OutPoint, 0, len(opts.Utxos))
	prevouts := make([]*wire.TxOut, 0, len(opts.Utxos))
	sequences := make([]uint32, 0, len(opts.Utxos))
	totalIn := uint64(0)
	for _, u := range opts.Utxos {
		outpoint, prevout, _ := u.Parse()
		inputs = append(inputs, outpoint)
		prevouts = append(prevouts, prevout)
		sequences = append(sequences, wire.MaxTxInSequenceNum)
		totalIn += u.Value()
	}

	if totalIn < opts.Amount+opts.Fee {
		return nil, fmt.Errorf(
			"%w: inputs %d, amount %d, fee %d",
			ErrNegativeChange, totalIn, opts.Amount, opts.Fee,
		)
	}

	script, _ := destinationScript(opts.Destination, opts.Network)
	outputs := []*wire.TxOut{wire.NewTxOut(int64(opts.Amount), script)}
	if change := totalIn - opts.Amount - opts.Fee; change > DustThreshold {
		outputs = append(outputs, wire.NewTxOut(int64(change), opts.ChangeScript))
	}

	ptx, err := psbt.New(inputs, outputs, txVersion, 0, sequences)
	if err != nil {
		return nil, err
	}
	for i, prevout := range prevouts {
		ptx.Inputs[i].WitnessUtxo = prevout
	}

	return ptx, nil
}

func destinationScript(addr string, net *chaincfg.Params) ([]byte, error) {
	if addr == "" {
		return nil, ErrInvalidOutputAddress
	}
	decoded, err := btcutil.DecodeAddress(addr, net)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOutputAddress, err)
	}
	if !decoded.IsForNet(net) {
		return nil, fmt.Errorf(
			"%w: %s is not a %s address", ErrInvalidOutputAddress, addr, net.Name,
		)
	}
	return txscript.PayToAddrScript(decoded)
}
