package wallet

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// Sign signs every input of the given transaction with the derived key,
// each one over its own commitment with SIGHASH_ALL, then finalizes and
// extracts the network-ready transaction. All inputs must be locked by the
// key's script.
func Sign(ptx *psbt.Packet, key *DerivedKey) (*wire.MsgTx, error) {
	if ptx == nil {
		return nil, ErrNullPsbt
	}
	if key == nil || key.PrivateKey == nil {
		return nil, fmt.Errorf("%w: missing private key", ErrSigning)
	}

	prevoutFetcher, err := getPrevoutFetcher(ptx)
	if err != nil {
		return nil, err
	}
	sighashes := txscript.NewTxSigHashes(ptx.UnsignedTx, prevoutFetcher)

	for i := range ptx.Inputs {
		if err := signInput(ptx, i, key, sighashes); err != nil {
			return nil, err
		}
	}

	tx, err := psbt.Extract(ptx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSigning, err)
	}
	return tx, nil
}

func signInput(
	ptx *psbt.Packet, inIndex int, key *DerivedKey,
	sighashes *txscript.TxSigHashes,
) error {
	prevout := ptx.Inputs[inIndex].WitnessUtxo
	if !bytes.Equal(prevout.PkScript, key.Script) {
		return fmt.Errorf(
			"%w: input %d is not locked by the wallet script", ErrSigning, inIndex,
		)
	}

	switch txscript.GetScriptClass(prevout.PkScript) {
	case txscript.WitnessV0PubKeyHashTy:
		sig, err := txscript.RawTxInWitnessSignature(
			ptx.UnsignedTx, sighashes, inIndex, prevout.Value,
			prevout.PkScript, txscript.SigHashAll, key.PrivateKey,
		)
		if err != nil {
			return fmt.Errorf("%w: input %d: %s", ErrSigning, inIndex, err)
		}
		ptx.Inputs[inIndex].PartialSigs = []*psbt.PartialSig{{
			PubKey:    key.PublicKey.SerializeCompressed(),
			Signature: sig,
		}}
		if err := psbt.Finalize(ptx, inIndex); err != nil {
			return fmt.Errorf("%w: input %d: %s", ErrSigning, inIndex, err)
		}

	case txscript.PubKeyHashTy:
		// legacy inputs are finalized right away since the psbt finalizer
		// requires the full previous tx for them.
		sigScript, err := txscript.SignatureScript(
			ptx.UnsignedTx, inIndex, prevout.PkScript, txscript.SigHashAll,
			key.PrivateKey, true,
		)
		if err != nil {
			return fmt.Errorf("%w: input %d: %s", ErrSigning, inIndex, err)
		}
		ptx.Inputs[inIndex].FinalScriptSig = sigScript

	default:
		return fmt.Errorf(
			"%w: input %d has unsupported script type", ErrSigning, inIndex,
		)
	}

	return nil
}
