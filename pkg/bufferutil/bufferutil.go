package bufferutil

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// TxFromHex deserializes a transaction in hex format. Both legacy and
// witness serializations are accepted.
func TxFromHex(txHex string) (*wire.MsgTx, error) {
	buf, err := hex.DecodeString(txHex)
	if err != nil {
		return nil, fmt.Errorf("invalid tx hex: %w", err)
	}
	return TxFromBytes(buf)
}

// TxFromBytes deserializes a raw transaction.
func TxFromBytes(buf []byte) (*wire.MsgTx, error) {
	tx := wire.NewMsgTx(wire.TxVersion)
	if err := tx.Deserialize(bytes.NewReader(buf)); err != nil {
		return nil, fmt.Errorf("invalid tx: %w", err)
	}
	return tx, nil
}

// TxToHex serializes the given transaction, with witnesses if any.
func TxToHex(tx *wire.MsgTx) (string, error) {
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf.Bytes()), nil
}

// TxIDFromBytes returns the hex representation of a hash in internal byte
// order, ie. reversed.
func TxIDFromBytes(buffer []byte) string {
	hash, err := chainhash.NewHash(buffer)
	if err != nil {
		return ""
	}
	return hash.String()
}

// TxIDToBytes is the inverse of TxIDFromBytes.
func TxIDToBytes(str string) ([]byte, error) {
	hash, err := chainhash.NewHashFromStr(str)
	if err != nil {
		return nil, err
	}
	return hash.CloneBytes(), nil
}
