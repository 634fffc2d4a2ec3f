package bufferutil

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxHex(t *testing.T) {
	hash, _ := chainhash.NewHashFromStr(
		"0000000000000000000000000000000000000000000000000000000000000001",
	)
	tx := wire.NewMsgTx(2)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(hash, 1), nil, nil))
	tx.AddTxOut(wire.NewTxOut(1000, []byte{0x6a}))

	txHex, err := TxToHex(tx)
	require.NoError(t, err)

	decoded, err := TxFromHex(txHex)
	require.NoError(t, err)
	assert.Equal(t, tx.TxHash(), decoded.TxHash())

	_, err = TxFromHex("zz")
	assert.Error(t, err)
	_, err = TxFromHex("0200")
	assert.Error(t, err)
}

func TestTxID(t *testing.T) {
	txid := "5d2f1ab1e1e6e7c1a6de8e3e7b54a1f0b2a1e5f2d4c3b2a1908f7e6d5c4b3a29"
	buf, err := TxIDToBytes(txid)
	require.NoError(t, err)
	assert.Equal(t, byte(0x29), buf[0])
	assert.Equal(t, txid, TxIDFromBytes(buf))
	assert.Empty(t, TxIDFromBytes([]byte{0x01}))
}
