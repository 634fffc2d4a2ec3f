package wallet

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/monawallet/pkg/explorer"
)

const (
	testTxid1       = "1111111111111111111111111111111111111111111111111111111111111111"
	testTxid2       = "2222222222222222222222222222222222222222222222222222222222222222"
	testDestination = "MTfu9aLSeo47n3SgFT67Qr5XA9E6ir2xEf"
)

func newTestKey(t *testing.T, addrType AddressType) *DerivedKey {
	wallet, err := newTestWallet()
	require.NoError(t, err)
	key, err := wallet.DeriveKey(DeriveKeyOpts{
		DerivationPath: DefaultDerivationPath,
		AddressType:    addrType,
		Network:        &MainNetParams,
	})
	require.NoError(t, err)
	return key
}

func TestBuildTransaction(t *testing.T) {
	key := newTestKey(t, AddressP2WPKH)

	tests := []struct {
		name           string
		utxos          []explorer.Utxo
		amount         uint64
		fee            uint64
		expectedChange int64
	}{
		{
			name: "with change",
			utxos: []explorer.Utxo{
				explorer.NewUtxo(testTxid1, 0, 100000000, key.Script, true, 3),
			},
			amount:         50000000,
			fee:            33000,
			expectedChange: 49967000,
		},
		{
			name: "change at dust threshold is dropped",
			utxos: []explorer.Utxo{
				explorer.NewUtxo(testTxid1, 0, 60000000, key.Script, true, 3),
			},
			amount:         50000000,
			fee:            10000000 - 546,
			expectedChange: -1,
		},
		{
			name: "change above dust threshold is kept",
			utxos: []explorer.Utxo{
				explorer.NewUtxo(testTxid1, 0, 60000000, key.Script, true, 3),
			},
			amount:         50000000,
			fee:            10000000 - 547,
			expectedChange: 547,
		},
		{
			name: "multiple inputs without change",
			utxos: []explorer.Utxo{
				explorer.NewUtxo(testTxid1, 0, 30000000, key.Script, true, 3),
				explorer.NewUtxo(testTxid2, 1, 20000000, key.Script, false, 0),
			},
			amount:         49990000,
			fee:            10000,
			expectedChange: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ptx, err := BuildTransaction(BuildTransactionOpts{
				Utxos:        tt.utxos,
				Destination:  testDestination,
				Amount:       tt.amount,
				ChangeScript: key.Script,
				Fee:          tt.fee,
				Network:      &MainNetParams,
			})
			require.NoError(t, err)

			tx := ptx.UnsignedTx
			assert.Equal(t, int32(2), tx.Version)
			require.Len(t, tx.TxIn, len(tt.utxos))
			for i, u := range tt.utxos {
				assert.Equal(t, u.Hash(), tx.TxIn[i].PreviousOutPoint.Hash.String())
				assert.Equal(t, u.Index(), tx.TxIn[i].PreviousOutPoint.Index)
				assert.Equal(t, int64(u.Value()), ptx.Inputs[i].WitnessUtxo.Value)
			}

			assert.Equal(t, int64(tt.amount), tx.TxOut[0].Value)
			if tt.expectedChange < 0 {
				assert.Len(t, tx.TxOut, 1)
				return
			}
			require.Len(t, tx.TxOut, 2)
			assert.Equal(t, tt.expectedChange, tx.TxOut[1].Value)
			assert.Equal(t, key.Script, tx.TxOut[1].PkScript)
		})
	}
}

func TestFailingBuildTransaction(t *testing.T) {
	key := newTestKey(t, AddressP2WPKH)
	utxos := []explorer.Utxo{
		explorer.NewUtxo(testTxid1, 0, 100000000, key.Script, true, 3),
	}
	validOpts := BuildTransactionOpts{
		Utxos:        utxos,
		Destination:  testDestination,
		Amount:       50000000,
		ChangeScript: key.Script,
		Fee:          33000,
		Network:      &MainNetParams,
	}

	tests := []struct {
		name string
		edit func(o *BuildTransactionOpts)
		err  error
	}{
		{"null network", func(o *BuildTransactionOpts) { o.Network = nil }, ErrNullNetwork},
		{"no inputs", func(o *BuildTransactionOpts) { o.Utxos = nil }, ErrEmptyInputs},
		{"zero amount", func(o *BuildTransactionOpts) { o.Amount = 0 }, ErrZeroOutputAmount},
		{"dust amount", func(o *BuildTransactionOpts) { o.Amount = DustThreshold }, ErrDustOutputAmount},
		{"bad destination", func(o *BuildTransactionOpts) { o.Destination = "notanaddress" }, ErrInvalidOutputAddress},
		{"testnet destination", func(o *BuildTransactionOpts) { o.Destination = "tmona1qmrsgg4du4uemnmxhn246t0kvkrpmhyl50098vc" }, ErrInvalidOutputAddress},
		{"no change script", func(o *BuildTransactionOpts) { o.ChangeScript = nil }, ErrNullOutputScript},
		{"negative change", func(o *BuildTransactionOpts) { o.Amount = 99990000; o.Fee = 10001 }, ErrNegativeChange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOpts
			tt.edit(&opts)
			ptx, err := BuildTransaction(opts)
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, ptx)
		})
	}
}

func TestSign(t *testing.T) {
	for _, addrType := range []AddressType{AddressP2WPKH, AddressP2PKH} {
		t.Run(string(addrType), func(t *testing.T) {
			key := newTestKey(t, addrType)
			utxos := []explorer.Utxo{
				explorer.NewUtxo(testTxid1, 0, 30000000, key.Script, true, 3),
				explorer.NewUtxo(testTxid2, 5, 40000000, key.Script, true, 3),
			}
			ptx, err := BuildTransaction(BuildTransactionOpts{
				Utxos:        utxos,
				Destination:  testDestination,
				Amount:       50000000,
				ChangeScript: key.Script,
				Fee:          EstimateFee(2, 2, addrType, 200),
				Network:      &MainNetParams,
			})
			require.NoError(t, err)

			prevouts := make(map[wire.OutPoint]*wire.TxOut)
			for i, in := range ptx.Inputs {
				prevouts[ptx.UnsignedTx.TxIn[i].PreviousOutPoint] = in.WitnessUtxo
			}

			tx, err := Sign(ptx, key)
			require.NoError(t, err)
			assertValidSignatures(t, tx, prevouts)
		})
	}
}

func TestFailingSign(t *testing.T) {
	key := newTestKey(t, AddressP2WPKH)
	otherKey := newTestKey(t, AddressP2PKH)

	newPtx := func() *psbt.Packet {
		ptx, err := BuildTransaction(BuildTransactionOpts{
			Utxos: []explorer.Utxo{
				explorer.NewUtxo(testTxid1, 0, 100000000, key.Script, true, 3),
			},
			Destination:  testDestination,
			Amount:       50000000,
			ChangeScript: key.Script,
			Fee:          33000,
			Network:      &MainNetParams,
		})
		require.NoError(t, err)
		return ptx
	}

	_, err := Sign(newPtx(), key.WatchOnly())
	assert.ErrorIs(t, err, ErrSigning)

	_, err = Sign(newPtx(), nil)
	assert.ErrorIs(t, err, ErrSigning)

	_, err = Sign(newPtx(), otherKey)
	assert.ErrorIs(t, err, ErrSigning)

	ptx := newPtx()
	ptx.Inputs[0].WitnessUtxo = nil
	_, err = Sign(ptx, key)
	assert.ErrorIs(t, err, ErrSigning)

	_, err = Sign(nil, key)
	assert.ErrorIs(t, err, ErrNullPsbt)
}

func assertValidSignatures(
	t *testing.T, tx *wire.MsgTx, prevouts map[wire.OutPoint]*wire.TxOut,
) {
	prevoutFetcher := txscript.NewMultiPrevOutFetcher(prevouts)
	sighashes := txscript.NewTxSigHashes(tx, prevoutFetcher)
	for i, in := range tx.TxIn {
		prevout := prevouts[in.PreviousOutPoint]
		engine, err := txscript.NewEngine(
			prevout.PkScript, tx, i, txscript.StandardVerifyFlags, nil,
			sighashes, prevout.Value, prevoutFetcher,
		)
		require.NoError(t, err)
		assert.NoError(t, engine.Execute(), "input %d", i)
	}
}
