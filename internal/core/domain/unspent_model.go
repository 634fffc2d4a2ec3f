package domain

// UnspentKey represent the ID of an Unspent, composed by its txid and vout.
type UnspentKey struct {
	TxID string
	VOut uint32
}

// Unspent is the data structure representing an UTXO of the wallet.
// Confirmations is the raw count reported by the source, or -1 if the source
// only reports a flag: Confirmed is the only reliable status.
type Unspent struct {
	TxID          string
	VOut          uint32
	Value         uint64
	ScriptPubKey  []byte
	Confirmed     bool
	Confirmations int64
}
