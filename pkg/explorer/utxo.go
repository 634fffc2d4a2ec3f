package explorer

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// UnknownConfirmations is the confirmation count of an utxo whose backend
// only reports a confirmed/unconfirmed flag.
const UnknownConfirmations = -1

// Utxo represents a transaction output spendable by the wallet.
type Utxo interface {
	Hash() string
	Index() uint32
	Value() uint64
	Script() []byte
	IsConfirmed() bool
	Confirmations() int64
	Key() string
	Parse() (*wire.OutPoint, *wire.TxOut, error)
}

// NewUtxo returns a new Utxo. Pass UnknownConfirmations as confirmations if
// the source only knows whether the output is confirmed.
func NewUtxo(
	hash string, index uint32, value uint64, script []byte,
	confirmed bool, confirmations int64,
) Utxo {
	return utxo{
		UHash:          hash,
		UIndex:         index,
		UValue:         value,
		UScript:        script,
		UConfirmed:     confirmed,
		UConfirmations: confirmations,
	}
}

// WithScript returns a copy of the given utxo locked by the given script.
func WithScript(u Utxo, script []byte) Utxo {
	return NewUtxo(
		u.Hash(), u.Index(), u.Value(), script, u.IsConfirmed(), u.Confirmations(),
	)
}

// OutpointKey returns the "txid:vout" identifier of an output. The txid is
// lowercased so that keys don't depend on the hex case used by the source.
func OutpointKey(hash string, index uint32) string {
	return fmt.Sprintf("%s:%d", strings.ToLower(hash), index)
}

type utxo struct {
	UHash          string
	UIndex         uint32
	UValue         uint64
	UScript        []byte
	UConfirmed     bool
	UConfirmations int64
}

func (u utxo) Hash() string {
	return u.UHash
}

func (u utxo) Index() uint32 {
	return u.UIndex
}

func (u utxo) Value() uint64 {
	return u.UValue
}

func (u utxo) Script() []byte {
	return u.UScript
}

func (u utxo) IsConfirmed() bool {
	return u.UConfirmed
}

func (u utxo) Confirmations() int64 {
	return u.UConfirmations
}

func (u utxo) Key() string {
	return OutpointKey(u.UHash, u.UIndex)
}

// Parse returns the outpoint referencing the utxo and the prevout to be used
// as witness utxo when spending it.
func (u utxo) Parse() (*wire.OutPoint, *wire.TxOut, error) {
	hash, err := chainhash.NewHashFromStr(u.UHash)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid utxo hash %s: %w", u.UHash, err)
	}
	if len(u.UScript) <= 0 {
		return nil, nil, fmt.Errorf("utxo %s has no script", u.Key())
	}
	outpoint := wire.NewOutPoint(hash, u.UIndex)
	prevout := wire.NewTxOut(int64(u.UValue), u.UScript)
	return outpoint, prevout, nil
}

func (u utxo) String() string {
	return fmt.Sprintf(
		"%s value=%d confirmed=%t script=%s",
		u.Key(), u.UValue, u.UConfirmed, hex.EncodeToString(u.UScript),
	)
}
