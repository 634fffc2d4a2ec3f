package esplora

import (
	"github.com/tdex-network/monawallet/pkg/explorer"
)

type witnessUtxo struct {
	Hash   string     `json:"txid"`
	Index  uint32     `json:"vout"`
	Value  uint64     `json:"value"`
	Status utxoStatus `json:"status"`
}

type utxoStatus struct {
	Confirmed   bool  `json:"confirmed"`
	BlockHeight int64 `json:"block_height"`
}

func (wu witnessUtxo) toUtxo() explorer.Utxo {
	return explorer.NewUtxo(
		wu.Hash, wu.Index, wu.Value, nil,
		wu.Status.Confirmed, explorer.UnknownConfirmations,
	)
}
