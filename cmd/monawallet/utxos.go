package main

import (
	"github.com/tdex-network/monawallet/pkg/mathutil"
	"github.com/urfave/cli/v2"
)

var utxos = cli.Command{
	Name:   "utxos",
	Usage:  "get the list of all utxos of the wallet",
	Action: listUtxosAction,
}

type utxoInfo struct {
	TxID          string `json:"txid"`
	VOut          uint32 `json:"vout"`
	Value         string `json:"value"`
	Confirmed     bool   `json:"confirmed"`
	Confirmations int64  `json:"confirmations,omitempty"`
}

func listUtxosAction(ctx *cli.Context) error {
	deps, err := getWalletService(ctx)
	if err != nil {
		return err
	}
	svc := deps.svc

	if err := svc.Refresh(ctx.Context); err != nil {
		return err
	}

	unspents := svc.Unspents()
	list := make([]utxoInfo, 0, len(unspents))
	for _, u := range unspents {
		info := utxoInfo{
			TxID:      u.TxID,
			VOut:      u.VOut,
			Value:     mathutil.FromWatanabe(u.Value).String(),
			Confirmed: u.IsConfirmed(),
		}
		if u.Confirmations > 0 {
			info.Confirmations = u.Confirmations
		}
		list = append(list, info)
	}

	printJSON(map[string]interface{}{
		"source": svc.Source(),
		"utxos":  list,
	})
	return nil
}
