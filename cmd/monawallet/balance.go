package main

import (
	"github.com/tdex-network/monawallet/pkg/mathutil"
	"github.com/urfave/cli/v2"
)

var balance = cli.Command{
	Name:   "balance",
	Usage:  "get the confirmed and unconfirmed balance of the wallet",
	Action: balanceAction,
}

func balanceAction(ctx *cli.Context) error {
	deps, err := getWalletService(ctx)
	if err != nil {
		return err
	}
	svc := deps.svc

	if err := svc.Refresh(ctx.Context); err != nil {
		return err
	}

	b := svc.Balance()
	printJSON(map[string]interface{}{
		"address":       svc.Address(),
		"source":        svc.Source(),
		"mempool_aware": svc.MempoolAware(),
		"confirmed":     mathutil.FromWatanabe(b.Confirmed).String(),
		"unconfirmed":   mathutil.FromWatanabe(b.Unconfirmed).String(),
		"total":         mathutil.FromWatanabe(b.Total()).String(),
	})
	return nil
}
