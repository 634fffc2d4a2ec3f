package main

import (
	"fmt"

	"github.com/tdex-network/monawallet/config"
	"github.com/tdex-network/monawallet/internal/core/application"
	"github.com/tdex-network/monawallet/pkg/mathutil"
	"github.com/urfave/cli/v2"
)

var send = cli.Command{
	Name:  "send",
	Usage: "send MONA to an address",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "to",
			Usage:    "the receiving address",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "amount",
			Usage:    "the amount of MONA to send, ie. 0.5",
			Required: true,
		},
		&cli.Float64Flag{
			Name:  "fee-rate",
			Usage: "the fee rate in watanabe per vbyte, defaults to MONAWALLET_FEE_RATE",
		},
	},
	Action: sendAction,
}

func sendAction(ctx *cli.Context) error {
	amount, err := mathutil.ToWatanabe(ctx.String("amount"))
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	feeRate := ctx.Float64("fee-rate")
	if feeRate <= 0 {
		feeRate = config.GetFloat(config.FeeRateKey)
	}

	deps, err := getWalletService(ctx)
	if err != nil {
		return err
	}
	svc := deps.svc

	if err := svc.Refresh(ctx.Context); err != nil {
		return err
	}

	txid, err := svc.Send(ctx.Context, application.SendArgs{
		Destination: ctx.String("to"),
		Amount:      amount,
		FeeRate:     feeRate,
	})
	if err != nil {
		return err
	}

	printJSON(map[string]string{"txid": txid})
	return nil
}
