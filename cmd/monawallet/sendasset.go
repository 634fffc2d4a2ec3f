package main

import (
	"fmt"

	"github.com/tdex-network/monawallet/internal/core/application"
	"github.com/tdex-network/monawallet/internal/core/domain"
	"github.com/tdex-network/monawallet/pkg/mathutil"
	"github.com/urfave/cli/v2"
)

var sendasset = cli.Command{
	Name:  "sendasset",
	Usage: "send a monaparty asset to an address",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "to",
			Usage:    "the receiving address",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "asset",
			Usage:    "the name of the asset to send",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "quantity",
			Usage:    "the quantity to send, with decimals for divisible assets",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "memo",
			Usage: "an optional text memo attached to the transfer",
		},
		&cli.Uint64Flag{
			Name:  "fee-per-kb",
			Usage: "the fee rate in watanabe per kilobyte, estimated by the server if omitted",
		},
	},
	Action: sendAssetAction,
}

func sendAssetAction(ctx *cli.Context) error {
	deps, err := getWalletService(ctx)
	if err != nil {
		return err
	}
	if deps.resolver == nil {
		return application.ErrAssetServiceNotConfigured
	}

	asset := ctx.String("asset")
	infos, err := deps.resolver.Resolve(ctx.Context, []string{asset})
	if err != nil {
		return err
	}
	info, ok := infos[asset]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrAssetMetadataMissing, asset)
	}
	quantity, err := mathutil.DenormalizeQuantity(
		ctx.String("quantity"), info.Divisible,
	)
	if err != nil {
		return fmt.Errorf("invalid quantity: %w", err)
	}

	txid, err := deps.svc.SendAsset(ctx.Context, application.SendAssetArgs{
		Destination: ctx.String("to"),
		Asset:       asset,
		Quantity:    quantity,
		Memo:        ctx.String("memo"),
		FeePerKB:    ctx.Uint64("fee-per-kb"),
	})
	if err != nil {
		return err
	}

	printJSON(map[string]string{"txid": txid})
	return nil
}
