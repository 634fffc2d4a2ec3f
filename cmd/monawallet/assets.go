package main

import (
	"github.com/urfave/cli/v2"
)

var assets = cli.Command{
	Name:   "assets",
	Usage:  "get the monaparty asset balances of the wallet",
	Action: assetsAction,
}

type assetBalanceInfo struct {
	Asset       string `json:"asset"`
	DisplayName string `json:"display_name"`
	Quantity    string `json:"quantity"`
	Divisible   bool   `json:"divisible"`
}

func assetsAction(ctx *cli.Context) error {
	deps, err := getWalletService(ctx)
	if err != nil {
		return err
	}
	svc := deps.svc

	if err := svc.RefreshAssetBalances(ctx.Context); err != nil {
		return err
	}

	balances := svc.AssetBalances()
	list := make([]assetBalanceInfo, 0, len(balances))
	for _, b := range balances {
		list = append(list, assetBalanceInfo{
			Asset:       b.Asset,
			DisplayName: b.DisplayName,
			Quantity:    b.Normalized().String(),
			Divisible:   b.Divisible,
		})
	}

	printJSON(map[string]interface{}{
		"address": svc.Address(),
		"assets":  list,
	})
	return nil
}
