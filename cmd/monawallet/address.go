package main

import (
	"encoding/hex"

	"github.com/tdex-network/monawallet/config"
	"github.com/tdex-network/monawallet/pkg/wallet"
	"github.com/urfave/cli/v2"
)

var address = cli.Command{
	Name:   "address",
	Usage:  "show the receiving address of the wallet",
	Action: addressAction,
}

func addressAction(ctx *cli.Context) error {
	w, err := getWallet(ctx)
	if err != nil {
		return err
	}

	key, err := w.DeriveKey(wallet.DeriveKeyOpts{
		DerivationPath: config.GetString(config.DerivationPathKey),
		AddressType:    config.GetAddressType(),
		Network:        config.GetNetwork(),
	})
	if err != nil {
		return err
	}

	printJSON(map[string]string{
		"address":         key.Address,
		"address_type":    string(key.Type),
		"derivation_path": key.Path.String(),
		"public_key":      hex.EncodeToString(key.PublicKey.SerializeCompressed()),
		"network":         config.GetString(config.NetworkKey),
	})
	return nil
}
