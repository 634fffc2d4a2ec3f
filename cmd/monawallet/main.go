package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/monawallet/config"
	"github.com/tdex-network/monawallet/internal/core/application"
	"github.com/tdex-network/monawallet/internal/core/ports"
	"github.com/tdex-network/monawallet/internal/infrastructure/assetcache"
	"github.com/tdex-network/monawallet/pkg/explorer/monaparty"
	"github.com/tdex-network/monawallet/pkg/wallet"
	"github.com/urfave/cli/v2"
)

var mnemonicFlag = &cli.StringFlag{
	Name:  "mnemonic",
	Usage: "the 24-words mnemonic of the wallet, overrides MONAWALLET_MNEMONIC",
}

func main() {
	app := cli.NewApp()

	app.Version = "0.0.1"
	app.Name = "monawallet"
	app.Usage = "Command line interface for a self-custodial Monacoin and Monaparty wallet"
	app.Flags = []cli.Flag{mnemonicFlag}
	app.Before = func(_ *cli.Context) error {
		if err := config.Validate(); err != nil {
			return err
		}
		log.SetLevel(config.GetLogLevel())
		return nil
	}
	app.Commands = append(
		app.Commands,
		&genseed,
		&address,
		&balance,
		&utxos,
		&assets,
		&send,
		&sendasset,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

// walletDeps is what commands need to operate the wallet.
type walletDeps struct {
	svc      application.WalletService
	resolver ports.AssetMetadataResolver
}

func getWallet(ctx *cli.Context) (*wallet.Wallet, error) {
	mnemonic := config.GetMnemonic()
	if m := ctx.String(mnemonicFlag.Name); m != "" {
		config.Set(config.MnemonicKey, m)
		mnemonic = config.GetMnemonic()
	}
	if len(mnemonic) <= 0 {
		return nil, errors.New(
			"wallet mnemonic is required, set MONAWALLET_MNEMONIC or --mnemonic",
		)
	}
	return wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
		Mnemonic: mnemonic,
	})
}

func getWalletService(ctx *cli.Context) (*walletDeps, error) {
	w, err := getWallet(ctx)
	if err != nil {
		return nil, err
	}

	esploraBackend, monapartyBackend := probeBackends(ctx.Context)

	backends := make([]ports.Backend, 0, 2)
	if config.GetString(config.PrimaryBackendKey) == config.BackendEsplora {
		backends = appendBackend(backends, esploraBackend, monapartyBackend)
	} else {
		backends = appendBackend(backends, monapartyBackend, esploraBackend)
	}
	session, err := application.NewSession(backends...)
	if err != nil {
		return nil, fmt.Errorf("%w: no reachable backend", application.ErrAllEndpointsUnavailable)
	}

	cfg := application.Config{
		Wallet:            w,
		DerivationPath:    config.GetString(config.DerivationPathKey),
		AddressType:       config.GetAddressType(),
		Network:           config.GetNetwork(),
		Session:           session,
		MaxOutflowPerByte: config.GetUint64(config.MaxOutflowPerByteKey),
		AllowUnconfirmed:  config.GetBool(config.AllowUnconfirmedKey),
	}

	var resolver ports.AssetMetadataResolver
	if assetSvc, ok := monapartyBackend.(monaparty.Service); ok {
		resolver, err = assetcache.NewService(
			assetSvc, config.GetInt(config.AssetCacheSizeKey),
		)
		if err != nil {
			return nil, err
		}
		cfg.AssetService = assetSvc
		cfg.AssetResolver = resolver
	}

	svc, err := application.NewWalletService(cfg)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"session": session.ID(),
		"primary": session.Preferred().Name(),
	}).Debug("wallet session started")
	return &walletDeps{svc, resolver}, nil
}

// probeBackends adopts the first responding endpoint of each backend family.
// A nil backend is returned for a family without reachable endpoints.
func probeBackends(ctx context.Context) (esploraBackend, monapartyBackend ports.Backend) {
	esploraSvcs := config.GetEsploraServices()
	candidates := make([]ports.Backend, 0, len(esploraSvcs))
	for _, s := range esploraSvcs {
		candidates = append(candidates, s)
	}
	if len(candidates) > 0 {
		b, err := application.ProbeEndpoints(ctx, candidates)
		if err != nil {
			log.WithError(err).Warn("no esplora endpoint is reachable")
		}
		esploraBackend = b
	}

	monapartySvcs := config.GetMonapartyServices()
	candidates = make([]ports.Backend, 0, len(monapartySvcs))
	for _, s := range monapartySvcs {
		candidates = append(candidates, s)
	}
	if len(candidates) > 0 {
		b, err := application.ProbeEndpoints(ctx, candidates)
		if err != nil {
			log.WithError(err).Warn("no monaparty endpoint is reachable")
		}
		monapartyBackend = b
	}
	return
}

func appendBackend(list []ports.Backend, backends ...ports.Backend) []ports.Backend {
	for _, b := range backends {
		if b != nil {
			list = append(list, b)
		}
	}
	return list
}

func printJSON(resp interface{}) {
	jsonBytes, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fmt.Println("unable to decode response: ", err)
		return
	}
	fmt.Println(string(jsonBytes))
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

func fatal(err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowCommandHelp(e.ctx, e.command)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[monawallet] %v\n", err)
	}
	os.Exit(1)
}
