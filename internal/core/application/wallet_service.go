package application

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/monawallet/internal/core/domain"
	"github.com/tdex-network/monawallet/internal/core/ports"
	"github.com/tdex-network/monawallet/pkg/blueprint"
	"github.com/tdex-network/monawallet/pkg/bufferutil"
	"github.com/tdex-network/monawallet/pkg/explorer"
	"github.com/tdex-network/monawallet/pkg/explorer/monaparty"
	"github.com/tdex-network/monawallet/pkg/wallet"
)

const (
	// a payment plus its change
	defaultNumOfOutputs = 2
)

type WalletService interface {
	Address() string
	Session() *Session
	Refresh(ctx context.Context) error
	RefreshAssetBalances(ctx context.Context) error
	Balance() domain.Balance
	Unspents() []domain.Unspent
	AssetBalances() []domain.AssetBalance
	Source() string
	MempoolAware() bool
	Send(ctx context.Context, args SendArgs) (string, error)
	SendAsset(ctx context.Context, args SendAssetArgs) (string, error)
}

type walletService struct {
	key               *wallet.DerivedKey
	network           *chaincfg.Params
	session           *Session
	state             *domain.WalletState
	assetSvc          ports.AssetService
	assetResolver     ports.AssetMetadataResolver
	maxOutflowPerByte uint64
	allowUnconfirmed  bool
}

// NewWalletService derives the wallet key for the configured path and address
// type and returns a service with an empty state. Call Refresh to load the
// wallet's unspents.
func NewWalletService(cfg Config) (WalletService, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	key, err := cfg.Wallet.DeriveKey(wallet.DeriveKeyOpts{
		DerivationPath: cfg.derivationPath(),
		AddressType:    cfg.AddressType,
		Network:        cfg.Network,
	})
	if err != nil {
		return nil, err
	}

	return &walletService{
		key:               key,
		network:           cfg.Network,
		session:           cfg.Session,
		state:             domain.NewWalletState(),
		assetSvc:          cfg.AssetService,
		assetResolver:     cfg.AssetResolver,
		maxOutflowPerByte: cfg.maxOutflowPerByte(),
		allowUnconfirmed:  cfg.AllowUnconfirmed,
	}, nil
}

func (w *walletService) Address() string {
	return w.key.Address
}

func (w *walletService) Session() *Session {
	return w.session
}

func (w *walletService) Balance() domain.Balance {
	return w.state.Balance()
}

func (w *walletService) Unspents() []domain.Unspent {
	return w.state.Unspents()
}

func (w *walletService) AssetBalances() []domain.AssetBalance {
	return w.state.AssetBalances()
}

func (w *walletService) Source() string {
	return w.state.Source()
}

func (w *walletService) MempoolAware() bool {
	return w.state.MempoolAware()
}

// Refresh replaces the wallet state with the unspents currently reported by
// the session's backends. The state is left untouched on failure.
func (w *walletService) Refresh(ctx context.Context) error {
	utxos, source, err := w.session.FetchUtxos(ctx, w.key.Address)
	if err != nil {
		return err
	}

	unspents := make([]domain.Unspent, 0, len(utxos))
	for _, u := range utxos {
		unspents = append(unspents, domain.NewUnspentFromUtxo(u, w.key.Script))
	}
	w.state.Replace(unspents, source.Name(), source.MempoolAware())

	balance := w.state.Balance()
	log.WithFields(log.Fields{
		"source":      source.Name(),
		"utxos":       len(unspents),
		"confirmed":   balance.Confirmed,
		"unconfirmed": balance.Unconfirmed,
	}).Debug("wallet state refreshed")
	return nil
}

func (w *walletService) RefreshAssetBalances(ctx context.Context) error {
	if w.assetSvc == nil || w.assetResolver == nil {
		return ErrAssetServiceNotConfigured
	}

	balances, err := w.assetSvc.GetBalances(ctx, w.key.Address)
	if err != nil {
		return err
	}

	quantities := make(map[string]uint64)
	for _, b := range balances {
		if b.Quantity == 0 {
			continue
		}
		quantities[b.Asset] += b.Quantity
	}
	assets := make([]string, 0, len(quantities))
	for asset := range quantities {
		assets = append(assets, asset)
	}
	sort.Strings(assets)

	infos, err := w.assetResolver.Resolve(ctx, assets)
	if err != nil {
		return err
	}
	assetBalances, err := domain.NewAssetBalances(quantities, infos)
	if err != nil {
		return err
	}

	w.state.ReplaceAssetBalances(assetBalances)
	return nil
}

// Send pays args.Amount to args.Destination with the wallet's coins and
// returns the hash of the broadcasted tx.
func (w *walletService) Send(ctx context.Context, args SendArgs) (string, error) {
	if args.FeeRate <= 0 {
		return "", ErrInvalidFeeRate
	}
	if w.state.RefreshedAt().IsZero() {
		if err := w.Refresh(ctx); err != nil {
			return "", err
		}
	}

	utxos := domain.UnspentsToUtxos(w.state.Unspents())
	allowUnconfirmed := w.canSpendUnconfirmed()

	fee := wallet.EstimateFee(1, defaultNumOfOutputs, w.key.Type, args.FeeRate)
	coins, _, err := explorer.SelectUnspents(
		utxos, args.Amount+fee, allowUnconfirmed,
	)
	if err != nil {
		return "", err
	}
	// the first estimation assumes a single input
	if estimated := wallet.EstimateFee(
		len(coins), defaultNumOfOutputs, w.key.Type, args.FeeRate,
	); estimated > fee {
		coins, _, err = explorer.SelectUnspents(
			utxos, args.Amount+estimated, allowUnconfirmed,
		)
		if err != nil {
			return "", err
		}
		fee = wallet.EstimateFee(
			len(coins), defaultNumOfOutputs, w.key.Type, args.FeeRate,
		)
	}

	ptx, err := wallet.BuildTransaction(wallet.BuildTransactionOpts{
		Utxos:        coins,
		Destination:  args.Destination,
		Amount:       args.Amount,
		ChangeScript: w.key.Script,
		Fee:          fee,
		Network:      w.network,
	})
	if err != nil {
		return "", err
	}

	txid, err := w.signAndBroadcast(ctx, ptx)
	if err != nil {
		return "", err
	}

	log.WithFields(log.Fields{
		"txid":        txid,
		"destination": args.Destination,
		"amount":      args.Amount,
		"fee":         fee,
		"inputs":      len(coins),
	}).Info("transaction broadcasted")
	return txid, nil
}

// SendAsset has the asset service build the transfer, checks the resulting
// blueprint doesn't move more than the allowed outflow, binds it to the
// wallet's unspents, and finally signs and broadcasts it.
func (w *walletService) SendAsset(
	ctx context.Context, args SendAssetArgs,
) (string, error) {
	if w.assetSvc == nil {
		return "", ErrAssetServiceNotConfigured
	}

	txHex, err := w.assetSvc.CreateSend(ctx, monaparty.CreateSendArgs{
		Source:                 w.key.Address,
		Destination:            args.Destination,
		Asset:                  args.Asset,
		Quantity:               args.Quantity,
		Memo:                   args.Memo,
		FeePerKB:               args.FeePerKB,
		AllowUnconfirmedInputs: w.canSpendUnconfirmed(),
		PubKey:                 hex.EncodeToString(w.key.PublicKey.SerializeCompressed()),
	})
	if err != nil {
		return "", err
	}

	bp, err := blueprint.Parse(txHex)
	if err != nil {
		return "", err
	}
	if err := blueprint.CheckOutflow(
		bp, w.key.Script, w.maxOutflowPerByte,
	); err != nil {
		return "", fmt.Errorf("%w (asset %s)", err, args.Asset)
	}

	ptx, err := w.convertBlueprint(ctx, bp)
	if err != nil {
		return "", err
	}

	txid, err := w.signAndBroadcast(ctx, ptx)
	if err != nil {
		return "", err
	}

	log.WithFields(log.Fields{
		"txid":        txid,
		"destination": args.Destination,
		"asset":       args.Asset,
		"quantity":    args.Quantity,
	}).Info("asset transfer broadcasted")
	return txid, nil
}

// convertBlueprint refreshes the state and binds the blueprint's inputs to the
// wallet's unspents. The state may lag behind the asset service, so an
// unknown input is worth one more refresh before giving up.
func (w *walletService) convertBlueprint(
	ctx context.Context, bp *blueprint.Blueprint,
) (*psbt.Packet, error) {
	if err := w.Refresh(ctx); err != nil {
		return nil, err
	}
	ptx, err := blueprint.Convert(bp, domain.UnspentsToUtxos(w.state.Unspents()))
	if err == nil {
		return ptx, nil
	}
	if !errors.Is(err, blueprint.ErrUnknownInputUtxo) {
		return nil, err
	}

	log.WithError(err).Debug("blueprint spends unknown utxo, refreshing again")
	if err := w.Refresh(ctx); err != nil {
		return nil, err
	}
	return blueprint.Convert(bp, domain.UnspentsToUtxos(w.state.Unspents()))
}

func (w *walletService) signAndBroadcast(
	ctx context.Context, ptx *psbt.Packet,
) (string, error) {
	tx, err := wallet.Sign(ptx, w.key)
	if err != nil {
		return "", err
	}
	txHex, err := bufferutil.TxToHex(tx)
	if err != nil {
		return "", err
	}
	return w.session.Broadcast(ctx, txHex)
}

// unconfirmed coins are spent only if allowed and the last refresh comes
// from a source that reliably reports them.
func (w *walletService) canSpendUnconfirmed() bool {
	return w.allowUnconfirmed && w.state.MempoolAware()
}
