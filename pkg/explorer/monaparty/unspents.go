package monaparty

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/monawallet/pkg/explorer"
	"github.com/tdex-network/monawallet/pkg/mathutil"
	"github.com/tdex-network/monawallet/pkg/stats"
)

// blocks that may be mined between the address info and the tip height
// requests
const anomalyTolerance = 2

// GetUnspents returns the utxos of the given address. An utxo is confirmed
// if it has at least one confirmation. The server is known to sometimes
// report the chain height as confirmation count of mempool utxos: when the
// chain tip is available, such counts are flagged and the utxo is treated
// as unconfirmed.
func (m *monaparty) GetUnspents(
	ctx context.Context, addr string,
) ([]explorer.Utxo, error) {
	var infos []chainAddressInfo
	params := chainAddressInfoParams{
		Addresses:         []string{addr},
		WithUxtos:         true,
		WithLastTxnHashes: false,
	}
	if err := m.Call(ctx, "get_chain_address_info", params, &infos); err != nil {
		return nil, fmt.Errorf("error on retrieving utxos: %w", err)
	}
	if len(infos) <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrAddressInfoNotFound, addr)
	}
	if infos[0].Addr != addr {
		return nil, fmt.Errorf(
			"%w: got info for %s instead of %s", ErrAddressInfoNotFound, infos[0].Addr, addr,
		)
	}

	// best effort, anomalies are just not detected without the tip height
	tipHeight, err := m.GetBlockHeight(ctx)
	if err != nil {
		log.WithError(err).Debug("monaparty: unable to fetch chain tip height")
		tipHeight = -1
	}

	unspents := make([]explorer.Utxo, 0, len(infos[0].Uxtos))
	for _, u := range infos[0].Uxtos {
		value, err := mathutil.DecimalToWatanabe(u.Amount)
		if err != nil {
			return nil, fmt.Errorf(
				"invalid amount for utxo %s: %w", explorer.OutpointKey(u.TxID, u.Vout), err,
			)
		}

		confirmed := u.Confirmations >= 1
		if tipHeight > 0 && u.Confirmations >= int64(tipHeight)-anomalyTolerance {
			log.WithFields(log.Fields{
				"utxo":          explorer.OutpointKey(u.TxID, u.Vout),
				"confirmations": u.Confirmations,
				"tip_height":    tipHeight,
			}).Warn("monaparty: implausible confirmation count, utxo treated as unconfirmed")
			stats.ConfirmationAnomalies.WithLabelValues(Name).Inc()
			confirmed = false
		}

		unspents = append(unspents, explorer.NewUtxo(
			u.TxID, u.Vout, value, nil, confirmed, u.Confirmations,
		))
	}
	return unspents, nil
}
