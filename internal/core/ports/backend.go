package ports

import (
	"context"

	"github.com/tdex-network/monawallet/pkg/explorer"
)

// BalanceSource fetches the unspents of an address from a remote backend.
// Sources that are not mempool aware may report zero-confirmation outputs
// inconsistently, or not at all.
type BalanceSource interface {
	Name() string
	MempoolAware() bool
	GetUnspents(ctx context.Context, addr string) ([]explorer.Utxo, error)
}

// Broadcaster submits a signed transaction in hex format and returns its
// hash.
type Broadcaster interface {
	Name() string
	BroadcastTransaction(ctx context.Context, txhex string) (string, error)
}

// Backend is a remote service that can both serve unspents and broadcast
// transactions. Both esplora and monaparty explorer services implement it.
type Backend interface {
	BalanceSource
	Broadcaster
	Ping(ctx context.Context) error
}
