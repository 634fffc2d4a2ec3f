package explorer

import (
	"context"
)

// Service is the representation of a remote backend that allows to fetch the
// unspents of an address and to broadcast transactions.
type Service interface {
	// Name identifies the backend in logs and errors.
	Name() string
	// MempoolAware returns whether the backend also reports unspents that are
	// only in mempool, with a reliable confirmation status.
	MempoolAware() bool
	// GetUnspents fetches the unspents locked by the given address.
	GetUnspents(ctx context.Context, addr string) ([]Utxo, error)
	// BroadcastTransaction attempts to add the given tx in hex format to the
	// mempool and returns its tx hash.
	BroadcastTransaction(ctx context.Context, txhex string) (string, error)
	// GetBlockHeight returns the height of the chain tip.
	GetBlockHeight(ctx context.Context) (int, error)
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}
