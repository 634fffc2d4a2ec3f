package ports

import (
	"context"

	"github.com/tdex-network/monawallet/internal/core/domain"
	"github.com/tdex-network/monawallet/pkg/explorer/monaparty"
)

// AssetService is the asset layer of the monaparty protocol.
type AssetService interface {
	Call(ctx context.Context, method string, params, result interface{}) error
	GetBalances(ctx context.Context, address string) ([]monaparty.Balance, error)
	GetAssetsInfo(
		ctx context.Context, assets []string,
	) ([]monaparty.AssetInfo, error)
	CreateSend(ctx context.Context, args monaparty.CreateSendArgs) (string, error)
}

// AssetMetadataResolver returns the metadata of the given assets, indexed by
// asset name. Assets unknown to the remote service are left out of the
// returned map.
type AssetMetadataResolver interface {
	Resolve(ctx context.Context, assets []string) (map[string]domain.AssetInfo, error)
}
