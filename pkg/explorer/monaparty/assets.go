package monaparty

import (
	"context"
	"fmt"
)

func (m *monaparty) GetBalances(
	ctx context.Context, address string,
) ([]Balance, error) {
	params := getBalancesParams{
		Filters: []filter{{Field: "address", Op: "==", Value: address}},
	}
	var balances []Balance
	if err := m.Call(ctx, "get_balances", params, &balances); err != nil {
		return nil, fmt.Errorf("error on retrieving balances: %w", err)
	}
	return balances, nil
}

func (m *monaparty) GetAssetsInfo(
	ctx context.Context, assets []string,
) ([]AssetInfo, error) {
	if len(assets) <= 0 {
		return []AssetInfo{}, nil
	}
	params := getAssetsInfoParams{AssetsList: assets}
	var infos []AssetInfo
	if err := m.Call(ctx, "get_assets_info", params, &infos); err != nil {
		return nil, fmt.Errorf("error on retrieving assets info: %w", err)
	}
	return infos, nil
}
