package application_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tdex-network/monawallet/internal/core/domain"
	"github.com/tdex-network/monawallet/pkg/explorer"
	"github.com/tdex-network/monawallet/pkg/explorer/monaparty"
)

// **** Backend ****

type mockBackend struct {
	mock.Mock
	name         string
	mempoolAware bool
}

func newMockBackend(name string, mempoolAware bool) *mockBackend {
	return &mockBackend{name: name, mempoolAware: mempoolAware}
}

func (m *mockBackend) Name() string {
	return m.name
}

func (m *mockBackend) MempoolAware() bool {
	return m.mempoolAware
}

func (m *mockBackend) GetUnspents(
	ctx context.Context, addr string,
) ([]explorer.Utxo, error) {
	args := m.Called(ctx, addr)

	var res []explorer.Utxo
	if a := args.Get(0); a != nil {
		res = a.([]explorer.Utxo)
	}
	return res, args.Error(1)
}

func (m *mockBackend) BroadcastTransaction(
	ctx context.Context, txhex string,
) (string, error) {
	args := m.Called(ctx, txhex)

	var res string
	if a := args.Get(0); a != nil {
		res = a.(string)
	}
	return res, args.Error(1)
}

func (m *mockBackend) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// **** AssetService ****

type mockAssetService struct {
	mock.Mock
}

func (m *mockAssetService) Call(
	ctx context.Context, method string, params, result interface{},
) error {
	args := m.Called(ctx, method, params, result)
	return args.Error(0)
}

func (m *mockAssetService) GetBalances(
	ctx context.Context, address string,
) ([]monaparty.Balance, error) {
	args := m.Called(ctx, address)

	var res []monaparty.Balance
	if a := args.Get(0); a != nil {
		res = a.([]monaparty.Balance)
	}
	return res, args.Error(1)
}

func (m *mockAssetService) GetAssetsInfo(
	ctx context.Context, assets []string,
) ([]monaparty.AssetInfo, error) {
	args := m.Called(ctx, assets)

	var res []monaparty.AssetInfo
	if a := args.Get(0); a != nil {
		res = a.([]monaparty.AssetInfo)
	}
	return res, args.Error(1)
}

func (m *mockAssetService) CreateSend(
	ctx context.Context, sendArgs monaparty.CreateSendArgs,
) (string, error) {
	args := m.Called(ctx, sendArgs)

	var res string
	if a := args.Get(0); a != nil {
		res = a.(string)
	}
	return res, args.Error(1)
}

// **** AssetMetadataResolver ****

type mockAssetResolver struct {
	mock.Mock
}

func (m *mockAssetResolver) Resolve(
	ctx context.Context, assets []string,
) (map[string]domain.AssetInfo, error) {
	args := m.Called(ctx, assets)

	var res map[string]domain.AssetInfo
	if a := args.Get(0); a != nil {
		res = a.(map[string]domain.AssetInfo)
	}
	return res, args.Error(1)
}
