package domain

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tdex-network/monawallet/pkg/mathutil"
)

var numericAssetRgx = regexp.MustCompile(`^A\d+$`)

// DisplayName returns the long name of the asset if any, its name otherwise.
func (i AssetInfo) DisplayName() string {
	if i.AssetLongname != "" {
		return i.AssetLongname
	}
	return i.Asset
}

// Normalized returns the human readable quantity of the balance.
func (b AssetBalance) Normalized() decimal.Decimal {
	return mathutil.NormalizeQuantity(b.Quantity, b.Divisible)
}

// IsNumeric returns whether the balance is displayed with a numeric asset
// name (A<digits>).
func (b AssetBalance) IsNumeric() bool {
	return numericAssetRgx.MatchString(b.DisplayName)
}

// NewAssetBalances joins the given quantities, by asset, with the asset
// metadata and returns the balances sorted for display. Zero quantities are
// skipped.
func NewAssetBalances(
	quantities map[string]uint64, infos map[string]AssetInfo,
) ([]AssetBalance, error) {
	balances := make([]AssetBalance, 0, len(quantities))
	for asset, quantity := range quantities {
		if quantity == 0 {
			continue
		}
		info, ok := infos[asset]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrAssetMetadataMissing, asset)
		}
		balances = append(balances, AssetBalance{
			Asset:       asset,
			DisplayName: info.DisplayName(),
			Quantity:    quantity,
			Divisible:   info.Divisible,
		})
	}
	SortAssetBalances(balances)
	return balances, nil
}

// SortAssetBalances sorts the balances in place: the native asset first, then
// named assets before numeric ones, then by display name.
func SortAssetBalances(balances []AssetBalance) {
	sort.SliceStable(balances, func(i, j int) bool {
		bi, bj := balances[i], balances[j]
		if iNative, jNative := bi.Asset == NativeAsset, bj.Asset == NativeAsset; iNative != jNative {
			return iNative
		}
		if iNum, jNum := bi.IsNumeric(), bj.IsNumeric(); iNum != jNum {
			return jNum
		}
		if bi.DisplayName != bj.DisplayName {
			return bi.DisplayName < bj.DisplayName
		}
		return bi.Asset < bj.Asset
	})
}
