package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/monawallet/internal/core/domain"
)

func TestNewAssetBalances(t *testing.T) {
	t.Parallel()

	infos := map[string]domain.AssetInfo{
		"XMP":                 {Asset: "XMP", Divisible: true},
		"MONANA":              {Asset: "MONANA", Divisible: true},
		"ASSET":               {Asset: "ASSET"},
		"A10000000000000000":  {Asset: "A10000000000000000"},
		"A12000000000000000":  {Asset: "A12000000000000000", AssetLongname: "MONANA.sub"},
		"A900000000000000000": {Asset: "A900000000000000000"},
		"ZERO":                {Asset: "ZERO"},
	}
	quantities := map[string]uint64{
		"A900000000000000000": 1,
		"MONANA":              250000000,
		"A10000000000000000":  7,
		"XMP":                 150000000,
		"A12000000000000000":  3,
		"ASSET":               10,
		"ZERO":                0,
	}

	balances, err := domain.NewAssetBalances(quantities, infos)
	require.NoError(t, err)

	names := make([]string, 0, len(balances))
	for _, b := range balances {
		names = append(names, b.DisplayName)
	}
	require.Equal(t, []string{
		"XMP",
		"ASSET",
		"MONANA",
		"MONANA.sub",
		"A10000000000000000",
		"A900000000000000000",
	}, names)

	require.Equal(t, "1.5", balances[0].Normalized().String())
	require.Equal(t, "2.5", balances[2].Normalized().String())
	require.Equal(t, "10", balances[1].Normalized().String())
	require.Equal(t, "A12000000000000000", balances[3].Asset)
}

func TestFailingNewAssetBalances(t *testing.T) {
	t.Parallel()

	_, err := domain.NewAssetBalances(
		map[string]uint64{"XMP": 1, "UNKNOWN": 5},
		map[string]domain.AssetInfo{"XMP": {Asset: "XMP"}},
	)
	require.ErrorIs(t, err, domain.ErrAssetMetadataMissing)
	require.Contains(t, err.Error(), "UNKNOWN")
}

func TestSortAssetBalances(t *testing.T) {
	t.Parallel()

	balances := []domain.AssetBalance{
		{Asset: "A95", DisplayName: "A95"},
		{Asset: "BBB", DisplayName: "BBB"},
		{Asset: "XMP", DisplayName: "XMP"},
		{Asset: "AAA", DisplayName: "AAA"},
	}
	domain.SortAssetBalances(balances)
	require.Equal(t, "XMP", balances[0].Asset)
	require.Equal(t, "AAA", balances[1].Asset)
	require.Equal(t, "BBB", balances[2].Asset)
	require.Equal(t, "A95", balances[3].Asset)
}
