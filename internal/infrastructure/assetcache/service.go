package assetcache

import (
	"context"
	"errors"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/monawallet/internal/core/domain"
	"github.com/tdex-network/monawallet/internal/core/ports"
	"github.com/tdex-network/monawallet/pkg/explorer/monaparty"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultSize is the default max number of cached asset infos.
	DefaultSize = 1024
	// MaxBatchSize is the max number of assets requested with a single call.
	MaxBatchSize = 100
)

var (
	// ErrNullAssetService ...
	ErrNullAssetService = errors.New("asset service must not be null")
	// ErrInvalidSize ...
	ErrInvalidSize = errors.New("cache size must be a positive number")
)

// nativeAssetInfo is not stored by the ledger processor like the other
// assets, so it's never requested.
var nativeAssetInfo = domain.AssetInfo{
	Asset:     domain.NativeAsset,
	Divisible: true,
	Locked:    true,
}

type service struct {
	assetSvc ports.AssetService
	cache    *lru.Cache[string, domain.AssetInfo]
}

// NewService returns an AssetMetadataResolver that memoizes the asset infos
// fetched with the given asset service. Asset metadata never changes in the
// fields used by the wallet, so entries are evicted only when the cache is
// full.
func NewService(
	assetSvc ports.AssetService, size int,
) (ports.AssetMetadataResolver, error) {
	if assetSvc == nil {
		return nil, ErrNullAssetService
	}
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	cache, err := lru.New[string, domain.AssetInfo](size)
	if err != nil {
		return nil, err
	}
	return &service{assetSvc, cache}, nil
}

func (s *service) Resolve(
	ctx context.Context, assets []string,
) (map[string]domain.AssetInfo, error) {
	infos := make(map[string]domain.AssetInfo, len(assets))
	missing := make([]string, 0, len(assets))
	seen := make(map[string]struct{}, len(assets))
	for _, asset := range assets {
		if _, ok := seen[asset]; ok {
			continue
		}
		seen[asset] = struct{}{}

		if asset == domain.NativeAsset {
			infos[asset] = nativeAssetInfo
			continue
		}
		if info, ok := s.cache.Get(asset); ok {
			infos[asset] = info
			continue
		}
		missing = append(missing, asset)
	}
	if len(missing) <= 0 {
		return infos, nil
	}

	fetched, err := s.fetch(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, info := range fetched {
		s.cache.Add(info.Asset, info)
		infos[info.Asset] = info
	}

	log.WithFields(log.Fields{
		"requested": len(missing),
		"fetched":   len(fetched),
	}).Debug("asset infos cache miss")
	return infos, nil
}

func (s *service) fetch(
	ctx context.Context, assets []string,
) ([]domain.AssetInfo, error) {
	lock := &sync.Mutex{}
	infos := make([]domain.AssetInfo, 0, len(assets))

	eg, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(assets); start += MaxBatchSize {
		end := start + MaxBatchSize
		if end > len(assets) {
			end = len(assets)
		}
		batch := assets[start:end]

		eg.Go(func() error {
			res, err := s.assetSvc.GetAssetsInfo(ctx, batch)
			if err != nil {
				return err
			}

			lock.Lock()
			defer lock.Unlock()
			for _, info := range res {
				infos = append(infos, toDomain(info))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return infos, nil
}

func toDomain(info monaparty.AssetInfo) domain.AssetInfo {
	return domain.AssetInfo{
		Asset:         info.Asset,
		AssetLongname: info.AssetLongname,
		Issuer:        info.Issuer,
		Owner:         info.Owner,
		Description:   info.Description,
		Divisible:     info.Divisible,
		Locked:        info.Locked,
		Supply:        info.Supply,
	}
}
