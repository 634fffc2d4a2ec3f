package domain

import "errors"

var (
	// ErrAssetMetadataMissing is returned when an asset held by the wallet has
	// no metadata.
	ErrAssetMetadataMissing = errors.New("asset metadata is missing")
)
