package domain

// NativeAsset is the asset of the monaparty protocol itself.
const NativeAsset = "XMP"

// AssetInfo holds the metadata of an asset.
type AssetInfo struct {
	Asset         string
	AssetLongname string
	Issuer        string
	Owner         string
	Description   string
	Divisible     bool
	Locked        bool
	Supply        uint64
}

// AssetBalance is the quantity of an asset held by the wallet, in base units
// if the asset is divisible.
type AssetBalance struct {
	Asset       string
	DisplayName string
	Quantity    uint64
	Divisible   bool
}
