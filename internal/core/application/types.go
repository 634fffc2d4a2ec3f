package application

// SendArgs are the arguments of a value transfer. Amount is in watanabe and
// FeeRate in watanabe per virtual byte.
type SendArgs struct {
	Destination string
	Amount      uint64
	FeeRate     float64
}

// SendAssetArgs are the arguments of an asset transfer. Quantity is in base
// units of the asset, FeePerKB in watanabe per kilobyte and, if zero, left
// to the asset service's estimation.
type SendAssetArgs struct {
	Destination string
	Asset       string
	Quantity    uint64
	Memo        string
	FeePerKB    uint64
}
