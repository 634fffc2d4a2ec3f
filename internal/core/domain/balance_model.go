package domain

// Balance is the coin balance of the wallet, in watanabe, split by
// confirmation status.
type Balance struct {
	Confirmed   uint64
	Unconfirmed uint64
}

// Total returns the sum of confirmed and unconfirmed balances.
func (b Balance) Total() uint64 {
	return b.Confirmed + b.Unconfirmed
}

// NewBalance computes the balance of the given unspents.
func NewBalance(unspents []Unspent) Balance {
	var b Balance
	for _, u := range unspents {
		if u.IsConfirmed() {
			b.Confirmed += u.Value
			continue
		}
		b.Unconfirmed += u.Value
	}
	return b
}
