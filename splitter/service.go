package splitter

import "context"

// AssetService is the host-provided capability for balance queries and asset
// transfers. For the native asset a transfer must propagate any receiver-side
// failure as an error; for token assets both a reverted call and a false
// return value must surface as an error.
type AssetService interface {
	// BalanceOf returns the balance of class held by the distribution authority.
	BalanceOf(ctx context.Context, class AssetClass) (uint64, error)

	// Transfer moves amount of class to the given address.
	Transfer(ctx context.Context, class AssetClass, to Address, amount uint64) error
}
