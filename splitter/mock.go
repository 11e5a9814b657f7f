package splitter

import "context"

// MockAssetService is a test double for AssetService.
// All function fields must be set before the corresponding method is called.
type MockAssetService struct {
	BalanceOfFn func(ctx context.Context, class AssetClass) (uint64, error)
	TransferFn  func(ctx context.Context, class AssetClass, to Address, amount uint64) error
}

func (m *MockAssetService) BalanceOf(ctx context.Context, class AssetClass) (uint64, error) {
	return m.BalanceOfFn(ctx, class)
}

func (m *MockAssetService) Transfer(ctx context.Context, class AssetClass, to Address, amount uint64) error {
	return m.TransferFn(ctx, class, to, amount)
}
