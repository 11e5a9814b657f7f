package splitter

// Events receives notifications about registry mutations and payments.
// Implementations must not call back into the Splitter: events fire while the
// exclusivity guard is held and any mutating call would be rejected.
type Events interface {
	// CapChanged fires when the payee cap is updated.
	CapChanged(oldCap, newCap int)

	// PayeeAdded fires when a payee record is created.
	PayeeAdded(account Address, shares uint64)

	// PayeeRemoved fires when a payee record is deleted.
	PayeeRemoved(account Address, shares uint64)

	// SharesChanged fires when a payee's shares are replaced.
	SharesChanged(account Address, oldShares, newShares uint64)

	// StatusChanged fires when a payee is enabled or disabled.
	StatusChanged(account Address, oldEnabled, newEnabled bool)

	// PaymentReleased fires after a successful pro-rata transfer is recorded.
	PaymentReleased(class AssetClass, account Address, amount uint64)

	// PaymentWithdrawn fires after a successful admin withdrawal is recorded.
	PaymentWithdrawn(class AssetClass, receiver Address, amount uint64)
}

// NopEvents discards all notifications. Used when no listener is configured.
type NopEvents struct{}

func (NopEvents) CapChanged(oldCap, newCap int)                                      {}
func (NopEvents) PayeeAdded(account Address, shares uint64)                          {}
func (NopEvents) PayeeRemoved(account Address, shares uint64)                        {}
func (NopEvents) SharesChanged(account Address, oldShares, newShares uint64)         {}
func (NopEvents) StatusChanged(account Address, oldEnabled, newEnabled bool)         {}
func (NopEvents) PaymentReleased(class AssetClass, account Address, amount uint64)   {}
func (NopEvents) PaymentWithdrawn(class AssetClass, receiver Address, amount uint64) {}

// Compile-time interface check.
var _ Events = NopEvents{}
