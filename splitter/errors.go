package splitter

import "errors"

var (
	// ErrAlreadyRegistered indicates the account already has a payee record.
	ErrAlreadyRegistered = errors.New("splitter: payee already registered")

	// ErrNotRegistered indicates no payee record exists for the account.
	ErrNotRegistered = errors.New("splitter: payee not registered")

	// ErrInvalidShares indicates a share amount of zero.
	ErrInvalidShares = errors.New("splitter: shares must be greater than zero")

	// ErrCapacityExceeded indicates the payee list is at the configured cap.
	ErrCapacityExceeded = errors.New("splitter: payee capacity exceeded")

	// ErrNoOpStatusChange indicates the payee already has the requested status.
	ErrNoOpStatusChange = errors.New("splitter: status unchanged")

	// ErrInvalidCap indicates a payee cap outside the range [1,10].
	ErrInvalidCap = errors.New("splitter: cap must be between 1 and 10")

	// ErrDistributionInProgress indicates a distribution cycle holds the
	// exclusivity guard and the call must be retried later.
	ErrDistributionInProgress = errors.New("splitter: distribution in progress")

	// ErrNoEnabledPayees indicates no payee is enabled for distribution.
	ErrNoEnabledPayees = errors.New("splitter: no enabled payees")

	// ErrNoPaymentDue indicates an enabled payee's entitlement is zero, which
	// aborts the whole distribution cycle before any transfer.
	ErrNoPaymentDue = errors.New("splitter: no payment due")

	// ErrZeroReceiver indicates the withdrawal receiver is the zero address.
	ErrZeroReceiver = errors.New("splitter: receiver must not be the zero address")

	// ErrZeroAmount indicates a withdrawal amount of zero.
	ErrZeroAmount = errors.New("splitter: amount must be greater than zero")

	// ErrInsufficientBalance indicates the withdrawal amount exceeds the held
	// balance of the asset class.
	ErrInsufficientBalance = errors.New("splitter: insufficient balance")

	// ErrNilService indicates the splitter was constructed without an asset service.
	ErrNilService = errors.New("splitter: asset service must not be nil")

	// ErrInvalidAddress indicates a malformed account address string.
	ErrInvalidAddress = errors.New("splitter: invalid address")

	// ErrCorruptState indicates a restored state snapshot violates the
	// registry invariants.
	ErrCorruptState = errors.New("splitter: corrupt state snapshot")
)
