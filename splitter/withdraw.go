package splitter

import (
	"context"
	"fmt"
)

// Withdraw transfers amount of class to receiver, bypassing share-based
// entitlement entirely. The amount is recorded on the withdrawn track, which
// is disjoint from and invisible to the released counters.
//
// Fails if receiver is the zero address, amount is zero, amount exceeds the
// held balance of class, or a distribution cycle is active.
func (s *Splitter) Withdraw(ctx context.Context, class AssetClass, receiver Address, amount uint64) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	if receiver == zeroAddress {
		return ErrZeroReceiver
	}
	if amount == 0 {
		return ErrZeroAmount
	}

	balance, err := s.assets.BalanceOf(ctx, class)
	if err != nil {
		return fmt.Errorf("splitter: query balance: %w", err)
	}
	if amount > balance {
		return fmt.Errorf("%w: %d exceeds %d", ErrInsufficientBalance, amount, balance)
	}

	if err := s.assets.Transfer(ctx, class, receiver, amount); err != nil {
		return fmt.Errorf("splitter: withdraw transfer: %w", err)
	}

	s.mu.Lock()
	s.recordWithdrawal(class, amount)
	s.mu.Unlock()

	s.events.PaymentWithdrawn(class, receiver, amount)
	return nil
}
