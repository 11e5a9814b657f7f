package splitter

import (
	"context"
	"fmt"
)

// payout is one payee's computed entitlement within a distribution cycle.
type payout struct {
	account Address
	rec     *PayeeRecord
	amount  uint64
}

// Distribute runs one distribution cycle for class: it snapshots the current
// balance held by the distribution authority and pays every enabled payee
// floor(snapshot * shares / totalShares) in current list order.
//
// Entitlements are validated against the snapshot before any transfer: a zero
// entitlement for any enabled payee aborts the whole cycle with
// ErrNoPaymentDue and nothing is paid. A transfer failure aborts the rest of
// the cycle; transfers already completed in the same cycle stand, together
// with their released counters.
//
// Anyone may trigger a cycle. The exclusivity guard is held for the whole
// call, so reentrant callbacks from the transfer step are rejected with
// ErrDistributionInProgress.
func (s *Splitter) Distribute(ctx context.Context, class AssetClass) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	s.mu.Lock()
	if s.enabledCount == 0 {
		s.mu.Unlock()
		return ErrNoEnabledPayees
	}
	s.mu.Unlock()

	balance, err := s.assets.BalanceOf(ctx, class)
	if err != nil {
		return fmt.Errorf("splitter: query balance: %w", err)
	}

	s.mu.Lock()
	s.cycleActive = true
	s.cycleClass = class
	s.cycleAmount = balance

	payouts := make([]payout, 0, len(s.order))
	for _, account := range s.order {
		rec := s.payees[account]
		if !rec.Enabled {
			continue
		}
		amount := prorata(balance, rec.Shares, s.totalShares)
		if amount == 0 {
			s.mu.Unlock()
			return fmt.Errorf("%w: payee %x", ErrNoPaymentDue, account)
		}
		payouts = append(payouts, payout{account: account, rec: rec, amount: amount})
	}
	s.mu.Unlock()

	for _, p := range payouts {
		// Defensive re-check: status cannot change mid-cycle under the guard,
		// so this branch is unreachable.
		s.mu.Lock()
		enabled := p.rec.Enabled
		s.mu.Unlock()
		if !enabled {
			continue
		}

		if err := s.assets.Transfer(ctx, class, p.account, p.amount); err != nil {
			return fmt.Errorf("splitter: transfer to %x: %w", p.account, err)
		}

		s.mu.Lock()
		s.recordRelease(class, p.rec, p.amount)
		s.mu.Unlock()

		s.events.PaymentReleased(class, p.account, p.amount)
	}

	return nil
}

// Releasable returns the payee's full pro-rata entitlement against the
// current balance of class, independent of what has already been paid.
// While a distribution cycle for class is active the snapshotted amount is
// used instead of the live balance, so observers see a value consistent with
// the in-progress cycle's accounting.
func (s *Splitter) Releasable(ctx context.Context, class AssetClass, account Address) (uint64, error) {
	s.mu.Lock()
	rec, ok := s.payees[account]
	if !ok {
		s.mu.Unlock()
		return 0, ErrNotRegistered
	}
	shares, total := rec.Shares, s.totalShares
	if s.cycleActive && s.cycleClass == class {
		amount := prorata(s.cycleAmount, shares, total)
		s.mu.Unlock()
		return amount, nil
	}
	s.mu.Unlock()

	balance, err := s.assets.BalanceOf(ctx, class)
	if err != nil {
		return 0, fmt.Errorf("splitter: query balance: %w", err)
	}
	return prorata(balance, shares, total), nil
}
