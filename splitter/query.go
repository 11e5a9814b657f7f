package splitter

// TotalShares returns the sum of shares over all registered payees,
// including disabled ones.
func (s *Splitter) TotalShares() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalShares
}

// SharesOf returns the share weight of a registered payee.
func (s *Splitter) SharesOf(account Address) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.payees[account]
	if !ok {
		return 0, ErrNotRegistered
	}
	return rec.Shares, nil
}

// IsPayee reports whether the account has a payee record.
func (s *Splitter) IsPayee(account Address) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.payees[account]
	return ok
}

// IsEnabled reports whether a registered payee participates in distributions.
func (s *Splitter) IsEnabled(account Address) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.payees[account]
	if !ok {
		return false, ErrNotRegistered
	}
	return rec.Enabled, nil
}

// Released returns the cumulative amount of class paid to a registered payee.
func (s *Splitter) Released(class AssetClass, account Address) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.payees[account]
	if !ok {
		return 0, ErrNotRegistered
	}
	return rec.released(class), nil
}

// PayeeCount returns the number of registered payees.
func (s *Splitter) PayeeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payees)
}

// EnabledCount returns the number of enabled payees.
func (s *Splitter) EnabledCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabledCount
}

// Payees returns the payee list in current list order. The order is insertion
// order until a removal occurs; removals swap the last entry into the freed
// slot, so order is not stable across removals.
func (s *Splitter) Payees() []Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Address, len(s.order))
	copy(out, s.order)
	return out
}

// MaxPayees returns the current payee cap.
func (s *Splitter) MaxPayees() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxPayees
}

// TotalReleased returns the aggregate amount of class released to payees.
func (s *Splitter) TotalReleased(class AssetClass) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if class.Native {
		return s.nativeReleased
	}
	return s.tokenReleased[class.Token]
}

// TotalWithdrawn returns the aggregate amount of class withdrawn by the admin.
func (s *Splitter) TotalWithdrawn(class AssetClass) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if class.Native {
		return s.nativeWithdrawn
	}
	return s.tokenWithdrawn[class.Token]
}
