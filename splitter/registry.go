package splitter

// AddPayee registers an enabled payee with the given share weight.
// Fails if the account is already registered, shares is zero, or the payee
// list is at the configured cap.
func (s *Splitter) AddPayee(account Address, shares uint64) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	s.mu.Lock()
	if _, ok := s.payees[account]; ok {
		s.mu.Unlock()
		return ErrAlreadyRegistered
	}
	if shares == 0 {
		s.mu.Unlock()
		return ErrInvalidShares
	}
	if len(s.payees) >= s.maxPayees {
		s.mu.Unlock()
		return ErrCapacityExceeded
	}

	s.payees[account] = &PayeeRecord{Shares: shares, Enabled: true}
	s.order = append(s.order, account)
	s.totalShares += shares
	s.enabledCount++
	s.mu.Unlock()

	s.events.PayeeAdded(account, shares)
	return nil
}

// RemovePayee deletes a payee record and frees its capacity slot. The ordered
// list is compacted with swap-with-last-and-pop, so list order is not stable
// across removals.
func (s *Splitter) RemovePayee(account Address) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	s.mu.Lock()
	rec, ok := s.payees[account]
	if !ok {
		s.mu.Unlock()
		return ErrNotRegistered
	}

	shares := rec.Shares
	if rec.Enabled {
		s.enabledCount--
	}
	s.totalShares -= shares
	delete(s.payees, account)

	for i := range s.order {
		if s.order[i] == account {
			last := len(s.order) - 1
			s.order[i] = s.order[last]
			s.order = s.order[:last]
			break
		}
	}
	s.mu.Unlock()

	s.events.PayeeRemoved(account, shares)
	return nil
}

// UpdateShares replaces a payee's share weight and adjusts the total by the
// delta. Disabled payees may be updated; their shares still count toward the
// total.
func (s *Splitter) UpdateShares(account Address, newShares uint64) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	s.mu.Lock()
	rec, ok := s.payees[account]
	if !ok {
		s.mu.Unlock()
		return ErrNotRegistered
	}
	if newShares == 0 {
		s.mu.Unlock()
		return ErrInvalidShares
	}

	oldShares := rec.Shares
	s.totalShares = s.totalShares - oldShares + newShares
	rec.Shares = newShares
	s.mu.Unlock()

	s.events.SharesChanged(account, oldShares, newShares)
	return nil
}

// UpdateStatus enables or disables a payee. Fails if the payee already has
// the requested status.
func (s *Splitter) UpdateStatus(account Address, enabled bool) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	s.mu.Lock()
	rec, ok := s.payees[account]
	if !ok {
		s.mu.Unlock()
		return ErrNotRegistered
	}
	if rec.Enabled == enabled {
		s.mu.Unlock()
		return ErrNoOpStatusChange
	}

	oldEnabled := rec.Enabled
	rec.Enabled = enabled
	if enabled {
		s.enabledCount++
	} else {
		s.enabledCount--
	}
	s.mu.Unlock()

	s.events.StatusChanged(account, oldEnabled, enabled)
	return nil
}

// SetMaxPayees updates the payee cap. The cap only blocks future AddPayee
// calls; existing payees above a lowered cap are never evicted.
func (s *Splitter) SetMaxPayees(n int) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	if n < MinPayeeCap || n > MaxPayeeCap {
		return ErrInvalidCap
	}

	s.mu.Lock()
	oldCap := s.maxPayees
	s.maxPayees = n
	s.mu.Unlock()

	s.events.CapChanged(oldCap, n)
	return nil
}
