package splitter

import "fmt"

// State is a deep-copied snapshot of the splitter's registry and ledger,
// suitable for persistence by the host.
type State struct {
	MaxPayees int
	Order     []Address
	Payees    map[Address]PayeeRecord

	NativeReleased  uint64
	NativeWithdrawn uint64
	TokenReleased   map[TokenID]uint64
	TokenWithdrawn  map[TokenID]uint64
}

// Snapshot returns a deep copy of the current state.
// Fails with ErrDistributionInProgress while a cycle is active.
func (s *Splitter) Snapshot() (*State, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	s.mu.Lock()
	defer s.mu.Unlock()

	st := &State{
		MaxPayees:       s.maxPayees,
		Order:           make([]Address, len(s.order)),
		Payees:          make(map[Address]PayeeRecord, len(s.payees)),
		NativeReleased:  s.nativeReleased,
		NativeWithdrawn: s.nativeWithdrawn,
		TokenReleased:   make(map[TokenID]uint64, len(s.tokenReleased)),
		TokenWithdrawn:  make(map[TokenID]uint64, len(s.tokenWithdrawn)),
	}
	copy(st.Order, s.order)
	for account, rec := range s.payees {
		st.Payees[account] = rec.clone()
	}
	for id, v := range s.tokenReleased {
		st.TokenReleased[id] = v
	}
	for id, v := range s.tokenWithdrawn {
		st.TokenWithdrawn[id] = v
	}
	return st, nil
}

// Restore replaces the splitter's state with the snapshot. The cap, order
// list and records are validated and the share/enabled totals re-derived;
// a snapshot violating the registry invariants fails with ErrCorruptState.
func (s *Splitter) Restore(st *State) error {
	if st == nil {
		return fmt.Errorf("%w: nil snapshot", ErrCorruptState)
	}
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	if st.MaxPayees < MinPayeeCap || st.MaxPayees > MaxPayeeCap {
		return fmt.Errorf("%w: cap %d", ErrCorruptState, st.MaxPayees)
	}
	if len(st.Order) != len(st.Payees) {
		return fmt.Errorf("%w: %d ordered accounts, %d records",
			ErrCorruptState, len(st.Order), len(st.Payees))
	}
	payees := make(map[Address]*PayeeRecord, len(st.Payees))
	var totalShares uint64
	var enabledCount int
	for _, account := range st.Order {
		rec, ok := st.Payees[account]
		if !ok {
			return fmt.Errorf("%w: ordered account %x has no record", ErrCorruptState, account)
		}
		if _, dup := payees[account]; dup {
			return fmt.Errorf("%w: duplicate account %x", ErrCorruptState, account)
		}
		if rec.Shares == 0 {
			return fmt.Errorf("%w: account %x has zero shares", ErrCorruptState, account)
		}
		c := rec.clone()
		payees[account] = &c
		totalShares += rec.Shares
		if rec.Enabled {
			enabledCount++
		}
	}

	order := make([]Address, len(st.Order))
	copy(order, st.Order)
	tokenReleased := make(map[TokenID]uint64, len(st.TokenReleased))
	for id, v := range st.TokenReleased {
		tokenReleased[id] = v
	}
	tokenWithdrawn := make(map[TokenID]uint64, len(st.TokenWithdrawn))
	for id, v := range st.TokenWithdrawn {
		tokenWithdrawn[id] = v
	}

	s.mu.Lock()
	s.payees = payees
	s.order = order
	s.totalShares = totalShares
	s.enabledCount = enabledCount
	s.maxPayees = st.MaxPayees
	s.nativeReleased = st.NativeReleased
	s.nativeWithdrawn = st.NativeWithdrawn
	s.tokenReleased = tokenReleased
	s.tokenWithdrawn = tokenWithdrawn
	s.mu.Unlock()
	return nil
}
