package splitter

// prorata computes floor(balance * shares / totalShares), the full pro-rata
// entitlement against the whole balance. Integer division truncates; the
// remainder is deliberately left undistributed.
func prorata(balance, shares, totalShares uint64) uint64 {
	if totalShares == 0 {
		return 0
	}
	return balance * shares / totalShares
}

// recordRelease bumps the per-payee and aggregate cumulative released
// counters for class. Called only after a successful transfer of amount, with
// amount already validated by the caller. Caller holds s.mu.
func (s *Splitter) recordRelease(class AssetClass, rec *PayeeRecord, amount uint64) {
	rec.addReleased(class, amount)
	if class.Native {
		s.nativeReleased += amount
	} else {
		s.tokenReleased[class.Token] += amount
	}
}

// recordWithdrawal bumps the aggregate withdrawn counter for class. The
// withdrawn track bypasses share accounting entirely and never touches the
// released counters. Caller holds s.mu.
func (s *Splitter) recordWithdrawal(class AssetClass, amount uint64) {
	if class.Native {
		s.nativeWithdrawn += amount
	} else {
		s.tokenWithdrawn[class.Token] += amount
	}
}
