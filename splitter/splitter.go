package splitter

import "sync"

// DefaultMaxPayees is the payee cap applied when none is configured.
const DefaultMaxPayees = 5

// Payee cap bounds.
const (
	MinPayeeCap = 1
	MaxPayeeCap = 10
)

// Splitter is the revenue-distribution ledger. Every mutating entry point runs
// as one indivisible transaction behind an exclusivity guard: a call that
// finds the guard held fails immediately with ErrDistributionInProgress. The
// guard spans external transfers, so a reentrant callback from the transfer
// step is rejected the same way.
type Splitter struct {
	mu   sync.Mutex
	busy bool

	payees       map[Address]*PayeeRecord
	order        []Address // insertion order, unstable across removals
	totalShares  uint64
	enabledCount int
	maxPayees    int

	nativeReleased  uint64
	nativeWithdrawn uint64
	tokenReleased   map[TokenID]uint64
	tokenWithdrawn  map[TokenID]uint64

	// Snapshot of the distributable amount, valid only while a distribution
	// cycle holds the guard.
	cycleActive bool
	cycleClass  AssetClass
	cycleAmount uint64

	assets AssetService
	events Events
}

// New creates an empty splitter with the default payee cap.
func New(assets AssetService) (*Splitter, error) {
	if assets == nil {
		return nil, ErrNilService
	}
	return &Splitter{
		payees:         make(map[Address]*PayeeRecord),
		maxPayees:      DefaultMaxPayees,
		tokenReleased:  make(map[TokenID]uint64),
		tokenWithdrawn: make(map[TokenID]uint64),
		assets:         assets,
		events:         NopEvents{},
	}, nil
}

// SetEvents installs a notification listener. Pass nil to discard events.
func (s *Splitter) SetEvents(ev Events) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ev == nil {
		ev = NopEvents{}
	}
	s.events = ev
}

// acquire takes the exclusivity guard, failing if it is already held.
// Every mutating entry point pairs this with a deferred release.
func (s *Splitter) acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrDistributionInProgress
	}
	s.busy = true
	return nil
}

// release drops the guard and invalidates any cycle snapshot. Runs on every
// exit path of a guarded call, including failures.
func (s *Splitter) release() {
	s.mu.Lock()
	s.busy = false
	s.cycleActive = false
	s.mu.Unlock()
}
