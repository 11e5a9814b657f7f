package splitter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithdraw(t *testing.T) {
	s, bank := newTestSplitter(t)
	ev := &recordingEvents{}
	s.SetEvents(ev)

	native := NativeAsset()
	bank.deposit(native, 1000)

	receiver := makeAddr(0xEE)
	require.NoError(t, s.Withdraw(context.Background(), native, receiver, 250))

	require.Len(t, bank.transfers, 1)
	assert.Equal(t, transferCall{class: native, to: receiver, amount: 250}, bank.transfers[0])
	assert.Equal(t, uint64(250), s.TotalWithdrawn(native))

	// The withdrawn track is invisible to the released counters.
	assert.Equal(t, uint64(0), s.TotalReleased(native))

	last := ev.events[len(ev.events)-1]
	assert.Equal(t, "withdrawn", last.kind)
	assert.Equal(t, receiver, last.account)
	assert.Equal(t, uint64(250), last.amount)
}

func TestWithdraw_TokenAsset(t *testing.T) {
	s, bank := newTestSplitter(t)

	token := TokenAsset(makeToken(0x11))
	bank.deposit(token, 100)

	require.NoError(t, s.Withdraw(context.Background(), token, makeAddr(0xEE), 40))
	assert.Equal(t, uint64(40), s.TotalWithdrawn(token))
	assert.Equal(t, uint64(0), s.TotalWithdrawn(NativeAsset()))
}

func TestWithdraw_Errors(t *testing.T) {
	s, bank := newTestSplitter(t)
	native := NativeAsset()
	bank.deposit(native, 100)

	tests := []struct {
		name     string
		receiver Address
		amount   uint64
		wantErr  error
	}{
		{"zero receiver", zeroAddress, 10, ErrZeroReceiver},
		{"zero amount", makeAddr(0xEE), 0, ErrZeroAmount},
		{"insufficient balance", makeAddr(0xEE), 101, ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Withdraw(context.Background(), native, tt.receiver, tt.amount)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, bank.transfers)
			assert.Equal(t, uint64(0), s.TotalWithdrawn(native))
		})
	}
}

func TestWithdraw_TransferFailure(t *testing.T) {
	bank := newTestBank()
	svc := bank.service()
	s, err := New(svc)
	require.NoError(t, err)

	native := NativeAsset()
	bank.deposit(native, 100)

	failErr := errors.New("transfer reverted")
	svc.TransferFn = func(ctx context.Context, class AssetClass, to Address, amount uint64) error {
		return failErr
	}

	err = s.Withdraw(context.Background(), native, makeAddr(0xEE), 50)
	require.ErrorIs(t, err, failErr)
	assert.Equal(t, uint64(0), s.TotalWithdrawn(native))

	// The guard is released on the failure path.
	require.NoError(t, s.AddPayee(makeAddr(0xAA), 1))
}

func TestWithdraw_ReentrancyRejected(t *testing.T) {
	bank := newTestBank()
	svc := bank.service()
	s, err := New(svc)
	require.NoError(t, err)

	native := NativeAsset()
	bank.deposit(native, 100)

	var reentrantErr error
	inner := svc.TransferFn
	svc.TransferFn = func(ctx context.Context, class AssetClass, to Address, amount uint64) error {
		reentrantErr = s.AddPayee(makeAddr(0xAA), 1)
		return inner(ctx, class, to, amount)
	}

	require.NoError(t, s.Withdraw(context.Background(), native, makeAddr(0xEE), 50))
	require.ErrorIs(t, reentrantErr, ErrDistributionInProgress)
	assert.Equal(t, 0, s.PayeeCount())
}
