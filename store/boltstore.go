// Package store persists splitter state snapshots in a bbolt database.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/paysplitorg/libpaysplit-go/splitter"
)

var (
	bucketPayees         = []byte("payees")
	bucketMeta           = []byte("meta")
	bucketTokenReleased  = []byte("token_released")
	bucketTokenWithdrawn = []byte("token_withdrawn")
)

// Meta bucket keys.
var (
	keyMaxPayees       = []byte("max_payees")
	keyOrder           = []byte("order")
	keyNativeReleased  = []byte("native_released")
	keyNativeWithdrawn = []byte("native_withdrawn")
)

// BoltStore wraps a bbolt database holding one splitter state snapshot.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBoltStore opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltStore(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("store: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("store: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketPayees, bucketMeta, bucketTokenReleased, bucketTokenWithdrawn} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// SaveState replaces the stored snapshot with st in one transaction.
func (s *BoltStore) SaveState(st *splitter.State) error {
	if st == nil {
		return ErrNilState
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		// Drop previous snapshot so removed payees and tokens do not linger.
		for _, name := range [][]byte{bucketPayees, bucketMeta, bucketTokenReleased, bucketTokenWithdrawn} {
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("store: reset bucket %q: %w", name, err)
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("store: recreate bucket %q: %w", name, err)
			}
		}

		pb := tx.Bucket(bucketPayees)
		for account, rec := range st.Payees {
			if err := pb.Put(account[:], encodeRecord(rec)); err != nil {
				return fmt.Errorf("store: put payee record: %w", err)
			}
		}

		mb := tx.Bucket(bucketMeta)
		if err := mb.Put(keyMaxPayees, encodeUint64(uint64(st.MaxPayees))); err != nil {
			return fmt.Errorf("store: put cap: %w", err)
		}
		if err := mb.Put(keyOrder, encodeOrder(st.Order)); err != nil {
			return fmt.Errorf("store: put order: %w", err)
		}
		if err := mb.Put(keyNativeReleased, encodeUint64(st.NativeReleased)); err != nil {
			return fmt.Errorf("store: put native released: %w", err)
		}
		if err := mb.Put(keyNativeWithdrawn, encodeUint64(st.NativeWithdrawn)); err != nil {
			return fmt.Errorf("store: put native withdrawn: %w", err)
		}

		rb := tx.Bucket(bucketTokenReleased)
		for id, v := range st.TokenReleased {
			if err := rb.Put(id[:], encodeUint64(v)); err != nil {
				return fmt.Errorf("store: put token released: %w", err)
			}
		}
		wb := tx.Bucket(bucketTokenWithdrawn)
		for id, v := range st.TokenWithdrawn {
			if err := wb.Put(id[:], encodeUint64(v)); err != nil {
				return fmt.Errorf("store: put token withdrawn: %w", err)
			}
		}
		return nil
	})
}

// LoadState reads back the stored snapshot.
// Returns ErrStateNotFound if no snapshot has been saved.
func (s *BoltStore) LoadState() (*splitter.State, error) {
	st := &splitter.State{
		Payees:         make(map[splitter.Address]splitter.PayeeRecord),
		TokenReleased:  make(map[splitter.TokenID]uint64),
		TokenWithdrawn: make(map[splitter.TokenID]uint64),
	}

	err := s.db.View(func(tx *bbolt.Tx) error {
		mb := tx.Bucket(bucketMeta)

		capData := mb.Get(keyMaxPayees)
		if capData == nil {
			return ErrStateNotFound
		}
		capVal, err := decodeUint64(capData)
		if err != nil {
			return fmt.Errorf("store: decode cap: %w", err)
		}
		st.MaxPayees = int(capVal)

		st.Order, err = decodeOrder(mb.Get(keyOrder))
		if err != nil {
			return fmt.Errorf("store: decode order: %w", err)
		}
		if st.NativeReleased, err = decodeUint64(mb.Get(keyNativeReleased)); err != nil {
			return fmt.Errorf("store: decode native released: %w", err)
		}
		if st.NativeWithdrawn, err = decodeUint64(mb.Get(keyNativeWithdrawn)); err != nil {
			return fmt.Errorf("store: decode native withdrawn: %w", err)
		}

		err = tx.Bucket(bucketPayees).ForEach(func(k, v []byte) error {
			if len(k) != splitter.AddressSize {
				return fmt.Errorf("%w: key length %d", ErrInvalidRecordData, len(k))
			}
			var account splitter.Address
			copy(account[:], k)
			rec, err := decodeRecord(v)
			if err != nil {
				return fmt.Errorf("store: decode payee %x: %w", account, err)
			}
			st.Payees[account] = rec
			return nil
		})
		if err != nil {
			return err
		}

		err = tx.Bucket(bucketTokenReleased).ForEach(func(k, v []byte) error {
			var id splitter.TokenID
			copy(id[:], k)
			val, err := decodeUint64(v)
			if err != nil {
				return fmt.Errorf("store: decode token released %x: %w", id, err)
			}
			st.TokenReleased[id] = val
			return nil
		})
		if err != nil {
			return err
		}

		return tx.Bucket(bucketTokenWithdrawn).ForEach(func(k, v []byte) error {
			var id splitter.TokenID
			copy(id[:], k)
			val, err := decodeUint64(v)
			if err != nil {
				return fmt.Errorf("store: decode token withdrawn %x: %w", id, err)
			}
			st.TokenWithdrawn[id] = val
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}
