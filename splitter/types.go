// Package splitter implements a proportional revenue-distribution ledger.
//
// A fixed pool of shares is assigned to a bounded set of payees. On demand the
// splitter divides the current balance of one asset class among enabled payees
// in proportion to their shares, recording cumulative per-payee and aggregate
// release counters. Asset movement and balance queries are delegated to an
// AssetService provided by the host.
package splitter

// AddressSize is the length of an account address hash in bytes.
const AddressSize = 20

// TokenIDSize is the length of a fungible-token identifier in bytes.
const TokenIDSize = 20

// Address is a P2PKH address hash identifying a payee or receiver account.
type Address [AddressSize]byte

// TokenID identifies one fungible-token contract.
type TokenID [TokenIDSize]byte

// zeroAddress is the all-zero address, rejected as a withdrawal receiver.
var zeroAddress Address

// AssetClass identifies what is being distributed: the native asset or one
// fungible-token contract.
type AssetClass struct {
	Native bool
	Token  TokenID // meaningful only when Native is false
}

// NativeAsset returns the asset class of the native chain asset.
func NativeAsset() AssetClass {
	return AssetClass{Native: true}
}

// TokenAsset returns the asset class of the fungible token id.
func TokenAsset(id TokenID) AssetClass {
	return AssetClass{Token: id}
}

// PayeeRecord holds one registered payee's shares, participation flag and
// cumulative released counters.
type PayeeRecord struct {
	Shares         uint64             // weight in the pro-rata formula, always > 0
	Enabled        bool               // participates in distributions
	NativeReleased uint64             // cumulative native amount paid out
	TokenReleased  map[TokenID]uint64 // cumulative amount paid out per token
}

// released returns the cumulative amount paid to this payee for class.
func (r *PayeeRecord) released(class AssetClass) uint64 {
	if class.Native {
		return r.NativeReleased
	}
	return r.TokenReleased[class.Token]
}

// addReleased bumps this payee's cumulative released counter for class.
func (r *PayeeRecord) addReleased(class AssetClass, amount uint64) {
	if class.Native {
		r.NativeReleased += amount
		return
	}
	if r.TokenReleased == nil {
		r.TokenReleased = make(map[TokenID]uint64)
	}
	r.TokenReleased[class.Token] += amount
}

// clone returns a deep copy of the record.
func (r *PayeeRecord) clone() PayeeRecord {
	c := PayeeRecord{
		Shares:         r.Shares,
		Enabled:        r.Enabled,
		NativeReleased: r.NativeReleased,
	}
	if len(r.TokenReleased) > 0 {
		c.TokenReleased = make(map[TokenID]uint64, len(r.TokenReleased))
		for id, v := range r.TokenReleased {
			c.TokenReleased[id] = v
		}
	}
	return c
}
