package splitter

import (
	"encoding/hex"
	"fmt"

	"github.com/bsv-blockchain/go-sdk/script"
)

// ParseAddress converts a base58check P2PKH address string into an Address.
func ParseAddress(addr string) (Address, error) {
	parsed, err := script.NewAddressFromString(addr)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	pkh := []byte(parsed.PublicKeyHash)
	if len(pkh) != AddressSize {
		return Address{}, fmt.Errorf("%w: public key hash must be %d bytes", ErrInvalidAddress, AddressSize)
	}
	var out Address
	copy(out[:], pkh)
	return out, nil
}

// String returns the mainnet base58check form of the address, or the raw hex
// hash if encoding fails.
func (a Address) String() string {
	addr, err := script.NewAddressFromPublicKeyHash(a[:], true)
	if err != nil {
		return hex.EncodeToString(a[:])
	}
	return addr.AddressString
}
