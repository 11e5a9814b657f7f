package store

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/paysplitorg/libpaysplit-go/splitter"
)

const (
	recordHeaderSize = 21 // shares(8) + enabled(1) + native_released(8) + num_tokens(4)
	tokenEntrySize   = 28 // token_id(20) + released(8)
)

// encodeRecord serializes a payee record to binary format. Token entries are
// written in bytewise token-id order so the encoding is deterministic.
func encodeRecord(rec splitter.PayeeRecord) []byte {
	tokens := make([]splitter.TokenID, 0, len(rec.TokenReleased))
	for id := range rec.TokenReleased {
		tokens = append(tokens, id)
	}
	sort.Slice(tokens, func(i, j int) bool {
		return bytes.Compare(tokens[i][:], tokens[j][:]) < 0
	})

	buf := make([]byte, recordHeaderSize+tokenEntrySize*len(tokens))
	binary.BigEndian.PutUint64(buf[0:8], rec.Shares)
	if rec.Enabled {
		buf[8] = 1
	}
	binary.BigEndian.PutUint64(buf[9:17], rec.NativeReleased)
	binary.BigEndian.PutUint32(buf[17:21], uint32(len(tokens)))

	offset := recordHeaderSize
	for _, id := range tokens {
		copy(buf[offset:offset+splitter.TokenIDSize], id[:])
		offset += splitter.TokenIDSize
		binary.BigEndian.PutUint64(buf[offset:offset+8], rec.TokenReleased[id])
		offset += 8
	}
	return buf
}

// decodeRecord deserializes binary data into a payee record.
func decodeRecord(data []byte) (splitter.PayeeRecord, error) {
	var rec splitter.PayeeRecord
	if len(data) < recordHeaderSize {
		return rec, fmt.Errorf("%w: too short (%d bytes)", ErrInvalidRecordData, len(data))
	}

	rec.Shares = binary.BigEndian.Uint64(data[0:8])
	rec.Enabled = data[8] == 1
	rec.NativeReleased = binary.BigEndian.Uint64(data[9:17])
	numTokens := int(binary.BigEndian.Uint32(data[17:21]))

	expected := recordHeaderSize + tokenEntrySize*numTokens
	if len(data) != expected {
		return rec, fmt.Errorf("%w: expected %d bytes for %d tokens, got %d",
			ErrInvalidRecordData, expected, numTokens, len(data))
	}

	if numTokens > 0 {
		rec.TokenReleased = make(map[splitter.TokenID]uint64, numTokens)
	}
	offset := recordHeaderSize
	for i := 0; i < numTokens; i++ {
		var id splitter.TokenID
		copy(id[:], data[offset:offset+splitter.TokenIDSize])
		offset += splitter.TokenIDSize
		rec.TokenReleased[id] = binary.BigEndian.Uint64(data[offset : offset+8])
		offset += 8
	}
	return rec, nil
}

// encodeOrder concatenates the ordered address list into one blob.
func encodeOrder(order []splitter.Address) []byte {
	buf := make([]byte, 0, len(order)*splitter.AddressSize)
	for _, account := range order {
		buf = append(buf, account[:]...)
	}
	return buf
}

// decodeOrder splits an order blob back into the address list.
func decodeOrder(data []byte) ([]splitter.Address, error) {
	if len(data)%splitter.AddressSize != 0 {
		return nil, fmt.Errorf("%w: order blob length %d", ErrInvalidMetaData, len(data))
	}
	order := make([]splitter.Address, len(data)/splitter.AddressSize)
	for i := range order {
		copy(order[i][:], data[i*splitter.AddressSize:])
	}
	return order, nil
}

// encodeUint64 encodes v as an 8-byte big-endian value.
func encodeUint64(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}

// decodeUint64 decodes an 8-byte big-endian value.
func decodeUint64(data []byte) (uint64, error) {
	if len(data) != 8 {
		return 0, fmt.Errorf("%w: counter length %d", ErrInvalidMetaData, len(data))
	}
	return binary.BigEndian.Uint64(data), nil
}
