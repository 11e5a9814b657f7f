package store

import "errors"

var (
	// ErrStateNotFound indicates the database holds no saved splitter state.
	ErrStateNotFound = errors.New("store: state not found")

	// ErrNilState indicates a nil state was passed to SaveState.
	ErrNilState = errors.New("store: state must not be nil")

	// ErrInvalidRecordData indicates a stored payee record is malformed.
	ErrInvalidRecordData = errors.New("store: invalid payee record data")

	// ErrInvalidMetaData indicates a stored meta entry is malformed.
	ErrInvalidMetaData = errors.New("store: invalid meta data")
)
