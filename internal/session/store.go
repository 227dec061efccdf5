package session

import "errors"

// Record is the locally persisted proof of a prior login. Timestamp is
// Unix milliseconds of the moment the password was accepted.
type Record struct {
	Timestamp int64 `json:"timestamp"`
}

// Store persists the single session record under one fixed key.
// Implementations must be safe for concurrent use: the mount check and
// the periodic re-check both do read-then-conditionally-write on the
// same record.
type Store interface {
	Load() (Record, error)
	Save(Record) error
	Clear() error
}

var (
	// ErrNoSession is returned by Load when no record is stored.
	ErrNoSession = errors.New("no session")
	// ErrCorrupt is returned by Load when the stored record cannot be
	// parsed. Callers delete the record and treat it as absent; it is
	// never shown to the user.
	ErrCorrupt = errors.New("session record corrupt")
	// ErrInvalidCredentials is returned by Login on a password mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
