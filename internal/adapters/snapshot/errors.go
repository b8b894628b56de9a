package snapshot

import "errors"

// Sentinel kinds for snapshot-store errors.
var (
	ErrCorruptState = errors.New("corrupt snapshot state")
	ErrPersist      = errors.New("persist snapshot failed")
)
