package webhook

import "errors"

// Sentinel kinds for notifier errors.
var (
	ErrNotify = errors.New("webhook delivery failed")
)
