package ctftime

import "errors"

// Sentinel kinds for ranking-source errors.
var (
	// ErrUnavailable covers transport failures, server errors, and
	// malformed payloads from the ranking source.
	ErrUnavailable = errors.New("ranking source unavailable")

	// ErrTeamNotFound means the ranking source has no team for the
	// requested id.
	ErrTeamNotFound = errors.New("team not found")
)
