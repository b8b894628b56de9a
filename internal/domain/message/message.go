// Package message maps rank-delta classifications onto the fixed set
// of notification templates.
package message

import (
	"fmt"

	"rankwatch/internal/domain/delta"
)

// Notification templates. Rank numbers come from the classification;
// name and list slots are pre-formatted by the caller.
const (
	tmplRemoved        = "%s is no longer on the new leaderboard! Last seen at position %d."
	tmplNewlyListed    = "%s is now at position %d"
	tmplUnchangedMixed = "%s still at %d. We caught up to %s, but were passed by %s."
	tmplBackOnTop      = "%s is back on top!"
	tmplImprovedMixed  = "%s moved up to %d! We caught up to %s, but were also passed by %s."
	tmplImprovedCaught = "%s moved up to %d! We caught up to %s."
	tmplImproved       = "%s moved up to %d!"
	tmplWorsenedMixed  = "%s fell to %d! We caught up to %s, but were also passed by %s."
	tmplWorsenedPassed = "%s fell to %d after being passed by %s."
	tmplWorsened       = "%s fell to %d."
)

// Render produces the notification text for a classification, or
// ok=false when the change is insignificant and no message should be
// sent. name is the formatted tracked-team string; caughtUp and
// passedBy are the formatted lists of teams the tracked team moved
// ahead of and was passed by, either of which may be empty.
//
// The mapping is an ordered decision table; the first matching row
// wins. Rendering is pure: no I/O, no side effects.
func Render(res delta.Result, name, caughtUp, passedBy string) (string, bool) {
	switch res.Status {
	case delta.AbsentBoth:
		return "", false

	case delta.Removed:
		return fmt.Sprintf(tmplRemoved, name, res.OldRank), true

	case delta.NewlyListed:
		return fmt.Sprintf(tmplNewlyListed, name, res.NewRank), true

	case delta.Unchanged:
		if caughtUp != "" && passedBy != "" {
			return fmt.Sprintf(tmplUnchangedMixed, name, res.NewRank, caughtUp, passedBy), true
		}
		return "", false

	case delta.Improved:
		if res.NewRank == 1 {
			return fmt.Sprintf(tmplBackOnTop, name), true
		}
		if caughtUp != "" && passedBy != "" {
			return fmt.Sprintf(tmplImprovedMixed, name, res.NewRank, caughtUp, passedBy), true
		}
		if caughtUp != "" {
			return fmt.Sprintf(tmplImprovedCaught, name, res.NewRank, caughtUp), true
		}
		return fmt.Sprintf(tmplImproved, name, res.NewRank), true

	case delta.Worsened:
		if caughtUp != "" && passedBy != "" {
			return fmt.Sprintf(tmplWorsenedMixed, name, res.NewRank, caughtUp, passedBy), true
		}
		if passedBy != "" {
			return fmt.Sprintf(tmplWorsenedPassed, name, res.NewRank, passedBy), true
		}
		return fmt.Sprintf(tmplWorsened, name, res.NewRank), true

	default:
		return "", false
	}
}
