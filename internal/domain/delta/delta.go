// Package delta classifies a tracked team's rank movement between two
// leaderboard snapshots.
package delta

import "rankwatch/internal/domain/model"

// Status enumerates the possible outcomes of comparing two snapshots
// for one tracked team.
type Status int

const (
	// AbsentBoth means the tracked team appears in neither snapshot.
	AbsentBoth Status = iota
	// NewlyListed means the team appears only in the new snapshot,
	// or there is no old snapshot to compare against.
	NewlyListed
	// Removed means the team appears only in the old snapshot.
	Removed
	// Unchanged means the team holds the same rank in both snapshots.
	Unchanged
	// Improved means the team's new rank is better (numerically lower).
	Improved
	// Worsened means the team's new rank is worse (numerically higher).
	Worsened
)

// String returns the status name for logging.
func (s Status) String() string {
	switch s {
	case AbsentBoth:
		return "absent_both"
	case NewlyListed:
		return "newly_listed"
	case Removed:
		return "removed"
	case Unchanged:
		return "unchanged"
	case Improved:
		return "improved"
	case Worsened:
		return "worsened"
	default:
		return "unknown"
	}
}

// Result is the structured classification of one comparison.
type Result struct {
	Status Status

	// OldRank and NewRank are zero when the team is absent from the
	// corresponding snapshot.
	OldRank int
	NewRank int

	// Overtook holds the ids of teams the tracked team moved ahead of,
	// in new-snapshot order.
	Overtook []int64

	// PassedBy holds the ids of teams that moved ahead of the tracked
	// team, in new-snapshot order.
	PassedBy []int64
}

// Classify compares the tracked team's position across two snapshots.
// oldSnap may be nil on a first run; newSnap must not be nil.
//
// Overtake detection is relative, not absolute: a team counts as
// overtaken when it ranked at or above the tracked team before and
// below it after, and symmetrically for being passed. Teams absent
// from either snapshot are excluded from the comparison, so churn
// among unrelated teams never produces a mention.
func Classify(oldSnap, newSnap *model.Snapshot, trackedID int64) Result {
	newRec, inNew := newSnap.Lookup(trackedID)
	oldRec, inOld := oldSnap.Lookup(trackedID)

	if !inNew {
		if inOld {
			return Result{Status: Removed, OldRank: oldRec.Place}
		}
		return Result{Status: AbsentBoth}
	}

	if !inOld {
		return Result{Status: NewlyListed, NewRank: newRec.Place}
	}

	res := Result{
		OldRank: oldRec.Place,
		NewRank: newRec.Place,
	}

	for _, other := range newSnap.Records() {
		if other.TeamID == trackedID {
			continue
		}
		oldOther, ok := oldSnap.Lookup(other.TeamID)
		if !ok {
			continue
		}

		switch {
		case other.Place > res.NewRank && oldOther.Place <= res.OldRank:
			res.Overtook = append(res.Overtook, other.TeamID)
		case other.Place < res.NewRank && oldOther.Place >= res.OldRank:
			res.PassedBy = append(res.PassedBy, other.TeamID)
		}
	}

	switch {
	case res.NewRank == res.OldRank:
		res.Status = Unchanged
	case res.NewRank < res.OldRank:
		res.Status = Improved
	default:
		res.Status = Worsened
	}
	return res
}
