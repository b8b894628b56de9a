// Package format renders ranked teams into display strings for
// notification messages.
package format

import (
	"fmt"
	"strings"

	"rankwatch/internal/domain/markdown"
	"rankwatch/internal/domain/model"
)

// Default formatting configuration constants.
const (
	defaultTeamPageURL = "https://ctftime.org/team/%d"

	// listConjunction joins the final element of a multi-team list.
	listConjunction = " og "
)

// Formatter renders teams with configurable hyperlinking and point
// display.
type Formatter struct {
	teamPageURL   string
	useLinks      bool
	includePoints bool
}

// New constructs a Formatter with default configuration.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		teamPageURL:   defaultTeamPageURL,
		useLinks:      true,
		includePoints: false,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Team renders a single record: escaped name, optional points suffix,
// optional markdown link to the team's detail page. The URL is wrapped
// in angle brackets to suppress link-preview expansion.
func (f *Formatter) Team(r model.Record) string {
	name := markdown.Escape(r.TeamName)

	if f.includePoints {
		name += fmt.Sprintf(" (%.2f p)", r.Points)
	}

	if f.useLinks {
		url := fmt.Sprintf(f.teamPageURL, r.TeamID)
		name = fmt.Sprintf("[%s](<%s>)", name, url)
	}

	return name
}

// TeamList renders the teams for the given ids in input order,
// comma-joined with a conjunction before the final element:
// "A", "A, B og C". Ids without a record in the snapshot are skipped.
func (f *Formatter) TeamList(ids []int64, snap *model.Snapshot) string {
	formatted := make([]string, 0, len(ids))
	for _, id := range ids {
		r, ok := snap.Lookup(id)
		if !ok {
			continue
		}
		formatted = append(formatted, f.Team(r))
	}

	switch len(formatted) {
	case 0:
		return ""
	case 1:
		return formatted[0]
	default:
		last := len(formatted) - 1
		return strings.Join(formatted[:last], ", ") + listConjunction + formatted[last]
	}
}
