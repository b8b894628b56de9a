// Package model contains domain models passed between layers.
package model

// Record represents one team's row in a leaderboard snapshot.
// Only canonical fields are kept; per-fetch display metadata
// (raw placement index, country code) never reaches this type.
type Record struct {
	TeamID   int64   `json:"team_id"`
	TeamName string  `json:"team_name"`
	Points   float64 `json:"points"`
	Place    int     `json:"country_place"`
}

// Snapshot is one full ranking capture for one country at a point
// in time. Records keep their fetch order; lookups go through an
// id index.
type Snapshot struct {
	records []Record
	index   map[int64]int
}

// NewSnapshot builds a snapshot from records in fetch order.
// Duplicate team ids are not expected but tolerated: the first
// occurrence keeps its position and the last occurrence wins the
// value, mirroring map-insertion semantics.
func NewSnapshot(records []Record) *Snapshot {
	s := &Snapshot{
		records: make([]Record, 0, len(records)),
		index:   make(map[int64]int, len(records)),
	}
	for _, r := range records {
		if i, ok := s.index[r.TeamID]; ok {
			s.records[i] = r
			continue
		}
		s.index[r.TeamID] = len(s.records)
		s.records = append(s.records, r)
	}
	return s
}

// Lookup returns the record for a team id.
func (s *Snapshot) Lookup(teamID int64) (Record, bool) {
	if s == nil {
		return Record{}, false
	}
	i, ok := s.index[teamID]
	if !ok {
		return Record{}, false
	}
	return s.records[i], true
}

// Contains reports whether the snapshot holds a record for teamID.
func (s *Snapshot) Contains(teamID int64) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[teamID]
	return ok
}

// Records returns the records in snapshot order. The returned slice
// is shared; callers must not mutate it.
func (s *Snapshot) Records() []Record {
	if s == nil {
		return nil
	}
	return s.records
}

// Len returns the number of distinct teams in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}
