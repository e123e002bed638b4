package entities

import "time"

// TenureKey identifies an association row by its composite key.
// SubjectID is a player id for PlaysFor rows and a coach id for Trains rows.
type TenureKey struct {
	SubjectID int64
	TeamID    int64
	SeasonID  int64
}

// PlaysFor records a player's tenure at a team for a season.
// At most one row may exist per (player, team, season) triple.
type PlaysFor struct {
	PlayerID  int64
	TeamID    int64
	SeasonID  int64
	StartDate time.Time
	EndDate   *time.Time
}

// Key returns the composite key of the tenure row.
func (p PlaysFor) Key() TenureKey {
	return TenureKey{SubjectID: p.PlayerID, TeamID: p.TeamID, SeasonID: p.SeasonID}
}

// Trains records a coach's tenure at a team for a season.
// At most one row may exist per (coach, team, season) triple.
type Trains struct {
	CoachID   int64
	TeamID    int64
	SeasonID  int64
	StartDate time.Time
	EndDate   *time.Time
}

// Key returns the composite key of the tenure row.
func (t Trains) Key() TenureKey {
	return TenureKey{SubjectID: t.CoachID, TeamID: t.TeamID, SeasonID: t.SeasonID}
}
