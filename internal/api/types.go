// Package api defines transport DTO types for the HTTP surface.
// Dates travel as ISO-8601 calendar-date strings (YYYY-MM-DD).
package api

// Player is the transport representation of a player record.
type Player struct {
	PlayerID    int64  `json:"player_id"`
	Name        string `json:"name"`
	BirthDate   string `json:"birth_date"`
	Nationality string `json:"nationality"`
}

// PlayerPayload is the request body for player create/update.
type PlayerPayload struct {
	Name        string `json:"name"`
	BirthDate   string `json:"birth_date"`
	Nationality string `json:"nationality"`
}

// Coach is the transport representation of a coach record.
type Coach struct {
	CoachID     int64  `json:"coach_id"`
	Name        string `json:"name"`
	BirthDate   string `json:"birth_date"`
	Nationality string `json:"nationality"`
}

// CoachPayload is the request body for coach create/update.
type CoachPayload struct {
	Name        string `json:"name"`
	BirthDate   string `json:"birth_date"`
	Nationality string `json:"nationality"`
}

// PlaysFor is the transport representation of a player tenure row.
type PlaysFor struct {
	PlayerID  int64   `json:"player_id"`
	TeamID    int64   `json:"team_id"`
	SeasonID  int64   `json:"season_id"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`
}

// PlaysForPayload is the request body for plays-for create/update.
// end_date may be absent for an open-ended tenure.
type PlaysForPayload struct {
	PlayerID  int64   `json:"player_id"`
	TeamID    int64   `json:"team_id"`
	SeasonID  int64   `json:"season_id"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`
}

// Trains is the transport representation of a coach tenure row.
type Trains struct {
	CoachID   int64   `json:"coach_id"`
	TeamID    int64   `json:"team_id"`
	SeasonID  int64   `json:"season_id"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`
}

// TrainsPayload is the request body for trains create/update.
type TrainsPayload struct {
	CoachID   int64   `json:"coach_id"`
	TeamID    int64   `json:"team_id"`
	SeasonID  int64   `json:"season_id"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`
}

// DeleteResponse reports whether a delete removed a row.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
