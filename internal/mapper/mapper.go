// Package mapper converts between domain models and transport DTOs.
// Date parsing happens here, so a malformed date never reaches the store.
package mapper

import (
	"fmt"
	"time"

	"github.com/Jav1ex/football-team-management-personnel-service/internal/api"
	"github.com/Jav1ex/football-team-management-personnel-service/internal/entities"
)

const dateLayout = "2006-01-02"

// ParseDate parses an ISO-8601 calendar date, mapping failures to
// ErrInvalidArgument without echoing parser internals.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be an ISO-8601 date (YYYY-MM-DD)", entities.ErrInvalidArgument, field)
	}
	return t, nil
}

func parseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := ParseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// FromAPIPlayerPayload builds an entities.Player from the request body.
func FromAPIPlayerPayload(src api.PlayerPayload) (entities.Player, error) {
	birth, err := ParseDate("birth_date", src.BirthDate)
	if err != nil {
		return entities.Player{}, err
	}
	return entities.Player{
		Name:        src.Name,
		BirthDate:   birth,
		Nationality: src.Nationality,
	}, nil
}

// ToAPIPlayer maps entities.Player to its transport model.
func ToAPIPlayer(p entities.Player) api.Player {
	return api.Player{
		PlayerID:    p.ID,
		Name:        p.Name,
		BirthDate:   formatDate(p.BirthDate),
		Nationality: p.Nationality,
	}
}

// ToAPIPlayerList maps a slice of players to transport models.
func ToAPIPlayerList(list []entities.Player) []api.Player {
	res := make([]api.Player, 0, len(list))
	for _, p := range list {
		res = append(res, ToAPIPlayer(p))
	}
	return res
}

// FromAPICoachPayload builds an entities.Coach from the request body.
func FromAPICoachPayload(src api.CoachPayload) (entities.Coach, error) {
	birth, err := ParseDate("birth_date", src.BirthDate)
	if err != nil {
		return entities.Coach{}, err
	}
	return entities.Coach{
		Name:        src.Name,
		BirthDate:   birth,
		Nationality: src.Nationality,
	}, nil
}

// ToAPICoach maps entities.Coach to its transport model.
func ToAPICoach(c entities.Coach) api.Coach {
	return api.Coach{
		CoachID:     c.ID,
		Name:        c.Name,
		BirthDate:   formatDate(c.BirthDate),
		Nationality: c.Nationality,
	}
}

// ToAPICoachList maps a slice of coaches to transport models.
func ToAPICoachList(list []entities.Coach) []api.Coach {
	res := make([]api.Coach, 0, len(list))
	for _, c := range list {
		res = append(res, ToAPICoach(c))
	}
	return res
}

// FromAPIPlaysForPayload builds an entities.PlaysFor from the request body.
func FromAPIPlaysForPayload(src api.PlaysForPayload) (entities.PlaysFor, error) {
	start, err := ParseDate("start_date", src.StartDate)
	if err != nil {
		return entities.PlaysFor{}, err
	}
	end, err := parseOptionalDate("end_date", src.EndDate)
	if err != nil {
		return entities.PlaysFor{}, err
	}
	return entities.PlaysFor{
		PlayerID:  src.PlayerID,
		TeamID:    src.TeamID,
		SeasonID:  src.SeasonID,
		StartDate: start,
		EndDate:   end,
	}, nil
}

// ToAPIPlaysFor maps entities.PlaysFor to its transport model.
func ToAPIPlaysFor(r entities.PlaysFor) api.PlaysFor {
	return api.PlaysFor{
		PlayerID:  r.PlayerID,
		TeamID:    r.TeamID,
		SeasonID:  r.SeasonID,
		StartDate: formatDate(r.StartDate),
		EndDate:   formatOptionalDate(r.EndDate),
	}
}

// ToAPIPlaysForList maps a slice of player tenures to transport models.
func ToAPIPlaysForList(list []entities.PlaysFor) []api.PlaysFor {
	res := make([]api.PlaysFor, 0, len(list))
	for _, r := range list {
		res = append(res, ToAPIPlaysFor(r))
	}
	return res
}

// FromAPITrainsPayload builds an entities.Trains from the request body.
func FromAPITrainsPayload(src api.TrainsPayload) (entities.Trains, error) {
	start, err := ParseDate("start_date", src.StartDate)
	if err != nil {
		return entities.Trains{}, err
	}
	end, err := parseOptionalDate("end_date", src.EndDate)
	if err != nil {
		return entities.Trains{}, err
	}
	return entities.Trains{
		CoachID:   src.CoachID,
		TeamID:    src.TeamID,
		SeasonID:  src.SeasonID,
		StartDate: start,
		EndDate:   end,
	}, nil
}

// ToAPITrains maps entities.Trains to its transport model.
func ToAPITrains(r entities.Trains) api.Trains {
	return api.Trains{
		CoachID:   r.CoachID,
		TeamID:    r.TeamID,
		SeasonID:  r.SeasonID,
		StartDate: formatDate(r.StartDate),
		EndDate:   formatOptionalDate(r.EndDate),
	}
}

// ToAPITrainsList maps a slice of coach tenures to transport models.
func ToAPITrainsList(list []entities.Trains) []api.Trains {
	res := make([]api.Trains, 0, len(list))
	for _, r := range list {
		res = append(res, ToAPITrains(r))
	}
	return res
}
