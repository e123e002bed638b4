package mapper

import (
	"testing"
	"time"

	"github.com/Jav1ex/football-team-management-personnel-service/internal/api"
	"github.com/Jav1ex/football-team-management-personnel-service/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("birth_date", "2004-07-19")
	require.NoError(t, err)
	require.Equal(t, time.Date(2004, 7, 19, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateRejectsMalformed(t *testing.T) {
	for _, value := range []string{"2024-13-40", "19-07-2004", "2004/07/19", "yesterday", ""} {
		_, err := ParseDate("birth_date", value)
		require.ErrorIs(t, err, entities.ErrInvalidArgument, "value %q", value)
	}
}

func TestFromAPIPlayerPayload(t *testing.T) {
	p, err := FromAPIPlayerPayload(api.PlayerPayload{
		Name:        "Sergio Ramos",
		BirthDate:   "1986-03-30",
		Nationality: "Spain",
	})
	require.NoError(t, err)
	require.Equal(t, "Sergio Ramos", p.Name)
	require.Equal(t, time.Date(1986, 3, 30, 0, 0, 0, 0, time.UTC), p.BirthDate)
}

func TestFromAPIPlayerPayloadBadDate(t *testing.T) {
	_, err := FromAPIPlayerPayload(api.PlayerPayload{Name: "X", BirthDate: "not-a-date"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	// parser internals must not leak into the message
	require.NotContains(t, err.Error(), "parsing time")
}

func TestPlaysForRoundTripOpenEnded(t *testing.T) {
	rec, err := FromAPIPlaysForPayload(api.PlaysForPayload{
		PlayerID:  1,
		TeamID:    2,
		SeasonID:  3,
		StartDate: "2024-08-01",
	})
	require.NoError(t, err)
	require.Nil(t, rec.EndDate)

	out := ToAPIPlaysFor(rec)
	require.Equal(t, "2024-08-01", out.StartDate)
	require.Nil(t, out.EndDate)
}

func TestPlaysForEndDate(t *testing.T) {
	end := "2025-05-30"
	rec, err := FromAPIPlaysForPayload(api.PlaysForPayload{
		PlayerID:  1,
		TeamID:    2,
		SeasonID:  3,
		StartDate: "2024-08-01",
		EndDate:   &end,
	})
	require.NoError(t, err)
	require.NotNil(t, rec.EndDate)
	require.Equal(t, time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC), *rec.EndDate)

	out := ToAPIPlaysFor(rec)
	require.NotNil(t, out.EndDate)
	require.Equal(t, end, *out.EndDate)
}

func TestTrainsBadEndDate(t *testing.T) {
	end := "soon"
	_, err := FromAPITrainsPayload(api.TrainsPayload{
		CoachID:   1,
		TeamID:    2,
		SeasonID:  3,
		StartDate: "2024-08-01",
		EndDate:   &end,
	})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestToAPIPlayerListEmpty(t *testing.T) {
	out := ToAPIPlayerList(nil)
	require.NotNil(t, out)
	require.Empty(t, out)
}
