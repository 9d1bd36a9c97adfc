package gps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xunhou0222/gnsstime/internal/caltime"
)

func TestUTCToBJT(t *testing.T) {
	tests := []struct {
		name string
		in   caltime.CivilTime
		out  caltime.CivilTime
	}{
		{
			"same day",
			caltime.CivilTime{Year: 2024, Month: 1, Day: 15, Hour: 12},
			caltime.CivilTime{Year: 2024, Month: 1, Day: 15, Hour: 20},
		},
		{
			"day rollover",
			caltime.CivilTime{Year: 2024, Month: 1, Day: 15, Hour: 23},
			caltime.CivilTime{Year: 2024, Month: 1, Day: 16, Hour: 7},
		},
		{
			"year rollover",
			caltime.CivilTime{Year: 2023, Month: 12, Day: 31, Hour: 20},
			caltime.CivilTime{Year: 2024, Month: 1, Day: 1, Hour: 4},
		},
		{
			"leap day rollover",
			caltime.CivilTime{Year: 2024, Month: 2, Day: 28, Hour: 22},
			caltime.CivilTime{Year: 2024, Month: 2, Day: 29, Hour: 6},
		},
	}

	for _, tst := range tests {
		t.Run(tst.name, func(t *testing.T) {
			got, err := UTCToBJT(tst.in)
			require.NoError(t, err)
			assertCivilEqual(t, tst.out, got)
		})
	}
}

func TestBJTToUTC(t *testing.T) {
	got, err := BJTToUTC(caltime.CivilTime{Year: 2024, Month: 1, Day: 15, Hour: 20})
	require.NoError(t, err)
	assertCivilEqual(t, caltime.CivilTime{Year: 2024, Month: 1, Day: 15, Hour: 12}, got)

	// early BJT morning falls on the previous UTC day
	got, err = BJTToUTC(caltime.CivilTime{Year: 2024, Month: 1, Day: 2, Hour: 4})
	require.NoError(t, err)
	assertCivilEqual(t, caltime.CivilTime{Year: 2024, Month: 1, Day: 1, Hour: 20}, got)
}

func TestBJTRoundTrip(t *testing.T) {
	civils := []caltime.CivilTime{
		{Year: 2024, Month: 6, Day: 15, Hour: 12, Minute: 30, Second: 45},
		{Year: 2024, Month: 1, Day: 15, Hour: 23, Minute: 59, Second: 59.5},
		{Year: 2023, Month: 12, Day: 31, Hour: 20},
		{Year: 2024, Month: 2, Day: 29},
		{Year: 1980, Month: 1, Day: 6},
	}

	for _, c := range civils {
		bjt, err := UTCToBJT(c)
		require.NoError(t, err, "%+v", c)

		back, err := BJTToUTC(bjt)
		require.NoError(t, err, "%+v", c)
		assertCivilEqual(t, c, back)
	}
}

func TestBJTInvalidInput(t *testing.T) {
	_, err := UTCToBJT(caltime.CivilTime{Year: 2024, Month: 1, Day: 15, Hour: 25})
	assert.Error(t, err)

	_, err = BJTToUTC(caltime.CivilTime{Year: 2023, Month: 2, Day: 29})
	assert.Error(t, err)
}

func assertCivilEqual(t *testing.T, expected, got caltime.CivilTime) {
	t.Helper()

	assert.Equal(t, expected.Year, got.Year)
	assert.Equal(t, expected.Month, got.Month)
	assert.Equal(t, expected.Day, got.Day)
	assert.Equal(t, expected.Hour, got.Hour)
	assert.Equal(t, expected.Minute, got.Minute)
	assert.InDelta(t, expected.Second, got.Second, 1e-6)
}
