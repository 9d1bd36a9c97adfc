package caltime

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		leap bool
	}{
		{2024, true},
		{2023, false},
		{2000, true},
		{1900, false},
		{1980, true},
		{2100, false},
	}

	for _, tst := range tests {
		assert.Equal(t, tst.leap, IsLeapYear(tst.year), "year %d", tst.year)
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2024, 1))
	assert.Equal(t, 29, DaysInMonth(2024, 2))
	assert.Equal(t, 28, DaysInMonth(2023, 2))
	assert.Equal(t, 30, DaysInMonth(2024, 4))
	assert.Equal(t, 31, DaysInMonth(2024, 12))
}

func TestDayOfYear(t *testing.T) {
	tests := []struct {
		year, month, day int
		doy              int
	}{
		{2024, 1, 1, 1},
		{2024, 3, 1, 61},
		{2023, 3, 1, 60},
		{2024, 12, 31, 366},
		{2023, 12, 31, 365},
		{1980, 1, 6, 6},
	}

	for _, tst := range tests {
		doy, err := DayOfYear(tst.year, tst.month, tst.day)
		require.NoError(t, err, "%04d-%02d-%02d", tst.year, tst.month, tst.day)
		assert.Equal(t, tst.doy, doy, "%04d-%02d-%02d", tst.year, tst.month, tst.day)
	}
}

func TestDayOfYearInvalidDate(t *testing.T) {
	_, err := DayOfYear(2023, 2, 29)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestTimeOfDay(t *testing.T) {
	tod, err := TimeOfDay(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, tod)

	tod, err = TimeOfDay(12, 30, 45.5)
	require.NoError(t, err)
	assert.Equal(t, 12*3600+30*60+45.5, tod)

	tod, err = TimeOfDay(23, 59, 59.999)
	require.NoError(t, err)
	assert.InDelta(t, 86399.999, tod, 1e-9)
}

func TestTimeOfDayOutOfRange(t *testing.T) {
	tests := []struct {
		name         string
		hour, minute int
		second       float64
	}{
		{"hour 24", 24, 0, 0},
		{"hour -1", -1, 0, 0},
		{"minute 60", 0, 60, 0},
		{"second 60", 0, 0, 60},
		{"second negative", 0, 0, -0.5},
	}

	for _, tst := range tests {
		t.Run(tst.name, func(t *testing.T) {
			_, err := TimeOfDay(tst.hour, tst.minute, tst.second)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrOutOfRange))
		})
	}
}

func TestValidate(t *testing.T) {
	valid := []CivilTime{
		{Year: 2024, Month: 1, Day: 15, Hour: 12, Minute: 30, Second: 45},
		{Year: 2024, Month: 2, Day: 29},
		{Year: 1858, Month: 11, Day: 17},
		{Year: 2024, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59.999999},
	}

	for _, c := range valid {
		assert.NoError(t, Validate(c), "%+v", c)
	}

	invalid := []CivilTime{
		{Year: 2024, Month: 13, Day: 1},
		{Year: 2024, Month: 0, Day: 1},
		{Year: 2024, Month: 1, Day: 0},
		{Year: 2024, Month: 1, Day: 32},
		{Year: 2023, Month: 2, Day: 29},
		{Year: 2024, Month: 1, Day: 1, Hour: 25},
		{Year: 2024, Month: 1, Day: 1, Minute: 60},
		{Year: 2024, Month: 1, Day: 1, Second: 60},
	}

	for _, c := range invalid {
		err := Validate(c)
		require.Error(t, err, "%+v", c)
		assert.True(t, errors.Is(err, ErrOutOfRange), "%+v", c)
	}
}
