package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xunhou0222/gnsstime/internal/caltime"
	"github.com/xunhou0222/gnsstime/internal/config"
	"github.com/xunhou0222/gnsstime/internal/doy"
	"github.com/xunhou0222/gnsstime/internal/gps"
	"github.com/xunhou0222/gnsstime/internal/leapsec"
)

const dateTimeLayout = "2006-01-02 15:04:05"

var (
	convertNow        bool
	convertDateTime   string
	convertYearDOY    string
	convertMJD        float64
	convertBJT        string
	convertGPSWeekDOW string
	convertGPSWeekTOW string
	convertJSON       bool
	convertLeapFile   string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Show a point in time in all supported formats",
	Long: `Convert displays the input time as UTC, BJT, MJD, DOY, TOD, GPS week,
DOW and TOW. Exactly one input option must be given.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&convertNow, "now", false, "convert the current time")
	convertCmd.Flags().StringVar(&convertDateTime, "datetime", "", "UTC datetime (format: YYYY-MM-DD HH:MM:SS)")
	convertCmd.Flags().StringVar(&convertYearDOY, "year-doy", "", "year and day of year (format: YYYY,DOY, DOY may be fractional)")
	convertCmd.Flags().Float64Var(&convertMJD, "mjd", 0, "modified julian date")
	convertCmd.Flags().StringVar(&convertBJT, "bjt", "", "Beijing Time datetime (format: YYYY-MM-DD HH:MM:SS)")
	convertCmd.Flags().StringVar(&convertGPSWeekDOW, "gps-week-dow", "", "GPS week and day of week (format: WEEK,DOW)")
	convertCmd.Flags().StringVar(&convertGPSWeekTOW, "gps-week-tow", "", "GPS week and time of week (format: WEEK,TOW, TOW may be fractional)")
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "output in JSON format")
	convertCmd.Flags().StringVar(&convertLeapFile, "leap-second-file", "", "path to GPSUTC.BSW leap second file (default: config or bundled)")
}

type convertResult struct {
	UTC  string  `json:"utc"`
	BJT  string  `json:"bjt"`
	MJD  float64 `json:"mjd"`
	DOY  int     `json:"doy"`
	TOD  float64 `json:"tod"`
	Week int     `json:"week"`
	DOW  int     `json:"dow"`
	TOW  float64 `json:"tow"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	mjdSet := cmd.Flags().Changed("mjd")

	inputs := 0

	for _, set := range []bool{
		convertNow,
		convertDateTime != "",
		convertYearDOY != "",
		mjdSet,
		convertBJT != "",
		convertGPSWeekDOW != "",
		convertGPSWeekTOW != "",
	} {
		if set {
			inputs++
		}
	}

	if inputs == 0 {
		return errors.Wrap(caltime.ErrMissingInput,
			"specify one of --now, --datetime, --year-doy, --mjd, --bjt, --gps-week-dow or --gps-week-tow")
	}

	if inputs > 1 {
		return errors.New("only one input option may be given")
	}

	table, err := loadLeapTable()
	if err != nil {
		return err
	}

	var c caltime.CivilTime

	switch {
	case convertNow:
		c = civilNow()
	case convertDateTime != "":
		c, err = parseDateTime(convertDateTime)
	case convertYearDOY != "":
		c, err = parseYearDOY(convertYearDOY)
	case mjdSet:
		c = caltime.FromMJD(convertMJD)
	case convertBJT != "":
		var b caltime.CivilTime

		b, err = parseDateTime(convertBJT)

		if err == nil {
			c, err = gps.BJTToUTC(b)
		}
	case convertGPSWeekTOW != "":
		var week int
		var tow float64

		week, tow, err = parseWeekTOW(convertGPSWeekTOW)

		if err == nil {
			c = resolveGPS(table, week, tow)
		}
	case convertGPSWeekDOW != "":
		var week, dow int

		week, dow, err = parseWeekDOW(convertGPSWeekDOW)

		if err == nil {
			c = resolveGPS(table, week, float64(dow)*caltime.SecondsPerDay)
		}
	}

	if err != nil {
		return err
	}

	if dateKey(c.Year, c.Month, c.Day) < dateKey(1980, 1, 6) {
		log.Warning("date is before GPS epoch (1980-01-06)")
	}

	last := table.Last()

	if dateKey(c.Year, c.Month, c.Day) > dateKey(last.Year, last.Month, last.Day) {
		log.Warning("date is beyond the leap second table, using the latest value")
	}

	leapSeconds := table.Lookup(c.Year, c.Month, c.Day)

	mjd, err := caltime.ToMJD(c)
	if err != nil {
		return err
	}

	dayOfYear, err := caltime.DayOfYear(c.Year, c.Month, c.Day)
	if err != nil {
		return err
	}

	tod, err := caltime.TimeOfDay(c.Hour, c.Minute, c.Second)
	if err != nil {
		return err
	}

	bjt, err := gps.UTCToBJT(c)
	if err != nil {
		return err
	}

	wt, err := gps.FromUTC(c, leapSeconds)
	if err != nil {
		return err
	}

	result := convertResult{
		UTC:  formatCivil(c),
		BJT:  formatCivil(bjt),
		MJD:  mjd,
		DOY:  dayOfYear,
		TOD:  tod,
		Week: wt.Week,
		DOW:  wt.DOW,
		TOW:  wt.TOW,
	}

	jsonOut := convertJSON || config.C.Output.JSON

	if jsonOut {
		b, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshal result")
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(b))

		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "UTC:  %s\n", result.UTC)
	fmt.Fprintf(out, "BJT:  %s\n", result.BJT)
	fmt.Fprintf(out, "MJD:  %v\n", result.MJD)
	fmt.Fprintf(out, "DOY:  %d\n", result.DOY)
	fmt.Fprintf(out, "TOD:  %v\n", result.TOD)
	fmt.Fprintf(out, "WEEK: %d\n", result.Week)
	fmt.Fprintf(out, "DOW:  %d\n", result.DOW)
	fmt.Fprintf(out, "TOW:  %v\n", result.TOW)

	return nil
}

// loadLeapTable resolves the leap second file (flag, then config file,
// then the default search) and loads it once for this invocation.
func loadLeapTable() (*leapsec.Table, error) {
	path := convertLeapFile

	if path == "" {
		path = config.C.LeapSeconds.File
	}

	if path == "" {
		var err error

		path, err = leapsec.Locate()
		if err != nil {
			return nil, err
		}
	}

	return leapsec.Load(path)
}

// resolveGPS converts a GPS week/TOW pair to UTC with the two pass leap
// second resolution: a provisional conversion with offset 0 finds the
// approximate date, whose table value feeds the real conversion.
func resolveGPS(table *leapsec.Table, week int, tow float64) caltime.CivilTime {
	provisional := gps.ToUTC(week, tow, 0)
	leapSeconds := table.Lookup(provisional.Year, provisional.Month, provisional.Day)

	return gps.ToUTC(week, tow, leapSeconds)
}

func civilNow() caltime.CivilTime {
	t := time.Now().UTC()

	return caltime.CivilTime{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: float64(t.Second()) + float64(t.Nanosecond())*1.0e-9,
	}
}

func parseDateTime(s string) (caltime.CivilTime, error) {
	t, err := time.Parse(dateTimeLayout, s)
	if err != nil {
		return caltime.CivilTime{}, errors.Wrapf(err, "invalid datetime %q, expected YYYY-MM-DD HH:MM:SS", s)
	}

	return caltime.CivilTime{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: float64(t.Second()),
	}, nil
}

func parseYearDOY(s string) (caltime.CivilTime, error) {
	parts := strings.Split(s, ",")

	if len(parts) != 2 {
		return caltime.CivilTime{}, errors.Errorf("invalid value %q, expected YYYY,DOY (e.g. 2024,15.5)", s)
	}

	year, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return caltime.CivilTime{}, errors.Wrapf(err, "invalid year %q", parts[0])
	}

	doyFraction, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return caltime.CivilTime{}, errors.Wrapf(err, "invalid day of year %q", parts[1])
	}

	return doy.ToCivil(year, doyFraction)
}

func parseWeekTOW(s string) (int, float64, error) {
	parts := strings.Split(s, ",")

	if len(parts) != 2 {
		return 0, 0, errors.Errorf("invalid value %q, expected WEEK,TOW (e.g. 2405,475219.5)", s)
	}

	week, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid week %q", parts[0])
	}

	tow, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid time of week %q", parts[1])
	}

	return week, tow, nil
}

func parseWeekDOW(s string) (int, int, error) {
	parts := strings.Split(s, ",")

	if len(parts) != 2 {
		return 0, 0, errors.Errorf("invalid value %q, expected WEEK,DOW (e.g. 2405,5)", s)
	}

	week, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid week %q", parts[0])
	}

	dow, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid day of week %q", parts[1])
	}

	return week, dow, nil
}

// formatCivil renders a civil time with the seconds truncated to whole
// numbers, matching the table output layout.
func formatCivil(c caltime.CivilTime) string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		c.Year, c.Month, c.Day, c.Hour, c.Minute, int(c.Second))
}

func dateKey(year, month, day int) int {
	return year*10000 + month*100 + day
}
