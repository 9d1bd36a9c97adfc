// Package leapsec loads the GPS-minus-UTC leap second history from a
// GPSUTC.BSW table file and answers point-in-time offset lookups.
package leapsec

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrSourceUnavailable means the leap second file could not be opened or
// contained no usable records.
var ErrSourceUnavailable = errors.New("leap second source unavailable")

// Record is one row of the table: the GPS-UTC offset in effect from the
// given date until superseded by the next record.
type Record struct {
	Year   int
	Month  int
	Day    int
	Offset int
}

// Table is the ordered leap second history, ascending by effective date
// as read from the file. It is immutable after Load and safe for
// concurrent readers.
type Table struct {
	Path    string
	Records []Record
}

// Load reads and parses a GPSUTC.BSW file. The file must yield at least
// one record.
func Load(path string) (*Table, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "open %s: %v", path, err)
	}

	defer fp.Close()

	t := &Table{Path: path}

	if err := t.parse(fp); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	if len(t.Records) == 0 {
		return nil, errors.Wrapf(ErrSourceUnavailable, "no leap second records in %s", path)
	}

	return t, nil
}

/*
parse reads the whitespace-delimited BSW layout. Blank lines, separator
lines and lines carrying header tokens are skipped. A data line has at
least 7 fields: the offset (a real number, truncated to whole seconds)
followed by the year, month and day it takes effect; trailing fields
(the valid-until date) are ignored. Records are kept in file order, the
file is assumed already ascending by effective date.
*/
func (t *Table) parse(r io.Reader) error {
	sc := bufio.NewScanner(r)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		if line == "" || strings.HasPrefix(line, "DIFFERENCE") || strings.HasPrefix(line, "-----") {
			continue
		}

		if strings.Contains(line, "GPS-UTC") || strings.Contains(line, "VALID SINCE") ||
			strings.Contains(line, "(SEC)") {
			continue
		}

		fields := strings.Fields(line)

		if len(fields) < 7 {
			continue
		}

		offset, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return errors.Wrapf(ErrSourceUnavailable, "bad offset %q", fields[0])
		}

		year, err := strconv.Atoi(fields[1])
		if err != nil {
			return errors.Wrapf(ErrSourceUnavailable, "bad year %q", fields[1])
		}

		month, err := strconv.Atoi(fields[2])
		if err != nil {
			return errors.Wrapf(ErrSourceUnavailable, "bad month %q", fields[2])
		}

		day, err := strconv.Atoi(fields[3])
		if err != nil {
			return errors.Wrapf(ErrSourceUnavailable, "bad day %q", fields[3])
		}

		t.Records = append(t.Records, Record{
			Year:   year,
			Month:  month,
			Day:    day,
			Offset: int(offset),
		})
	}

	return sc.Err()
}

// Lookup returns the offset of the last record whose effective date is
// not after the query date. Queries before the first record return the
// first record's offset, the oldest known value acting as a floor.
func (t *Table) Lookup(year, month, day int) int {
	q := dateKey(year, month, day)
	result := t.Records[0].Offset

	for _, rec := range t.Records {
		if q >= dateKey(rec.Year, rec.Month, rec.Day) {
			result = rec.Offset
		}
	}

	return result
}

// Last returns the most recent record, used to warn when a query date
// lies beyond the table.
func (t *Table) Last() Record {
	return t.Records[len(t.Records)-1]
}

func dateKey(year, month, day int) int {
	return year*10000 + month*100 + day
}
