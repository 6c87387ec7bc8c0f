package cmd

import (
	"fmt"
	"regexp"
	"time"
)

// ParsedDate is a date string parsed at the precision it was written in.
type ParsedDate struct {
	Date  time.Time
	Year  bool
	Month bool
	Day   bool
}

var (
	yearPattern  = regexp.MustCompile(`^\d{4}$`)
	monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
	dayPattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// parseDateBounds turns the --from and --to flags into a half-open range
// of chart days. --to includes the whole period it names, so "2023" runs
// through the last day of 2023. Empty strings leave that side unbounded.
func parseDateBounds(from, to string) (start time.Time, end time.Time, err error) {
	if from != "" {
		var parsed ParsedDate
		parsed, err = parseSingleDatestring(from)
		if err != nil {
			err = fmt.Errorf("--from: %w", err)
			return
		}
		start = parsed.Date
	}

	if to != "" {
		_, end, err = getImplicitDateRange(to)
		if err != nil {
			err = fmt.Errorf("--to: %w", err)
			return
		}
	}

	if !start.IsZero() && !end.IsZero() && !start.Before(end) {
		err = fmt.Errorf("--from %s is not before --to %s", from, to)
	}
	return
}

// withinDates reports whether day falls in [start, end), treating zero
// bounds as open.
func withinDates(day, start, end time.Time) bool {
	if !start.IsZero() && day.Before(start) {
		return false
	}
	if !end.IsZero() && !day.Before(end) {
		return false
	}
	return true
}

func getImplicitDateRange(ds string) (start time.Time, end time.Time, err error) {
	date, err := parseSingleDatestring(ds)
	if err != nil {
		return
	}

	start = date.Date
	switch {
	case date.Year:
		end = start.AddDate(1, 0, 0)

	case date.Month:
		end = start.AddDate(0, 1, 0)

	case date.Day:
		end = start.AddDate(0, 0, 1)

	default:
		err = fmt.Errorf("Invalid format: %q", ds)
	}

	return
}

func parseSingleDatestring(ds string) (date ParsedDate, err error) {
	switch {
	case yearPattern.MatchString(ds):
		date.Date, err = time.Parse("2006", ds)
		if err != nil {
			err = fmt.Errorf("Parsing datestring as year: %w", err)
			return
		}
		date.Year = true

	case monthPattern.MatchString(ds):
		date.Date, err = time.Parse("2006-01", ds)
		if err != nil {
			err = fmt.Errorf("Parsing datestring as month: %w", err)
			return
		}
		date.Month = true

	case dayPattern.MatchString(ds):
		date.Date, err = time.Parse("2006-01-02", ds)
		if err != nil {
			err = fmt.Errorf("Parsing datestring as day: %w", err)
			return
		}
		date.Day = true

	default:
		err = fmt.Errorf("Invalid format: %q", ds)
	}
	return
}
