package recurrence

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

const DateLayout = "2006-01-02"

const (
	Weekly   = "weekly"
	Biweekly = "biweekly"
	Monthly  = "monthly"
	None     = "none"
)

var ErrUnknownCadence = errors.New("unknown recurrence")

// NextMonday returns the first Monday strictly after from, at midnight UTC.
func NextMonday(from time.Time) time.Time {
	day := from.UTC().Truncate(24 * time.Hour)
	offset := (8 - int(day.Weekday())) % 7
	if offset == 0 {
		offset = 7
	}
	return day.AddDate(0, 0, offset)
}

func option(cadence string, start time.Time, count int) (rrule.ROption, error) {
	opt := rrule.ROption{Dtstart: start, Count: count, Interval: 1}
	switch cadence {
	case Weekly, None:
		opt.Freq = rrule.WEEKLY
	case Biweekly:
		opt.Freq = rrule.WEEKLY
		opt.Interval = 2
	case Monthly:
		// 30 day cadence, not calendar months
		opt.Freq = rrule.DAILY
		opt.Interval = 30
	default:
		return rrule.ROption{}, fmt.Errorf("%w: %q", ErrUnknownCadence, cadence)
	}
	return opt, nil
}

// NextOccurrences lists count dates (YYYY-MM-DD) for the cadence, starting at
// the Monday following from. One-off templates are offered weekly dates.
func NextOccurrences(cadence string, from time.Time, count int) ([]string, error) {
	if count <= 0 {
		return []string{}, nil
	}

	opt, err := option(cadence, NextMonday(from), count)
	if err != nil {
		return nil, err
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("can't build rrule: %w", err)
	}

	occurrences := rule.All()
	dates := make([]string, 0, len(occurrences))
	for _, o := range occurrences {
		dates = append(dates, o.Format(DateLayout))
	}
	return dates, nil
}
