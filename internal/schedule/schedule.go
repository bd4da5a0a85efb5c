// Package schedule computes bookable consultation call slots in the service time zone.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

const CallSlotMinutes = 30

var (
	ErrInvalidDate  = errors.New("invalid date format")
	ErrInvalidClock = errors.New("invalid time format")
)

type window struct {
	start string
	end   string
}

// consultationHours lists the windows lawyers take calls in, by weekday.
func consultationHours(day time.Weekday) []window {
	switch day {
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday:
		return []window{{start: "10:00", end: "13:00"}, {start: "14:00", end: "18:00"}}
	case time.Saturday:
		return []window{{start: "10:00", end: "14:00"}}
	default:
		return nil
	}
}

func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", raw, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

func clockMinutes(raw string) (int, error) {
	tm, err := time.Parse("15:04", raw)
	if err != nil {
		return 0, ErrInvalidClock
	}
	return tm.Hour()*60 + tm.Minute(), nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// CallSlots returns the start times ("HH:MM") of the calls bookable on date.
// Dates before today yield no slots and today's slots that already started are dropped.
func CallSlots(date string, loc *time.Location, now time.Time) ([]string, error) {
	day, err := ParseDate(date, loc)
	if err != nil {
		return nil, err
	}

	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	if day.Before(today) {
		return []string{}, nil
	}

	slots := make([]string, 0)
	for _, w := range consultationHours(day.Weekday()) {
		from, err := clockMinutes(w.start)
		if err != nil {
			return nil, err
		}
		to, err := clockMinutes(w.end)
		if err != nil {
			return nil, err
		}
		for m := from; m+CallSlotMinutes <= to; m += CallSlotMinutes {
			start := day.Add(time.Duration(m) * time.Minute)
			if !start.After(local) {
				continue
			}
			slots = append(slots, formatClock(m))
		}
	}
	return slots, nil
}
