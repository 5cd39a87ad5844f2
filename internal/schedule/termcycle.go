package schedule

import (
	"time"

	"github.com/tutorkit/tutorbook/internal/model"
)

// Occurrence is one lesson instant produced by term-cycle expansion.
type Occurrence struct {
	Date time.Time // midnight of the lesson's calendar day
	Time model.TimeOfDay
}

// ExpandCycle walks every day of the term's [start, end] range and emits an
// occurrence for each entry of the active cycle week whose weekday matches
// the day. The active week is floor(daysSinceStart/7) mod N, counted on
// date-truncated days so daylight-saving shifts cannot skew the week index.
//
// The walk is pure: no conflict checking, no persistence. A malformed cycle
// (non-positive length, missing week) skips the affected days rather than
// aborting the whole term.
func ExpandCycle(cycle model.PatternCycle, term model.AcademicTerm) []Occurrence {
	if cycle.CycleLengthInWeeks <= 0 {
		return nil
	}

	start := startOfDay(term.StartDate)
	end := startOfDay(term.EndDate)

	var results []Occurrence
	for current, dayIndex := start, 0; !current.After(end); current, dayIndex = current.AddDate(0, 0, 1), dayIndex+1 {
		weekIndex := (dayIndex / 7) % cycle.CycleLengthInWeeks
		if weekIndex >= len(cycle.WeekPatterns) {
			continue
		}

		weekday := int(current.Weekday()) + 1 // 1 = Sunday .. 7 = Saturday
		for _, entry := range cycle.WeekPatterns[weekIndex] {
			if entry.Weekday == weekday {
				results = append(results, Occurrence{Date: current, Time: entry.Time()})
			}
		}
	}
	return results
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
