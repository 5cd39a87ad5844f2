package schedule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"github.com/tutorkit/tutorbook/internal/model"
)

// Pattern weekdays are numbered 1 = Sunday .. 7 = Saturday.
var rruleWeekdays = map[int]rrule.Weekday{
	1: rrule.SU,
	2: rrule.MO,
	3: rrule.TU,
	4: rrule.WE,
	5: rrule.TH,
	6: rrule.FR,
	7: rrule.SA,
}

// RecurringExpander projects a weekly lesson pattern into concrete start
// instants over a forward horizon. It is pure: materializing lessons,
// de-duplication and conflict handling belong to the caller.
type RecurringExpander struct {
	HorizonWeeks int
	Now          func() time.Time // injectable clock, defaults to time.Now
}

func NewRecurringExpander(horizonWeeks int) *RecurringExpander {
	return &RecurringExpander{HorizonWeeks: horizonWeeks}
}

func (e *RecurringExpander) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Occurrences returns every start instant of the pattern from today up to,
// but not including, today + HorizonWeeks weeks. A same-day occurrence is
// included even if its time has already passed; callers decide whether past
// starts are still worth materializing.
func (e *RecurringExpander) Occurrences(p model.RecurringLessonPattern) ([]time.Time, error) {
	weekday, ok := rruleWeekdays[p.Weekday]
	if !ok {
		return nil, fmt.Errorf("pattern weekday out of range: %d", p.Weekday)
	}

	now := e.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), p.Hour, p.Minute, 0, 0, now.Location())
	end := start.AddDate(0, 0, 7*e.HorizonWeeks)

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   start,
		Byweekday: []rrule.Weekday{weekday},
	})
	if err != nil {
		return nil, fmt.Errorf("build recurrence rule: %w", err)
	}

	occurrences := make([]time.Time, 0, e.HorizonWeeks)
	for _, t := range rule.Between(start, end, true) {
		if t.Before(end) {
			occurrences = append(occurrences, t)
		}
	}
	return occurrences, nil
}
