package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tutorkit/tutorbook/internal/model"
)

func TestCalendarExport(t *testing.T) {
	env := newTestEnv(t, monday, 4)
	svc := NewExportService(env.lessons, zap.NewNop())
	ctx := context.Background()

	kept, err := env.booking.BookLesson(ctx, BookingCandidate{
		StudentName: "Alice Smith",
		Date:        day(2),
		Time:        model.TimeOfDay{Hour: 9, Minute: 30},
		Location:    "Home studio",
	})
	require.NoError(t, err)

	cancelled, err := env.booking.BookLesson(ctx, BookingCandidate{
		StudentName: "Ben Ward",
		Date:        day(3),
		Time:        model.TimeOfDay{Hour: 10},
	})
	require.NoError(t, err)
	_, err = env.booking.SetLessonStatus(ctx, cancelled.ID, model.LessonStatusCancelled)
	require.NoError(t, err)

	feed, err := svc.Calendar(ctx, day(1), day(8))
	require.NoError(t, err)

	require.Contains(t, feed, "BEGIN:VCALENDAR")
	require.Contains(t, feed, "Lesson: Alice Smith")
	require.Contains(t, feed, kept.ID.String())
	require.NotContains(t, feed, "Ben Ward")
	require.Equal(t, 1, strings.Count(feed, "BEGIN:VEVENT"))
}

func TestCalendarExportEmptyRange(t *testing.T) {
	env := newTestEnv(t, monday, 4)
	svc := NewExportService(env.lessons, zap.NewNop())

	_, err := svc.Calendar(context.Background(), day(8), day(1))
	require.ErrorIs(t, err, ErrValidation)
}
