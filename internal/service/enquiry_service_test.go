package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tutorkit/tutorbook/internal/model"
)

func newEnquiryService(env *testEnv) *EnquiryService {
	return NewEnquiryService(env.enquiries, env.booking, zap.NewNop())
}

func TestEnquiryLifecycle(t *testing.T) {
	env := newTestEnv(t, monday, 4)
	svc := newEnquiryService(env)
	ctx := context.Background()

	_, err := svc.Add(ctx, NewEnquiryInput{StudentName: "Dan Hale"})
	require.ErrorIs(t, err, ErrValidation) // parent name is required

	enquiry, err := svc.Add(ctx, NewEnquiryInput{
		ParentName:  "Maria Hale",
		StudentName: "Dan Hale",
		Instrument:  "Piano",
	})
	require.NoError(t, err)
	require.Len(t, svc.List(ctx), 1)

	require.NoError(t, svc.Decline(ctx, enquiry.ID))
	require.Empty(t, svc.List(ctx))
	require.ErrorIs(t, svc.Decline(ctx, enquiry.ID), ErrNotFound)
}

func TestEnquiryBook(t *testing.T) {
	env := newTestEnv(t, monday, 4)
	svc := newEnquiryService(env)
	ctx := context.Background()

	enquiry, err := svc.Add(ctx, NewEnquiryInput{
		ParentName:  "Maria Hale",
		StudentName: "Dan Hale",
		Instrument:  "Piano",
	})
	require.NoError(t, err)

	lesson, err := svc.Book(ctx, enquiry.ID, BookingCandidate{
		Date: day(3),
		Time: model.TimeOfDay{Hour: 11},
	})
	require.NoError(t, err)
	require.Equal(t, "Dan Hale", lesson.StudentName)

	// Conversion registered the student and consumed the enquiry.
	_, ok := env.students.FindByName("Dan Hale")
	require.True(t, ok)
	require.Empty(t, svc.List(ctx))
}

func TestEnquirySurvivesFailedBooking(t *testing.T) {
	env := newTestEnv(t, monday, 4)
	svc := newEnquiryService(env)
	ctx := context.Background()

	at := model.TimeOfDay{Hour: 11}
	_, err := env.booking.BookLesson(ctx, BookingCandidate{StudentName: "Alice Smith", Date: day(3), Time: at})
	require.NoError(t, err)

	enquiry, err := svc.Add(ctx, NewEnquiryInput{ParentName: "Maria Hale", StudentName: "Dan Hale"})
	require.NoError(t, err)

	_, err = svc.Book(ctx, enquiry.ID, BookingCandidate{Date: day(3), Time: at})
	require.ErrorIs(t, err, ErrConflict)
	require.Len(t, svc.List(ctx), 1) // still there for a retry
}
