package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tutorkit/tutorbook/internal/model"
	"github.com/tutorkit/tutorbook/internal/repository"
	"github.com/tutorkit/tutorbook/internal/schedule"
)

// BookingCandidate carries everything a booking flow submits for one lesson.
type BookingCandidate struct {
	StudentID   uuid.UUID // optional; resolved by name when zero
	StudentName string    `validate:"required"`
	Date        time.Time `validate:"required"`
	Time        model.TimeOfDay
	Location    string
	Notes       string
	Grade       int `validate:"min=0,max=8"`
	Instrument  string
	// RepeatWeekly registers a weekly pattern at the candidate's weekday and
	// time and projects it forward immediately.
	RepeatWeekly bool
}

// PatternInput registers a standalone weekly pattern.
type PatternInput struct {
	StudentName string `validate:"required"`
	Weekday     int    `validate:"min=1,max=7"` // 1 = Sunday .. 7 = Saturday
	Hour        int    `validate:"min=0,max=23"`
	Minute      int    `validate:"min=0,max=59"`
	Location    string
	Notes       string
	Instrument  string
	Grade       int `validate:"min=0,max=8"`
}

// TermInput registers a school term with its pattern cycles.
type TermInput struct {
	SchoolName    string    `validate:"required"`
	StartDate     time.Time `validate:"required"`
	EndDate       time.Time `validate:"required"`
	PatternCycles []model.PatternCycle
}

// BookingService is the entry point every booking flow goes through. Its
// mutating operations hold one mutex, so a conflict check and the write it
// guards are atomic: two near-simultaneous bookings cannot both pass
// validation against stale state.
type BookingService struct {
	mu           sync.Mutex
	lessons      *repository.LessonRepository
	students     *repository.StudentRepository
	patterns     *repository.PatternRepository
	terms        *repository.TermRepository
	availability *AvailabilityService
	checker      *schedule.Checker
	expander     *schedule.RecurringExpander
	validate     *validator.Validate
	logger       *zap.Logger
	now          func() time.Time
}

func NewBookingService(
	lessons *repository.LessonRepository,
	students *repository.StudentRepository,
	patterns *repository.PatternRepository,
	terms *repository.TermRepository,
	availability *AvailabilityService,
	expander *schedule.RecurringExpander,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		lessons:      lessons,
		students:     students,
		patterns:     patterns,
		terms:        terms,
		availability: availability,
		checker:      schedule.NewChecker(lessons),
		expander:     expander,
		validate:     validator.New(),
		logger:       logger,
		now:          time.Now,
	}
}

// BookLesson validates the candidate against availability and conflicts and
// persists it. Nothing changes on failure. An unregistered student named in
// the candidate is registered on the way through.
func (s *BookingService) BookLesson(ctx context.Context, candidate BookingCandidate) (*model.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validate.Struct(candidate); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if candidate.Time == (model.TimeOfDay{}) {
		return nil, fmt.Errorf("%w: no time slot chosen", ErrValidation)
	}

	if !s.availability.IsSlotEnabled(candidate.Time.String()) {
		return nil, fmt.Errorf("slot %s: %w", candidate.Time, ErrSlotDisabled)
	}
	if !s.checker.IsTimeSlotAvailable(candidate.Date, candidate.Time, uuid.Nil) {
		return nil, fmt.Errorf("%s at %s: %w", candidate.Date.Format("2006-01-02"), candidate.Time, ErrConflict)
	}

	student := s.resolveStudent(candidate.StudentID, candidate.StudentName)

	lesson := model.Lesson{
		ID:          uuid.New(),
		StudentID:   student.ID,
		StudentName: student.FullName(),
		Date:        startOfDay(candidate.Date),
		Time:        candidate.Time,
		Location:    candidate.Location,
		Notes:       candidate.Notes,
		Grade:       candidate.Grade,
		Status:      model.LessonStatusScheduled,
	}
	if err := s.lessons.Add(lesson); err != nil {
		return nil, fmt.Errorf("save lesson: %w", err)
	}

	s.logger.Info("Lesson booked",
		zap.String("lesson_id", lesson.ID.String()),
		zap.String("student", lesson.StudentName),
		zap.String("date", lesson.Date.Format("2006-01-02")),
		zap.String("time", lesson.Time.String()),
	)

	if candidate.RepeatWeekly {
		pattern := model.RecurringLessonPattern{
			ID:          uuid.New(),
			StudentName: lesson.StudentName,
			Weekday:     int(lesson.Date.Weekday()) + 1,
			Hour:        candidate.Time.Hour,
			Minute:      candidate.Time.Minute,
			Location:    candidate.Location,
			Notes:       candidate.Notes,
			Instrument:  candidate.Instrument,
			Grade:       candidate.Grade,
		}
		if err := s.patterns.Add(pattern); err != nil {
			s.logger.Warn("Failed to save weekly pattern for booked lesson", zap.Error(err))
		} else {
			created := s.expandPattern(pattern)
			s.logger.Info("Weekly pattern registered",
				zap.String("pattern_id", pattern.ID.String()),
				zap.Int("lessons_created", created),
			)
		}
	}

	return &lesson, nil
}

// RescheduleLesson moves a lesson to a new date and time, re-validating with
// the lesson's own slot excluded so moving within the same slot succeeds.
func (s *BookingService) RescheduleLesson(ctx context.Context, id uuid.UUID, newDate time.Time, newTime model.TimeOfDay) (*model.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lesson, ok := s.lessons.ByID(id)
	if !ok {
		return nil, fmt.Errorf("lesson %s: %w", id, ErrNotFound)
	}
	if !s.availability.IsSlotEnabled(newTime.String()) {
		return nil, fmt.Errorf("slot %s: %w", newTime, ErrSlotDisabled)
	}
	if !s.checker.IsTimeSlotAvailable(newDate, newTime, lesson.ID) {
		return nil, fmt.Errorf("%s at %s: %w", newDate.Format("2006-01-02"), newTime, ErrConflict)
	}

	lesson.Date = startOfDay(newDate)
	lesson.Time = newTime
	if _, err := s.lessons.Update(lesson); err != nil {
		return nil, fmt.Errorf("save lesson: %w", err)
	}

	s.logger.Info("Lesson rescheduled",
		zap.String("lesson_id", lesson.ID.String()),
		zap.String("date", lesson.Date.Format("2006-01-02")),
		zap.String("time", lesson.Time.String()),
	)
	return &lesson, nil
}

// UpdateLesson applies an edited lesson in place, re-running the same
// checks as booking with the lesson's own slot excluded.
func (s *BookingService) UpdateLesson(ctx context.Context, lesson model.Lesson) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if lesson.StudentName == "" {
		return fmt.Errorf("%w: student name is required", ErrValidation)
	}
	if !model.ValidLessonStatus(lesson.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, lesson.Status)
	}
	if lesson.Grade < 0 || lesson.Grade > 8 {
		return fmt.Errorf("%w: grade out of range", ErrValidation)
	}
	if _, ok := s.lessons.ByID(lesson.ID); !ok {
		return fmt.Errorf("lesson %s: %w", lesson.ID, ErrNotFound)
	}
	if !s.availability.IsSlotEnabled(lesson.Time.String()) {
		return fmt.Errorf("slot %s: %w", lesson.Time, ErrSlotDisabled)
	}
	if !s.checker.IsTimeSlotAvailable(lesson.Date, lesson.Time, lesson.ID) {
		return fmt.Errorf("%s at %s: %w", lesson.Date.Format("2006-01-02"), lesson.Time, ErrConflict)
	}

	lesson.Date = startOfDay(lesson.Date)
	if _, err := s.lessons.Update(lesson); err != nil {
		return fmt.Errorf("save lesson: %w", err)
	}
	return nil
}

// SetLessonStatus toggles attendance state. Cancelling releases the slot
// for rebooking; attended and no-show keep occupying it.
func (s *BookingService) SetLessonStatus(ctx context.Context, id uuid.UUID, status model.LessonStatus) (*model.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !model.ValidLessonStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	lesson, ok := s.lessons.ByID(id)
	if !ok {
		return nil, fmt.Errorf("lesson %s: %w", id, ErrNotFound)
	}
	lesson.Status = status
	if _, err := s.lessons.Update(lesson); err != nil {
		return nil, fmt.Errorf("save lesson: %w", err)
	}
	s.logger.Info("Lesson status changed",
		zap.String("lesson_id", id.String()),
		zap.String("status", string(status)),
	)
	return &lesson, nil
}

func (s *BookingService) SetFeePaid(ctx context.Context, id uuid.UUID, paid bool) (*model.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lesson, ok := s.lessons.ByID(id)
	if !ok {
		return nil, fmt.Errorf("lesson %s: %w", id, ErrNotFound)
	}
	lesson.FeePaid = paid
	if _, err := s.lessons.Update(lesson); err != nil {
		return nil, fmt.Errorf("save lesson: %w", err)
	}
	return &lesson, nil
}

func (s *BookingService) RemoveLesson(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found, err := s.lessons.Remove(id)
	if err != nil {
		return fmt.Errorf("remove lesson: %w", err)
	}
	if !found {
		return fmt.Errorf("lesson %s: %w", id, ErrNotFound)
	}
	s.logger.Info("Lesson removed", zap.String("lesson_id", id.String()))
	return nil
}

func (s *BookingService) Lesson(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	lesson, ok := s.lessons.ByID(id)
	if !ok {
		return nil, fmt.Errorf("lesson %s: %w", id, ErrNotFound)
	}
	return &lesson, nil
}

// LessonsOn returns the lessons of one calendar day ordered by start time.
func (s *BookingService) LessonsOn(ctx context.Context, day time.Time) []model.Lesson {
	start := startOfDay(day)
	lessons := s.lessons.LessonsBetween(start, start.AddDate(0, 0, 1))
	sort.Slice(lessons, func(i, j int) bool {
		return lessons[i].Time.MinuteOfDay() < lessons[j].Time.MinuteOfDay()
	})
	return lessons
}

func (s *BookingService) Lessons(ctx context.Context) []model.Lesson {
	lessons := s.lessons.All()
	sort.Slice(lessons, func(i, j int) bool {
		return lessons[i].StartTime().Before(lessons[j].StartTime())
	})
	return lessons
}

// LessonsBetween returns lessons starting in [from, to) ordered by start time.
func (s *BookingService) LessonsBetween(ctx context.Context, from, to time.Time) []model.Lesson {
	lessons := s.lessons.LessonsBetween(from, to)
	sort.Slice(lessons, func(i, j int) bool {
		return lessons[i].StartTime().Before(lessons[j].StartTime())
	})
	return lessons
}

// RegisterRecurringPattern persists a weekly pattern and projects it
// forward, returning the count of lessons the initial expansion created.
func (s *BookingService) RegisterRecurringPattern(ctx context.Context, input PatternInput) (*model.RecurringLessonPattern, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validate.Struct(input); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	pattern := model.RecurringLessonPattern{
		ID:          uuid.New(),
		StudentName: input.StudentName,
		Weekday:     input.Weekday,
		Hour:        input.Hour,
		Minute:      input.Minute,
		Location:    input.Location,
		Notes:       input.Notes,
		Instrument:  input.Instrument,
		Grade:       input.Grade,
	}
	if err := s.patterns.Add(pattern); err != nil {
		return nil, 0, fmt.Errorf("save pattern: %w", err)
	}

	created := s.expandPattern(pattern)
	s.logger.Info("Recurring pattern registered",
		zap.String("pattern_id", pattern.ID.String()),
		zap.String("student", pattern.StudentName),
		zap.Int("lessons_created", created),
	)
	return &pattern, created, nil
}

func (s *BookingService) Patterns(ctx context.Context) []model.RecurringLessonPattern {
	return s.patterns.All()
}

// RemovePattern deletes the pattern only; lessons it already generated stay.
func (s *BookingService) RemovePattern(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found, err := s.patterns.Remove(id)
	if err != nil {
		return fmt.Errorf("remove pattern: %w", err)
	}
	if !found {
		return fmt.Errorf("pattern %s: %w", id, ErrNotFound)
	}
	return nil
}

// RegisterTermPattern persists a term with its cycles and expands every
// cycle across the term's date range in one pass.
func (s *BookingService) RegisterTermPattern(ctx context.Context, input TermInput) (*model.AcademicTermData, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validate.Struct(input); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, 0, fmt.Errorf("%w: term ends before it starts", ErrValidation)
	}

	term := model.AcademicTermData{
		ID: uuid.New(),
		Term: model.AcademicTerm{
			SchoolName: input.SchoolName,
			StartDate:  startOfDay(input.StartDate),
			EndDate:    startOfDay(input.EndDate),
		},
		PatternCycles: input.PatternCycles,
	}
	if err := s.terms.Add(term); err != nil {
		return nil, 0, fmt.Errorf("save term: %w", err)
	}

	created := s.expandTerm(term)
	s.logger.Info("Term registered",
		zap.String("term_id", term.ID.String()),
		zap.String("school", term.Term.SchoolName),
		zap.Int("lessons_created", created),
	)
	return &term, created, nil
}

func (s *BookingService) Terms(ctx context.Context) []model.AcademicTermData {
	return s.terms.All()
}

// UpdateTerm replaces a term and re-expands its cycles. Expansion is keyed
// by (term id, day, time), so occurrences that survived the edit are not
// duplicated.
func (s *BookingService) UpdateTerm(ctx context.Context, term model.AcademicTermData) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if term.Term.SchoolName == "" {
		return 0, fmt.Errorf("%w: school name is required", ErrValidation)
	}
	if term.Term.EndDate.Before(term.Term.StartDate) {
		return 0, fmt.Errorf("%w: term ends before it starts", ErrValidation)
	}
	found, err := s.terms.Update(term)
	if err != nil {
		return 0, fmt.Errorf("save term: %w", err)
	}
	if !found {
		return 0, fmt.Errorf("term %s: %w", term.ID, ErrNotFound)
	}
	return s.expandTerm(term), nil
}

func (s *BookingService) RemoveTerm(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found, err := s.terms.Remove(id)
	if err != nil {
		return fmt.Errorf("remove term: %w", err)
	}
	if !found {
		return fmt.Errorf("term %s: %w", id, ErrNotFound)
	}
	return nil
}

// ExpandAll re-projects every recurring pattern and term cycle. It runs at
// startup and on the background schedule; expansion is idempotent, so
// re-running only fills in occurrences that do not exist yet.
func (s *BookingService) ExpandAll(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := 0
	for _, pattern := range s.patterns.All() {
		created += s.expandPattern(pattern)
	}
	for _, term := range s.terms.All() {
		created += s.expandTerm(term)
	}
	if created > 0 {
		s.logger.Info("Pattern expansion complete", zap.Int("lessons_created", created))
	}
	return created
}

// expandPattern materializes a weekly pattern's occurrences. Occupied slots
// are skipped, never overwritten, and one bad occurrence does not stop the
// rest. Caller holds s.mu.
func (s *BookingService) expandPattern(pattern model.RecurringLessonPattern) int {
	occurrences, err := s.expander.Occurrences(pattern)
	if err != nil {
		s.logger.Error("Failed to expand recurring pattern",
			zap.Error(err),
			zap.String("pattern_id", pattern.ID.String()),
		)
		return 0
	}

	var studentID uuid.UUID
	if student, ok := s.students.FindByName(pattern.StudentName); ok {
		studentID = student.ID
	}

	created := 0
	now := s.now()
	for _, occ := range occurrences {
		if occ.Before(now) {
			continue
		}
		created += s.materialize(occ, model.TimeOfDay{Hour: occ.Hour(), Minute: occ.Minute()}, pattern.ID, model.Lesson{
			StudentID:   studentID,
			StudentName: pattern.StudentName,
			Location:    pattern.Location,
			Notes:       pattern.Notes,
			Grade:       pattern.Grade,
		})
	}
	return created
}

// expandTerm materializes every cycle of a term. Term lessons carry the
// school name, since cycle entries describe teaching blocks at the school
// rather than a named student. Caller holds s.mu.
func (s *BookingService) expandTerm(term model.AcademicTermData) int {
	created := 0
	for _, cycle := range term.PatternCycles {
		for _, occ := range schedule.ExpandCycle(cycle, term.Term) {
			created += s.materialize(occ.Date, occ.Time, term.ID, model.Lesson{
				StudentName: term.Term.SchoolName,
				Location:    term.Term.SchoolName,
			})
		}
	}
	return created
}

// materialize writes one generated lesson unless it already exists or its
// slot is taken. Returns 1 when a lesson was created, 0 otherwise.
func (s *BookingService) materialize(day time.Time, at model.TimeOfDay, sourceID uuid.UUID, template model.Lesson) int {
	if s.lessons.ExistsForSource(sourceID, day, at) {
		return 0
	}
	if !s.checker.IsTimeSlotAvailable(day, at, uuid.Nil) {
		s.logger.Debug("Skipping generated lesson, slot taken",
			zap.String("date", day.Format("2006-01-02")),
			zap.String("time", at.String()),
		)
		return 0
	}

	lesson := template
	lesson.ID = uuid.New()
	lesson.Date = startOfDay(day)
	lesson.Time = at
	lesson.Status = model.LessonStatusScheduled
	lesson.SourceID = sourceID

	if err := s.lessons.Add(lesson); err != nil {
		s.logger.Warn("Failed to save generated lesson",
			zap.Error(err),
			zap.String("date", day.Format("2006-01-02")),
		)
		return 0
	}
	return 1
}

// resolveStudent finds the student by ID, then by name, and registers an
// implicit contact record when neither matches.
func (s *BookingService) resolveStudent(id uuid.UUID, name string) model.Student {
	if id != uuid.Nil {
		if student, ok := s.students.ByID(id); ok {
			return student
		}
	}
	if student, ok := s.students.FindByName(name); ok {
		return student
	}

	first, last := splitName(name)
	student := model.Student{ID: uuid.New(), FirstName: first, LastName: last}
	if err := s.students.Add(student); err != nil {
		s.logger.Warn("Failed to register implicit student", zap.Error(err), zap.String("name", name))
	} else {
		s.logger.Info("Student registered from booking", zap.String("name", student.FullName()))
	}
	return student
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
