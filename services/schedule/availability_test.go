package schedule

import (
	"context"
	"testing"

	"carebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDaySlots_BookedFlagging(t *testing.T) {
	tplRepo := &MockTemplateRepo{}
	ovRepo := &MockOverrideRepo{}
	aptRepo := &MockAppointmentRepo{}
	svc := newTestService(tplRepo, ovRepo, aptRepo)

	ovRepo.On("FindActiveByDate", mock.Anything, "consultant-1", "2026-09-14").Return(nil, nil)
	tplRepo.On("FindActiveCovering", mock.Anything, "consultant-1", "2026-09-14").Return(templateFixture(), nil)
	aptRepo.On("BookedIntervals", mock.Anything, "consultant-1", "2026-09-14").
		Return([]models.Interval{{Start: 615, End: 645}}, nil)

	slots, err := svc.DaySlots(context.Background(), "consultant-1", "2026-09-14", 0)
	assert.NoError(t, err)
	assert.NotEmpty(t, slots)

	// The 10:15-10:45 booking flags [10:00,10:30) and [10:30,11:00).
	byStart := map[string]models.TimeSlot{}
	for _, s := range slots {
		byStart[s.StartTime.String()] = s
	}
	assert.False(t, byStart["10:00"].IsAvailable)
	assert.False(t, byStart["10:30"].IsAvailable)
	assert.True(t, byStart["09:00"].IsAvailable)
	assert.True(t, byStart["11:00"].IsAvailable)
}

func TestDayAvailability_Counts(t *testing.T) {
	tplRepo := &MockTemplateRepo{}
	ovRepo := &MockOverrideRepo{}
	aptRepo := &MockAppointmentRepo{}
	svc := newTestService(tplRepo, ovRepo, aptRepo)

	ovRepo.On("FindActiveByDate", mock.Anything, "consultant-1", "2026-09-14").Return(nil, nil)
	tplRepo.On("FindActiveCovering", mock.Anything, "consultant-1", "2026-09-14").Return(templateFixture(), nil)
	aptRepo.On("FindByConsultantAndDate", mock.Anything, "consultant-1", "2026-09-14").
		Return([]models.Appointment{
			{
				ID:           "apt-1",
				ConsultantID: "consultant-1",
				Date:         "2026-09-14",
				StartTime:    tod(9, 0),
				EndTime:      tod(9, 30),
				Status:       models.AppointmentConfirmed,
			},
		}, nil)

	day, err := svc.DayAvailability(context.Background(), "consultant-1", "2026-09-14", 0)
	assert.NoError(t, err)
	assert.True(t, day.IsWorkingDay)
	assert.Equal(t, models.Monday, day.DayOfWeek)
	// 09:00-17:00 minus the 12:00-13:00 break at 30 minutes: 14 slots.
	assert.Equal(t, 14, day.TotalSlots)
	assert.Equal(t, 13, day.AvailableSlots)
	assert.Len(t, day.Booked, 1)
	assert.Equal(t, "apt-1", day.Booked[0].AppointmentID)
}

func TestDayAvailability_NonWorkingDayEmptySlots(t *testing.T) {
	tplRepo := &MockTemplateRepo{}
	ovRepo := &MockOverrideRepo{}
	aptRepo := &MockAppointmentRepo{}
	svc := newTestService(tplRepo, ovRepo, aptRepo)

	ovRepo.On("FindActiveByDate", mock.Anything, "consultant-1", "2026-09-13").Return(nil, nil)
	tplRepo.On("FindActiveCovering", mock.Anything, "consultant-1", "2026-09-13").Return(nil, nil)
	aptRepo.On("FindByConsultantAndDate", mock.Anything, "consultant-1", "2026-09-13").
		Return([]models.Appointment{}, nil)

	day, err := svc.DayAvailability(context.Background(), "consultant-1", "2026-09-13", 0)
	assert.NoError(t, err)
	assert.False(t, day.IsWorkingDay)
	assert.Equal(t, models.SourceNone, day.Source)
	assert.Empty(t, day.Slots)
	assert.Equal(t, 0, day.TotalSlots)
}

func TestWeekAvailability_Summary(t *testing.T) {
	tplRepo := &MockTemplateRepo{}
	ovRepo := &MockOverrideRepo{}
	aptRepo := &MockAppointmentRepo{}
	svc := newTestService(tplRepo, ovRepo, aptRepo)

	tpl := templateFixture()
	ovRepo.On("FindActiveByDate", mock.Anything, "consultant-1", mock.AnythingOfType("string")).Return(nil, nil)
	tplRepo.On("FindActiveCovering", mock.Anything, "consultant-1", mock.AnythingOfType("string")).Return(tpl, nil)
	aptRepo.On("FindByConsultantAndDate", mock.Anything, "consultant-1", mock.AnythingOfType("string")).
		Return([]models.Appointment{}, nil)

	// Week of Monday 2026-09-14; only Monday is configured as working.
	week, err := svc.WeekAvailability(context.Background(), "consultant-1", "2026-09-14")
	assert.NoError(t, err)
	assert.Len(t, week.Days, 7)
	assert.Equal(t, "2026-09-20", week.WeekEnd)
	assert.Equal(t, 1, week.Summary.TotalWorkingDays)
	assert.Equal(t, 14, week.Summary.TotalAvailableSlots)
	assert.Equal(t, 0, week.Summary.TotalBookedSlots)
	assert.Equal(t, "2026-09-14", week.Days[0].Date)
	assert.Equal(t, models.Monday, week.Days[0].DayOfWeek)
}
