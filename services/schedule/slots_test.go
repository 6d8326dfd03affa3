package schedule

import (
	"testing"

	"carebook/models"

	"github.com/stretchr/testify/assert"
)

func tod(h, m int) models.TimeOfDay {
	return models.TimeOfDay{Hour: h, Minute: m}
}

func todPtr(h, m int) *models.TimeOfDay {
	t := tod(h, m)
	return &t
}

func workingDayResolved(wi models.WorkingInterval) models.ResolvedDaySchedule {
	return models.ResolvedDaySchedule{
		Date:            "2026-09-14",
		IsWorkingDay:    true,
		WorkingInterval: &wi,
		SlotDuration:    30,
		Source:          models.SourceTemplate,
	}
}

func TestGenerateSlots_SlotCount(t *testing.T) {
	// 09:00-17:00 at 30 minutes: floor(480/30) = 16 slots.
	resolved := workingDayResolved(models.WorkingInterval{
		Start:       tod(9, 0),
		End:         tod(17, 0),
		IsAvailable: true,
	})

	slots, err := GenerateSlots(resolved, 30, nil)
	assert.NoError(t, err)
	assert.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0].StartTime.String())
	assert.Equal(t, "09:30", slots[0].EndTime.String())
	assert.Equal(t, "16:30", slots[15].StartTime.String())
	assert.Equal(t, "17:00", slots[15].EndTime.String())
}

func TestGenerateSlots_TrailingPartialDiscarded(t *testing.T) {
	// 09:00-10:50 at 30 minutes: the 10:30-10:50 remainder is not a slot.
	resolved := workingDayResolved(models.WorkingInterval{
		Start:       tod(9, 0),
		End:         tod(10, 50),
		IsAvailable: true,
	})

	slots, err := GenerateSlots(resolved, 30, nil)
	assert.NoError(t, err)
	assert.Len(t, slots, 3)
	assert.Equal(t, "10:30", slots[2].EndTime.String())
}

func TestGenerateSlots_BreakExclusion(t *testing.T) {
	// 08:00-12:00 with a 10:00-10:15 break at 30 minutes: four slots before
	// the break, then 10:15, 10:45, 11:15; the 11:45-12:15 slot would run past
	// the end of the day. Seven slots total.
	resolved := workingDayResolved(models.WorkingInterval{
		Start:       tod(8, 0),
		End:         tod(12, 0),
		BreakStart:  todPtr(10, 0),
		BreakEnd:    todPtr(10, 15),
		IsAvailable: true,
	})

	slots, err := GenerateSlots(resolved, 30, nil)
	assert.NoError(t, err)
	assert.Len(t, slots, 7)

	starts := make([]string, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.StartTime.String())
	}
	assert.Equal(t, []string{"08:00", "08:30", "09:00", "09:30", "10:15", "10:45", "11:15"}, starts)

	for _, s := range slots {
		assert.True(t, s.IsAvailable)
	}
}

func TestGenerateSlots_BookedSlotsFlaggedNotDropped(t *testing.T) {
	resolved := workingDayResolved(models.WorkingInterval{
		Start:       tod(10, 0),
		End:         tod(12, 0),
		IsAvailable: true,
	})

	// A 10:15-10:45 appointment straddles the first two slots.
	booked := []models.Interval{{Start: 615, End: 645}}

	slots, err := GenerateSlots(resolved, 30, booked)
	assert.NoError(t, err)
	assert.Len(t, slots, 4)

	assert.False(t, slots[0].IsAvailable, "[10:00,10:30) overlaps the booking")
	assert.False(t, slots[1].IsAvailable, "[10:30,11:00) overlaps the booking")
	assert.True(t, slots[2].IsAvailable)
	assert.True(t, slots[3].IsAvailable)
	assert.Equal(t, 2, CountAvailable(slots))
}

func TestGenerateSlots_TouchingBookingDoesNotFlag(t *testing.T) {
	resolved := workingDayResolved(models.WorkingInterval{
		Start:       tod(10, 0),
		End:         tod(11, 0),
		IsAvailable: true,
	})

	// Appointment ends exactly when the first slot starts.
	booked := []models.Interval{{Start: 570, End: 600}}

	slots, err := GenerateSlots(resolved, 30, booked)
	assert.NoError(t, err)
	assert.Len(t, slots, 2)
	assert.True(t, slots[0].IsAvailable)
	assert.True(t, slots[1].IsAvailable)
}

func TestGenerateSlots_NonWorkingDay(t *testing.T) {
	resolved := models.ResolvedDaySchedule{
		Date:   "2026-09-14",
		Source: models.SourceNone,
	}

	slots, err := GenerateSlots(resolved, 30, nil)
	assert.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_InvalidDuration(t *testing.T) {
	resolved := workingDayResolved(models.WorkingInterval{
		Start:       tod(9, 0),
		End:         tod(17, 0),
		IsAvailable: true,
	})

	_, err := GenerateSlots(resolved, 0, nil)
	assert.True(t, models.IsKind(err, models.ErrKindValidation))

	_, err = GenerateSlots(resolved, -15, nil)
	assert.True(t, models.IsKind(err, models.ErrKindValidation))
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	resolved := workingDayResolved(models.WorkingInterval{
		Start:       tod(8, 0),
		End:         tod(12, 0),
		BreakStart:  todPtr(10, 0),
		BreakEnd:    todPtr(10, 15),
		IsAvailable: true,
	})
	booked := []models.Interval{{Start: 510, End: 540}}

	first, err := GenerateSlots(resolved, 30, booked)
	assert.NoError(t, err)
	second, err := GenerateSlots(resolved, 30, booked)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
