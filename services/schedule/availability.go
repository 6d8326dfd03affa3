package schedule

import (
	"context"
	"fmt"

	"carebook/models"
)

// DaySlots resolves a day and expands it into slots. slotDuration <= 0 falls
// back to the resolved duration (the covering template's, or the service
// default). Calling this twice over unchanged stores returns identical slots.
func (s *DefaultScheduleService) DaySlots(ctx context.Context, consultantID, date string, slotDuration int) ([]models.TimeSlot, error) {
	resolved, err := s.ResolveDay(ctx, consultantID, date)
	if err != nil {
		return nil, err
	}
	if slotDuration <= 0 {
		slotDuration = resolved.SlotDuration
	}

	booked, err := s.Appointments.BookedIntervals(ctx, consultantID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked intervals: %w", err)
	}
	return GenerateSlots(resolved, slotDuration, booked)
}

// DayAvailability builds the full availability picture for one consultant-date:
// resolved working hours, the slot sequence with booked slots flagged, and the
// appointments occupying them.
func (s *DefaultScheduleService) DayAvailability(ctx context.Context, consultantID, date string, slotDuration int) (*models.DayAvailability, error) {
	resolved, err := s.ResolveDay(ctx, consultantID, date)
	if err != nil {
		return nil, err
	}
	if slotDuration <= 0 {
		slotDuration = resolved.SlotDuration
	}

	parsed, err := models.ParseDate(date)
	if err != nil {
		return nil, err
	}

	appointments, err := s.Appointments.FindByConsultantAndDate(ctx, consultantID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	booked := make([]models.Interval, 0, len(appointments))
	bookedSummaries := make([]models.BookedAppointment, 0, len(appointments))
	for _, apt := range appointments {
		booked = append(booked, apt.Interval())
		bookedSummaries = append(bookedSummaries, models.BookedAppointment{
			AppointmentID: apt.ID,
			StartTime:     apt.StartTime,
			EndTime:       apt.EndTime,
			Status:        apt.Status,
		})
	}

	slots, err := GenerateSlots(resolved, slotDuration, booked)
	if err != nil {
		return nil, err
	}

	return &models.DayAvailability{
		ConsultantID:   consultantID,
		Date:           date,
		DayOfWeek:      models.WeekdayOf(parsed),
		IsWorkingDay:   resolved.IsWorkingDay,
		Source:         resolved.Source,
		WorkingHours:   resolved.WorkingInterval,
		Slots:          slots,
		TotalSlots:     len(slots),
		AvailableSlots: CountAvailable(slots),
		Booked:         bookedSummaries,
	}, nil
}

// WeekAvailability aggregates seven consecutive days starting at weekStart.
func (s *DefaultScheduleService) WeekAvailability(ctx context.Context, consultantID, weekStart string) (*models.WeekAvailability, error) {
	start, err := models.ParseDate(weekStart)
	if err != nil {
		return nil, err
	}

	week := &models.WeekAvailability{
		ConsultantID: consultantID,
		WeekStart:    weekStart,
		WeekEnd:      models.FormatDate(start.AddDate(0, 0, 6)),
		Days:         make([]models.DayAvailability, 0, 7),
	}

	for i := 0; i < 7; i++ {
		date := models.FormatDate(start.AddDate(0, 0, i))
		day, err := s.DayAvailability(ctx, consultantID, date, 0)
		if err != nil {
			return nil, err
		}
		week.Days = append(week.Days, *day)
		if day.IsWorkingDay {
			week.Summary.TotalWorkingDays++
		}
		week.Summary.TotalAvailableSlots += day.AvailableSlots
		week.Summary.TotalBookedSlots += day.TotalSlots - day.AvailableSlots
	}
	return week, nil
}
