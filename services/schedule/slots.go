package schedule

import (
	"carebook/models"
)

// GenerateSlots expands a resolved day into consecutive slots of exactly
// slotDuration minutes. The break window is removed first, then each free run
// is cut chronologically; a trailing partial slot is discarded. Slots that
// overlap a booked interval are kept but flagged unavailable so callers can
// render busy slots distinctly from free ones.
func GenerateSlots(resolved models.ResolvedDaySchedule, slotDuration int, booked []models.Interval) ([]models.TimeSlot, error) {
	if slotDuration <= 0 {
		return nil, models.NewValidationError("slot_duration", "slot duration must be a positive number of minutes")
	}
	if !resolved.IsWorkingDay || resolved.WorkingInterval == nil {
		return []models.TimeSlot{}, nil
	}

	holes := make([]models.Interval, 0, 1)
	if br, ok := resolved.WorkingInterval.BreakInterval(); ok {
		holes = append(holes, br)
	}
	free := models.SubtractIntervals(resolved.WorkingInterval.Interval(), holes)

	slots := []models.TimeSlot{}
	for _, seg := range free {
		for start := seg.Start; start+slotDuration <= seg.End; start += slotDuration {
			window := models.Interval{Start: start, End: start + slotDuration}
			slot := models.TimeSlot{
				StartTime:   models.TimeOfDayFromMinutes(window.Start),
				EndTime:     models.TimeOfDayFromMinutes(window.End),
				IsAvailable: true,
			}
			for _, b := range booked {
				if window.Overlaps(b) {
					slot.IsAvailable = false
					break
				}
			}
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

// CountAvailable returns how many slots in the sequence are still bookable.
func CountAvailable(slots []models.TimeSlot) int {
	n := 0
	for _, s := range slots {
		if s.IsAvailable {
			n++
		}
	}
	return n
}
