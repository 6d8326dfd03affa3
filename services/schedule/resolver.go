package schedule

import (
	"context"

	"carebook/models"
)

// ResolveDay merges the override store, the template store and the weekday
// mapping into the authoritative working-hours definition for one date.
// Overrides always win: they are explicit human intervention for a specific
// date and must not be silently reverted by the recurring template. A day with
// neither override nor template is a valid non-working day, not an error.
func (s *DefaultScheduleService) ResolveDay(ctx context.Context, consultantID, date string) (models.ResolvedDaySchedule, error) {
	parsed, err := models.ParseDate(date)
	if err != nil {
		return models.ResolvedDaySchedule{}, err
	}

	resolved := models.ResolvedDaySchedule{Date: date, Source: models.SourceNone}

	ov, err := s.Overrides.FindActiveByDate(ctx, consultantID, date)
	if err != nil {
		return models.ResolvedDaySchedule{}, err
	}

	tpl, err := s.Templates.FindActiveCovering(ctx, consultantID, date)
	if err != nil {
		return models.ResolvedDaySchedule{}, err
	}

	resolved.SlotDuration = s.defaultSlotDuration()
	if tpl != nil {
		resolved.SlotDuration = tpl.DefaultSlotDuration
	}

	if ov != nil {
		resolved.Source = models.SourceOverride
		if ov.WorkingInterval.IsAvailable {
			wi := ov.WorkingInterval
			resolved.IsWorkingDay = true
			resolved.WorkingInterval = &wi
		}
		return resolved, nil
	}

	if tpl == nil {
		return resolved, nil
	}

	resolved.Source = models.SourceTemplate
	wi := tpl.WorkingDays.Day(models.WeekdayOf(parsed))
	if wi == nil || !wi.IsAvailable {
		return resolved, nil
	}
	cp := *wi
	resolved.IsWorkingDay = true
	resolved.WorkingInterval = &cp
	return resolved, nil
}
