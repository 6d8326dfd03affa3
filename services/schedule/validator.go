package schedule

import (
	"context"
	"fmt"

	"carebook/models"
	"carebook/utils"

	"go.uber.org/zap"
)

// ValidateTemplateWrite checks a candidate template against the consultant's
// other active templates. Ranges are compared with the half-open intersection
// predicate; an open-ended effectiveTo counts as covering every later date, so
// two open-ended templates always conflict.
func (s *DefaultScheduleService) ValidateTemplateWrite(ctx context.Context, candidate models.WeeklyTemplate) error {
	if err := candidate.Validate(); err != nil {
		return err
	}

	existing, err := s.Templates.ListActiveByConsultant(ctx, candidate.ConsultantID)
	if err != nil {
		return fmt.Errorf("failed to list active templates: %w", err)
	}
	for _, other := range existing {
		if other.ID == candidate.ID {
			continue
		}
		if candidate.RangeIntersects(other) {
			utils.GetLogger().Warn("Template effective range conflict",
				zap.String("consultantId", candidate.ConsultantID),
				zap.String("conflictingTemplateId", other.ID))
			return models.NewValidationError("effective_from",
				fmt.Sprintf("effective range overlaps active template %s", other.ID))
		}
	}
	return nil
}

// ValidateOverrideWrite checks a candidate override's own fields and rejects a
// second active override for the same consultant-date.
func (s *DefaultScheduleService) ValidateOverrideWrite(ctx context.Context, candidate models.Override) error {
	if err := candidate.Validate(); err != nil {
		return err
	}

	existing, err := s.Overrides.FindActiveByDate(ctx, candidate.ConsultantID, candidate.Date)
	if err != nil {
		return fmt.Errorf("failed to look up override for %s: %w", candidate.Date, err)
	}
	if existing != nil && existing.ID != candidate.ID {
		return models.NewConflictError("date",
			fmt.Sprintf("an active override already exists for %s", candidate.Date))
	}
	return nil
}
