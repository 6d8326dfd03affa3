package schedule

import (
	"context"
	"fmt"
	"time"

	"carebook/models"
	"carebook/utils"

	"go.uber.org/zap"
)

// withConsultantLock runs fn while holding the per-consultant write lock, so
// the validation read and the subsequent write see a consistent store.
func (s *DefaultScheduleService) withConsultantLock(ctx context.Context, consultantID string, fn func() error) error {
	release, err := s.Locks.Acquire(ctx, consultantID)
	if err != nil {
		return fmt.Errorf("failed to acquire schedule lock for consultant %s: %w", consultantID, err)
	}
	defer release()
	return fn()
}

// CreateTemplate validates and stores a new weekly template for a consultant.
func (s *DefaultScheduleService) CreateTemplate(ctx context.Context, tpl *models.WeeklyTemplate) (*models.WeeklyTemplate, error) {
	if tpl.DefaultSlotDuration == 0 {
		tpl.DefaultSlotDuration = s.defaultSlotDuration()
	}
	tpl.IsActive = true

	err := s.withConsultantLock(ctx, tpl.ConsultantID, func() error {
		if err := s.ValidateTemplateWrite(ctx, *tpl); err != nil {
			return err
		}
		return s.Templates.Create(ctx, tpl)
	})
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Weekly template created",
		zap.String("templateId", tpl.ID),
		zap.String("consultantId", tpl.ConsultantID))
	return tpl, nil
}

// UpdateTemplate replaces a template's mutable fields. Creation metadata and
// the owning consultant survive the update.
func (s *DefaultScheduleService) UpdateTemplate(ctx context.Context, tpl *models.WeeklyTemplate) (*models.WeeklyTemplate, error) {
	existing, err := s.Templates.GetByID(ctx, tpl.ID)
	if err != nil {
		return nil, err
	}

	tpl.ConsultantID = existing.ConsultantID
	tpl.CreatedBy = existing.CreatedBy
	tpl.CreatedAt = existing.CreatedAt
	tpl.IsActive = existing.IsActive
	if tpl.DefaultSlotDuration == 0 {
		tpl.DefaultSlotDuration = existing.DefaultSlotDuration
	}

	err = s.withConsultantLock(ctx, tpl.ConsultantID, func() error {
		if err := s.ValidateTemplateWrite(ctx, *tpl); err != nil {
			return err
		}
		return s.Templates.Update(ctx, tpl)
	})
	if err != nil {
		return nil, err
	}
	return tpl, nil
}

// DeactivateTemplate soft-deletes a template, closing its effective range at
// today so historical resolutions remain reproducible.
func (s *DefaultScheduleService) DeactivateTemplate(ctx context.Context, id string) error {
	existing, err := s.Templates.GetByID(ctx, id)
	if err != nil {
		return err
	}
	today := models.FormatDate(time.Now())
	return s.withConsultantLock(ctx, existing.ConsultantID, func() error {
		return s.Templates.Deactivate(ctx, id, today)
	})
}

// CloneTemplate copies an existing template's working days and slot duration
// into a new template over a fresh effective range. The clone is validated
// like any other write, so it cannot overlap its own source.
func (s *DefaultScheduleService) CloneTemplate(ctx context.Context, sourceID, effectiveFrom, effectiveTo string, createdBy models.CreatedBy) (*models.WeeklyTemplate, error) {
	source, err := s.Templates.GetByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}

	clone := &models.WeeklyTemplate{
		ConsultantID:        source.ConsultantID,
		EffectiveFrom:       effectiveFrom,
		EffectiveTo:         effectiveTo,
		WorkingDays:         source.WorkingDays,
		DefaultSlotDuration: source.DefaultSlotDuration,
		IsActive:            true,
		CreatedBy:           createdBy,
		Notes:               fmt.Sprintf("Copied from schedule effective %s", source.EffectiveFrom),
	}

	err = s.withConsultantLock(ctx, clone.ConsultantID, func() error {
		if err := s.ValidateTemplateWrite(ctx, *clone); err != nil {
			return err
		}
		return s.Templates.Create(ctx, clone)
	})
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Weekly template cloned",
		zap.String("sourceId", sourceID),
		zap.String("templateId", clone.ID))
	return clone, nil
}

// ListTemplates returns the consultant's active templates ordered by
// effective-from.
func (s *DefaultScheduleService) ListTemplates(ctx context.Context, consultantID string) ([]models.WeeklyTemplate, error) {
	return s.Templates.ListActiveByConsultant(ctx, consultantID)
}

// CreateOverride validates and stores a date-specific override.
func (s *DefaultScheduleService) CreateOverride(ctx context.Context, ov *models.Override) (*models.Override, error) {
	ov.IsActive = true

	err := s.withConsultantLock(ctx, ov.ConsultantID, func() error {
		if err := s.ValidateOverrideWrite(ctx, *ov); err != nil {
			return err
		}
		return s.Overrides.Create(ctx, ov)
	})
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Schedule override created",
		zap.String("overrideId", ov.ID),
		zap.String("consultantId", ov.ConsultantID),
		zap.String("date", ov.Date))
	return ov, nil
}

// UpdateOverride replaces an override's mutable fields in place.
func (s *DefaultScheduleService) UpdateOverride(ctx context.Context, ov *models.Override) (*models.Override, error) {
	existing, err := s.Overrides.GetByID(ctx, ov.ID)
	if err != nil {
		return nil, err
	}

	ov.ConsultantID = existing.ConsultantID
	ov.CreatedBy = existing.CreatedBy
	ov.CreatedAt = existing.CreatedAt
	ov.IsActive = existing.IsActive

	err = s.withConsultantLock(ctx, ov.ConsultantID, func() error {
		if err := s.ValidateOverrideWrite(ctx, *ov); err != nil {
			return err
		}
		return s.Overrides.Update(ctx, ov)
	})
	if err != nil {
		return nil, err
	}
	return ov, nil
}

// DeleteOverride soft-deletes an override so the template resumes for that
// date. The record stays behind for auditing.
func (s *DefaultScheduleService) DeleteOverride(ctx context.Context, id string) error {
	existing, err := s.Overrides.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.withConsultantLock(ctx, existing.ConsultantID, func() error {
		return s.Overrides.SoftDelete(ctx, id)
	})
}

// ListOverrides returns the consultant's overrides within [from, to],
// inclusive on both ends. Empty bounds leave that side open.
func (s *DefaultScheduleService) ListOverrides(ctx context.Context, consultantID, from, to string) ([]models.Override, error) {
	return s.Overrides.ListByConsultant(ctx, consultantID, from, to)
}
