package schedule

import (
	"context"

	appointmentRepo "carebook/database/repository/appointment"
	overrideRepo "carebook/database/repository/override"
	templateRepo "carebook/database/repository/template"
	"carebook/models"
	"carebook/utils"
)

// ScheduleService is the scheduling core: template and override management,
// day resolution and slot generation. Reads are pure given the stored state;
// writes serialize per consultant.
type ScheduleService interface {
	ResolveDay(ctx context.Context, consultantID, date string) (models.ResolvedDaySchedule, error)
	DaySlots(ctx context.Context, consultantID, date string, slotDuration int) ([]models.TimeSlot, error)
	DayAvailability(ctx context.Context, consultantID, date string, slotDuration int) (*models.DayAvailability, error)
	WeekAvailability(ctx context.Context, consultantID, weekStart string) (*models.WeekAvailability, error)

	CreateTemplate(ctx context.Context, tpl *models.WeeklyTemplate) (*models.WeeklyTemplate, error)
	UpdateTemplate(ctx context.Context, tpl *models.WeeklyTemplate) (*models.WeeklyTemplate, error)
	DeactivateTemplate(ctx context.Context, id string) error
	CloneTemplate(ctx context.Context, sourceID, effectiveFrom, effectiveTo string, createdBy models.CreatedBy) (*models.WeeklyTemplate, error)
	ListTemplates(ctx context.Context, consultantID string) ([]models.WeeklyTemplate, error)

	CreateOverride(ctx context.Context, ov *models.Override) (*models.Override, error)
	UpdateOverride(ctx context.Context, ov *models.Override) (*models.Override, error)
	DeleteOverride(ctx context.Context, id string) error
	ListOverrides(ctx context.Context, consultantID, from, to string) ([]models.Override, error)

	ValidateTemplateWrite(ctx context.Context, candidate models.WeeklyTemplate) error
	ValidateOverrideWrite(ctx context.Context, candidate models.Override) error
}

// Locker serializes schedule writes per consultant. utils.ConsultantLock is
// the Redis-backed production implementation.
type Locker interface {
	Acquire(ctx context.Context, consultantID string) (func(), error)
}

// DefaultScheduleService implements ScheduleService.
type DefaultScheduleService struct {
	Templates           templateRepo.TemplateRepository
	Overrides           overrideRepo.OverrideRepository
	Appointments        appointmentRepo.AppointmentRepository
	Locks               Locker
	DefaultSlotDuration int
}

var _ Locker = (*utils.ConsultantLock)(nil)

func (s *DefaultScheduleService) defaultSlotDuration() int {
	if s.DefaultSlotDuration > 0 {
		return s.DefaultSlotDuration
	}
	return models.DefaultSlotDuration
}
