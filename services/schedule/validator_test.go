package schedule

import (
	"context"
	"testing"

	"carebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func candidateTemplate() models.WeeklyTemplate {
	return models.WeeklyTemplate{
		ID:            "tpl-new",
		ConsultantID:  "consultant-1",
		EffectiveFrom: "2026-10-01",
		EffectiveTo:   "2026-12-01",
		WorkingDays: models.WorkingDays{
			Monday: &models.WorkingInterval{
				Start:       tod(9, 0),
				End:         tod(17, 0),
				IsAvailable: true,
			},
		},
		DefaultSlotDuration: 30,
	}
}

func TestValidateTemplateWrite_NoConflict(t *testing.T) {
	tplRepo := &MockTemplateRepo{}
	svc := newTestService(tplRepo, &MockOverrideRepo{}, &MockAppointmentRepo{})

	existing := []models.WeeklyTemplate{
		{ID: "tpl-old", ConsultantID: "consultant-1", EffectiveFrom: "2026-01-01", EffectiveTo: "2026-10-01"},
	}
	tplRepo.On("ListActiveByConsultant", mock.Anything, "consultant-1").Return(existing, nil)

	assert.NoError(t, svc.ValidateTemplateWrite(context.Background(), candidateTemplate()))
}

func TestValidateTemplateWrite_RangeOverlapRejected(t *testing.T) {
	tplRepo := &MockTemplateRepo{}
	svc := newTestService(tplRepo, &MockOverrideRepo{}, &MockAppointmentRepo{})

	existing := []models.WeeklyTemplate{
		{ID: "tpl-old", ConsultantID: "consultant-1", EffectiveFrom: "2026-01-01", EffectiveTo: "2026-10-02"},
	}
	tplRepo.On("ListActiveByConsultant", mock.Anything, "consultant-1").Return(existing, nil)

	err := svc.ValidateTemplateWrite(context.Background(), candidateTemplate())
	assert.True(t, models.IsKind(err, models.ErrKindValidation))
}

func TestValidateTemplateWrite_OpenEndedConflicts(t *testing.T) {
	tplRepo := &MockTemplateRepo{}
	svc := newTestService(tplRepo, &MockOverrideRepo{}, &MockAppointmentRepo{})

	existing := []models.WeeklyTemplate{
		{ID: "tpl-old", ConsultantID: "consultant-1", EffectiveFrom: "2026-01-01"},
	}
	tplRepo.On("ListActiveByConsultant", mock.Anything, "consultant-1").Return(existing, nil)

	err := svc.ValidateTemplateWrite(context.Background(), candidateTemplate())
	assert.True(t, models.IsKind(err, models.ErrKindValidation),
		"open-ended existing range covers the candidate's start")
}

func TestValidateTemplateWrite_SelfExcluded(t *testing.T) {
	tplRepo := &MockTemplateRepo{}
	svc := newTestService(tplRepo, &MockOverrideRepo{}, &MockAppointmentRepo{})

	candidate := candidateTemplate()
	existing := []models.WeeklyTemplate{
		{ID: candidate.ID, ConsultantID: "consultant-1", EffectiveFrom: "2026-10-01", EffectiveTo: "2026-12-01"},
	}
	tplRepo.On("ListActiveByConsultant", mock.Anything, "consultant-1").Return(existing, nil)

	assert.NoError(t, svc.ValidateTemplateWrite(context.Background(), candidate),
		"a template never conflicts with its own stored row")
}

func TestValidateTemplateWrite_InvalidCandidateFailsFirst(t *testing.T) {
	svc := newTestService(&MockTemplateRepo{}, &MockOverrideRepo{}, &MockAppointmentRepo{})

	candidate := candidateTemplate()
	candidate.DefaultSlotDuration = 5
	err := svc.ValidateTemplateWrite(context.Background(), candidate)
	assert.True(t, models.IsKind(err, models.ErrKindValidation))
}

func TestValidateOverrideWrite_DuplicateDateRejected(t *testing.T) {
	ovRepo := &MockOverrideRepo{}
	svc := newTestService(&MockTemplateRepo{}, ovRepo, &MockAppointmentRepo{})

	candidate := models.Override{
		ID:           "ov-new",
		ConsultantID: "consultant-1",
		Date:         "2026-09-15",
		WorkingInterval: models.WorkingInterval{
			Start:       tod(10, 0),
			End:         tod(14, 0),
			IsAvailable: true,
		},
	}
	existing := &models.Override{ID: "ov-old", ConsultantID: "consultant-1", Date: "2026-09-15", IsActive: true}
	ovRepo.On("FindActiveByDate", mock.Anything, "consultant-1", "2026-09-15").Return(existing, nil)

	err := svc.ValidateOverrideWrite(context.Background(), candidate)
	assert.True(t, models.IsKind(err, models.ErrKindConflict))
}

func TestValidateOverrideWrite_UpdatingSameOverride(t *testing.T) {
	ovRepo := &MockOverrideRepo{}
	svc := newTestService(&MockTemplateRepo{}, ovRepo, &MockAppointmentRepo{})

	candidate := models.Override{
		ID:           "ov-1",
		ConsultantID: "consultant-1",
		Date:         "2026-09-15",
		WorkingInterval: models.WorkingInterval{
			Start:       tod(10, 0),
			End:         tod(14, 0),
			IsAvailable: true,
		},
	}
	existing := &models.Override{ID: "ov-1", ConsultantID: "consultant-1", Date: "2026-09-15", IsActive: true}
	ovRepo.On("FindActiveByDate", mock.Anything, "consultant-1", "2026-09-15").Return(existing, nil)

	assert.NoError(t, svc.ValidateOverrideWrite(context.Background(), candidate))
}

func TestValidateOverrideWrite_FreshDate(t *testing.T) {
	ovRepo := &MockOverrideRepo{}
	svc := newTestService(&MockTemplateRepo{}, ovRepo, &MockAppointmentRepo{})

	candidate := models.Override{
		ConsultantID:    "consultant-1",
		Date:            "2026-09-16",
		WorkingInterval: models.WorkingInterval{IsAvailable: false},
	}
	ovRepo.On("FindActiveByDate", mock.Anything, "consultant-1", "2026-09-16").Return(nil, nil)

	assert.NoError(t, svc.ValidateOverrideWrite(context.Background(), candidate))
}
