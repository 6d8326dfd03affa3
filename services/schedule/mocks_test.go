package schedule

import (
	"context"

	"carebook/models"

	"github.com/stretchr/testify/mock"
)

// MockTemplateRepo is a mock implementation of TemplateRepository.
type MockTemplateRepo struct {
	mock.Mock
}

func (m *MockTemplateRepo) Create(ctx context.Context, tpl *models.WeeklyTemplate) error {
	args := m.Called(ctx, tpl)
	return args.Error(0)
}

func (m *MockTemplateRepo) Update(ctx context.Context, tpl *models.WeeklyTemplate) error {
	args := m.Called(ctx, tpl)
	return args.Error(0)
}

func (m *MockTemplateRepo) GetByID(ctx context.Context, id string) (*models.WeeklyTemplate, error) {
	args := m.Called(ctx, id)
	if tpl, ok := args.Get(0).(*models.WeeklyTemplate); ok {
		return tpl, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTemplateRepo) FindActiveCovering(ctx context.Context, consultantID, date string) (*models.WeeklyTemplate, error) {
	args := m.Called(ctx, consultantID, date)
	if tpl, ok := args.Get(0).(*models.WeeklyTemplate); ok {
		return tpl, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTemplateRepo) ListActiveByConsultant(ctx context.Context, consultantID string) ([]models.WeeklyTemplate, error) {
	args := m.Called(ctx, consultantID)
	if tpls, ok := args.Get(0).([]models.WeeklyTemplate); ok {
		return tpls, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTemplateRepo) Deactivate(ctx context.Context, id, effectiveTo string) error {
	args := m.Called(ctx, id, effectiveTo)
	return args.Error(0)
}

func (m *MockTemplateRepo) ExpireEnded(ctx context.Context, today string) (int64, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTemplateRepo) EnsureIndexes() error {
	args := m.Called()
	return args.Error(0)
}

// MockOverrideRepo is a mock implementation of OverrideRepository.
type MockOverrideRepo struct {
	mock.Mock
}

func (m *MockOverrideRepo) Create(ctx context.Context, ov *models.Override) error {
	args := m.Called(ctx, ov)
	return args.Error(0)
}

func (m *MockOverrideRepo) Update(ctx context.Context, ov *models.Override) error {
	args := m.Called(ctx, ov)
	return args.Error(0)
}

func (m *MockOverrideRepo) GetByID(ctx context.Context, id string) (*models.Override, error) {
	args := m.Called(ctx, id)
	if ov, ok := args.Get(0).(*models.Override); ok {
		return ov, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOverrideRepo) FindActiveByDate(ctx context.Context, consultantID, date string) (*models.Override, error) {
	args := m.Called(ctx, consultantID, date)
	if ov, ok := args.Get(0).(*models.Override); ok {
		return ov, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOverrideRepo) ListByConsultant(ctx context.Context, consultantID, from, to string) ([]models.Override, error) {
	args := m.Called(ctx, consultantID, from, to)
	if ovs, ok := args.Get(0).([]models.Override); ok {
		return ovs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOverrideRepo) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOverrideRepo) EnsureIndexes() error {
	args := m.Called()
	return args.Error(0)
}

// MockAppointmentRepo is a mock implementation of AppointmentRepository.
type MockAppointmentRepo struct {
	mock.Mock
}

func (m *MockAppointmentRepo) FindByConsultantAndDate(ctx context.Context, consultantID, date string) ([]models.Appointment, error) {
	args := m.Called(ctx, consultantID, date)
	if apts, ok := args.Get(0).([]models.Appointment); ok {
		return apts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAppointmentRepo) BookedIntervals(ctx context.Context, consultantID, date string) ([]models.Interval, error) {
	args := m.Called(ctx, consultantID, date)
	if ivs, ok := args.Get(0).([]models.Interval); ok {
		return ivs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAppointmentRepo) EnsureIndexes() error {
	args := m.Called()
	return args.Error(0)
}

// noopLocker satisfies Locker without Redis.
type noopLocker struct{}

func (noopLocker) Acquire(ctx context.Context, consultantID string) (func(), error) {
	return func() {}, nil
}

func newTestService(tpl *MockTemplateRepo, ov *MockOverrideRepo, apt *MockAppointmentRepo) *DefaultScheduleService {
	return &DefaultScheduleService{
		Templates:    tpl,
		Overrides:    ov,
		Appointments: apt,
		Locks:        noopLocker{},
	}
}
