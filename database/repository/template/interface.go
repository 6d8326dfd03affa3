// File: database/repository/template/interface.go
package templateRepo

import (
	"context"

	"carebook/database"
	"carebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TemplateRepository persists weekly templates. "Active" means isActive=true
// and, for date lookups, effectiveFrom <= date < effectiveTo (open-ended
// effectiveTo covers every later date).
type TemplateRepository interface {
	Create(ctx context.Context, tpl *models.WeeklyTemplate) error
	Update(ctx context.Context, tpl *models.WeeklyTemplate) error
	GetByID(ctx context.Context, id string) (*models.WeeklyTemplate, error)
	FindActiveCovering(ctx context.Context, consultantID, date string) (*models.WeeklyTemplate, error)
	ListActiveByConsultant(ctx context.Context, consultantID string) ([]models.WeeklyTemplate, error)
	Deactivate(ctx context.Context, id, effectiveTo string) error
	ExpireEnded(ctx context.Context, today string) (int64, error)
	EnsureIndexes() error
}

type mongoTemplateRepo struct {
	coll *mongo.Collection
}

// NewMongoTemplateRepo constructs a new MongoDB TemplateRepository.
func NewMongoTemplateRepo() TemplateRepository {
	return &mongoTemplateRepo{
		coll: database.DB().Collection("weeklytemplates"),
	}
}
