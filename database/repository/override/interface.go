// File: database/repository/override/interface.go
package overrideRepo

import (
	"context"

	"carebook/database"
	"carebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// OverrideRepository persists date-specific schedule overrides. At most one
// active override may exist per (consultantId, date); a partial unique index
// enforces that at the storage layer so concurrent writers cannot both win.
type OverrideRepository interface {
	Create(ctx context.Context, ov *models.Override) error
	Update(ctx context.Context, ov *models.Override) error
	GetByID(ctx context.Context, id string) (*models.Override, error)
	FindActiveByDate(ctx context.Context, consultantID, date string) (*models.Override, error)
	ListByConsultant(ctx context.Context, consultantID, from, to string) ([]models.Override, error)
	SoftDelete(ctx context.Context, id string) error
	EnsureIndexes() error
}

type mongoOverrideRepo struct {
	coll *mongo.Collection
}

// NewMongoOverrideRepo constructs a new MongoDB OverrideRepository.
func NewMongoOverrideRepo() OverrideRepository {
	return &mongoOverrideRepo{
		coll: database.DB().Collection("scheduleoverrides"),
	}
}
