// FILE: database/repository/template/indexes.go
package templateRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the weeklytemplates collection.
func (r *mongoTemplateRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on template ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary query pattern: active templates covering a date
		{
			Keys: bson.D{
				{Key: "consultantId", Value: 1},
				{Key: "isActive", Value: 1},
				{Key: "effectiveFrom", Value: 1},
				{Key: "effectiveTo", Value: 1},
			},
			Options: options.Index().SetName("consultant_active_range_idx"),
		},
		// Expiry sweep
		{
			Keys:    bson.D{{Key: "isActive", Value: 1}, {Key: "effectiveTo", Value: 1}},
			Options: options.Index().SetName("active_effective_to_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create template indexes: %w", err)
	}
	return nil
}
