// FILE: database/repository/override/indexes.go
package overrideRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the scheduleoverrides collection.
func (r *mongoOverrideRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on override ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// One active override per consultant per date. Soft-deleted rows fall
		// out of the partial filter, so history never blocks a new override.
		{
			Keys: bson.D{{Key: "consultantId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"isActive": true}).
				SetName("unique_active_consultant_date"),
		},
		// Listing by consultant and date range
		{
			Keys:    bson.D{{Key: "consultantId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("consultant_date_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create override indexes: %w", err)
	}
	return nil
}
