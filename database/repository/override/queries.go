// File: database/repository/override/queries.go
package overrideRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"carebook/models"
)

// FindActiveByDate returns the active override for the exact date, or nil when
// none exists. Dates are day-granularity strings, so equality is exact.
func (r *mongoOverrideRepo) FindActiveByDate(ctx context.Context, consultantID, date string) (*models.Override, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"consultantId": consultantID,
		"date":         date,
		"isActive":     true,
	}

	var ov models.Override
	err := r.coll.FindOne(ctx, filter).Decode(&ov)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch override: %w", err)
	}
	return &ov, nil
}

// ListByConsultant returns the consultant's overrides within [from, to],
// newest date first. Empty bounds are open.
func (r *mongoOverrideRepo) ListByConsultant(ctx context.Context, consultantID, from, to string) ([]models.Override, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"consultantId": consultantID}
	dateRange := bson.M{}
	if from != "" {
		dateRange["$gte"] = from
	}
	if to != "" {
		dateRange["$lte"] = to
	}
	if len(dateRange) > 0 {
		filter["date"] = dateRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}
	defer cursor.Close(ctx)

	var overrides []models.Override
	if err := cursor.All(ctx, &overrides); err != nil {
		return nil, fmt.Errorf("error decoding overrides: %w", err)
	}
	return overrides, nil
}
