// File: database/repository/template/queries.go
package templateRepo

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

// openEnded matches templates whose effectiveTo is unset. Dates are stored as
// "YYYY-MM-DD" strings, so range comparisons are plain lexicographic $lte/$gt.
func openEndedOr(cond bson.M) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"effectiveTo": bson.M{"$exists": false}},
		bson.M{"effectiveTo": ""},
		cond,
	}}
}

// FindActiveCovering returns the active template whose effective range
// contains the date, or nil when none is configured. Absence is not an error;
// the resolver treats it as a non-working day.
func (r *mongoTemplateRepo) FindActiveCovering(ctx context.Context, consultantID, date string) (*models.WeeklyTemplate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"consultantId":  consultantID,
		"isActive":      true,
		"effectiveFrom": bson.M{"$lte": date},
		"$and": bson.A{
			openEndedOr(bson.M{"effectiveTo": bson.M{"$gt": date}}),
		},
	}

	var tpl models.WeeklyTemplate
	err := r.coll.FindOne(ctx, filter).Decode(&tpl)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch covering template: %w", err)
	}
	return &tpl, nil
}

// ListActiveByConsultant returns every active template for the consultant,
// ordered by effectiveFrom. Used by the conflict validator to run the range
// intersection check in one pass.
func (r *mongoTemplateRepo) ListActiveByConsultant(ctx context.Context, consultantID string) ([]models.WeeklyTemplate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"consultantId": consultantID, "isActive": true}
	opts := options.Find().SetSort(bson.D{{Key: "effectiveFrom", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list active templates: %w", err)
	}
	defer cursor.Close(ctx)

	var templates []models.WeeklyTemplate
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, fmt.Errorf("error decoding templates: %w", err)
	}
	return templates, nil
}

// ExpireEnded flips isActive off for templates whose effectiveTo has passed.
// Purely a hygiene sweep for the background worker; the covering query already
// excludes ended ranges.
func (r *mongoTemplateRepo) ExpireEnded(ctx context.Context, today string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"isActive":    true,
		"effectiveTo": bson.M{"$gt": "", "$lte": today},
	}
	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now().UTC()}}

	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to expire templates: %w", err)
	}
	return res.ModifiedCount, nil
}
