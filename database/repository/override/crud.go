// File: database/repository/override/crud.go
package overrideRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"carebook/models"
)

func (r *mongoOverrideRepo) Create(ctx context.Context, ov *models.Override) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if ov.ID == "" {
		ov.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	ov.CreatedAt = now
	ov.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, ov); err != nil {
		// The partial unique index on (consultantId, date, isActive=true)
		// turns a lost duplicate race into a conflict here.
		if mongo.IsDuplicateKeyError(err) {
			return models.NewConflictError("date", "an active override already exists for this date")
		}
		return fmt.Errorf("failed to insert override: %w", err)
	}
	return nil
}

func (r *mongoOverrideRepo) Update(ctx context.Context, ov *models.Override) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ov.UpdatedAt = time.Now().UTC()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": ov.ID}, ov)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.NewConflictError("date", "an active override already exists for this date")
		}
		return fmt.Errorf("failed to update override: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.NewNotFoundError("id", "override not found")
	}
	return nil
}

func (r *mongoOverrideRepo) GetByID(ctx context.Context, id string) (*models.Override, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ov models.Override
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&ov)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("id", "override not found")
		}
		return nil, fmt.Errorf("failed to fetch override: %w", err)
	}
	return &ov, nil
}

// SoftDelete deactivates the override in place. Rows are never removed; the
// audit history stays intact.
func (r *mongoOverrideRepo) SoftDelete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now().UTC()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to soft-delete override: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.NewNotFoundError("id", "override not found")
	}
	return nil
}
