// File: database/repository/template/crud.go
package templateRepo

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

func (r *mongoTemplateRepo) Create(ctx context.Context, tpl *models.WeeklyTemplate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if tpl.ID == "" {
		tpl.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	tpl.CreatedAt = now
	tpl.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, tpl); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.NewConflictError("id", "template already exists")
		}
		return fmt.Errorf("failed to insert template: %w", err)
	}
	return nil
}

func (r *mongoTemplateRepo) Update(ctx context.Context, tpl *models.WeeklyTemplate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tpl.UpdatedAt = time.Now().UTC()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": tpl.ID}, tpl)
	if err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.NewNotFoundError("id", "template not found")
	}
	return nil
}

func (r *mongoTemplateRepo) GetByID(ctx context.Context, id string) (*models.WeeklyTemplate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var tpl models.WeeklyTemplate
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tpl)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("id", "template not found")
		}
		return nil, fmt.Errorf("failed to fetch template: %w", err)
	}
	return &tpl, nil
}

// Deactivate closes the template's effective range in place. Templates are
// never hard-deleted; the row stays for audit history.
func (r *mongoTemplateRepo) Deactivate(ctx context.Context, id, effectiveTo string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"isActive":    false,
		"effectiveTo": effectiveTo,
		"updatedAt":   time.Now().UTC(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to deactivate template: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.NewNotFoundError("id", "template not found")
	}
	return nil
}
