// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"carebook/models"
)

// FindByConsultantAndDate returns the consultant's non-cancelled appointments
// for the date, ordered by start time.
func (r *mongoAppointmentRepo) FindByConsultantAndDate(ctx context.Context, consultantID, date string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"consultantId": consultantID,
		"date":         date,
		"status":       bson.M{"$ne": models.AppointmentCancelled},
	}
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appointments, nil
}

// BookedIntervals reduces the day's appointments to opaque reserved intervals
// for the slot generator.
func (r *mongoAppointmentRepo) BookedIntervals(ctx context.Context, consultantID, date string) ([]models.Interval, error) {
	appointments, err := r.FindByConsultantAndDate(ctx, consultantID, date)
	if err != nil {
		return nil, err
	}
	intervals := make([]models.Interval, 0, len(appointments))
	for _, apt := range appointments {
		intervals = append(intervals, apt.Interval())
	}
	return intervals, nil
}
