// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"carebook/database"
	"carebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository is the booked-interval supplier. The scheduling core
// reads appointments written by the booking service; it never mutates them.
type AppointmentRepository interface {
	FindByConsultantAndDate(ctx context.Context, consultantID, date string) ([]models.Appointment, error)
	BookedIntervals(ctx context.Context, consultantID, date string) ([]models.Interval, error)
	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
