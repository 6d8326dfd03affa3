package models

import "time"

// Appointment statuses. Cancelled appointments never count as booked time.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment is booked time supplied by the external appointment store. The
// scheduling core only reads its date, times and status; everything else is
// opaque to it.
type Appointment struct {
	ID           string    `bson:"id" json:"id"`
	ConsultantID string    `bson:"consultantId" json:"consultant_id"`
	CustomerID   string    `bson:"customerId" json:"customer_id"`
	Date         string    `bson:"date" json:"date"`
	StartTime    TimeOfDay `bson:"startTime" json:"start_time"`
	EndTime      TimeOfDay `bson:"endTime" json:"end_time"`
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"createdAt" json:"created_at"`
}

// Interval returns the appointment's reserved window as a minute interval.
func (a Appointment) Interval() Interval {
	return Interval{Start: a.StartTime.Minutes(), End: a.EndTime.Minutes()}
}
