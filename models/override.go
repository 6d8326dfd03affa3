package models

import "time"

// Override is a one-off exception for a specific calendar date. When active it
// fully supersedes the weekly template for that date; IsAvailable=false on the
// working interval marks a day off.
type Override struct {
	ID              string          `bson:"id" json:"id"`
	ConsultantID    string          `bson:"consultantId" json:"consultant_id"`
	Date            string          `bson:"date" json:"date"`
	WorkingInterval WorkingInterval `bson:"workingInterval" json:"working_interval"`
	Reason          string          `bson:"reason,omitempty" json:"reason,omitempty"`
	IsActive        bool            `bson:"isActive" json:"is_active"`
	CreatedBy       CreatedBy       `bson:"createdBy" json:"created_by"`
	CreatedAt       time.Time       `bson:"createdAt" json:"created_at"`
	UpdatedAt       time.Time       `bson:"updatedAt" json:"updated_at"`
}

// Validate checks the date and, for available days, the working interval.
// A day-off override (IsAvailable=false) skips interval validation since its
// times are ignored.
func (o Override) Validate() error {
	if o.ConsultantID == "" {
		return NewValidationError("consultant_id", "consultant id is required")
	}
	if _, err := ParseDate(o.Date); err != nil {
		return NewFormatError("date", "override date must be a YYYY-MM-DD date")
	}
	if !o.WorkingInterval.IsAvailable {
		return nil
	}
	return o.WorkingInterval.Validate()
}
