package models

// ScheduleSource names which store produced a resolved day.
type ScheduleSource string

const (
	SourceOverride ScheduleSource = "override"
	SourceTemplate ScheduleSource = "template"
	SourceNone     ScheduleSource = "none"
)

// ResolvedDaySchedule is the effective working-hours definition for one
// consultant on one date, after override-over-template precedence. Derived per
// query, never persisted.
type ResolvedDaySchedule struct {
	Date            string           `json:"date"`
	IsWorkingDay    bool             `json:"is_working_day"`
	WorkingInterval *WorkingInterval `json:"working_interval,omitempty"`
	SlotDuration    int              `json:"slot_duration,omitempty"`
	Source          ScheduleSource   `json:"source"`
}

// TimeSlot is a fixed-duration bookable window within a resolved working day.
// Booked slots stay in the sequence flagged unavailable so callers can render
// busy slots distinctly from free ones.
type TimeSlot struct {
	StartTime   TimeOfDay `json:"start_time"`
	EndTime     TimeOfDay `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
}

// Interval returns the slot as a minute interval.
func (s TimeSlot) Interval() Interval {
	return Interval{Start: s.StartTime.Minutes(), End: s.EndTime.Minutes()}
}

// BookedAppointment is the caller-facing summary of an appointment occupying
// part of a working day.
type BookedAppointment struct {
	AppointmentID string    `json:"appointment_id"`
	StartTime     TimeOfDay `json:"start_time"`
	EndTime       TimeOfDay `json:"end_time"`
	Status        string    `json:"status"`
}

// DayAvailability is the full availability picture for one consultant-date.
type DayAvailability struct {
	ConsultantID   string              `json:"consultant_id"`
	Date           string              `json:"date"`
	DayOfWeek      Weekday             `json:"day_of_week"`
	IsWorkingDay   bool                `json:"is_working_day"`
	Source         ScheduleSource      `json:"source"`
	WorkingHours   *WorkingInterval    `json:"working_hours,omitempty"`
	Slots          []TimeSlot          `json:"slots"`
	TotalSlots     int                 `json:"total_slots"`
	AvailableSlots int                 `json:"available_slots"`
	Booked         []BookedAppointment `json:"booked_appointments"`
}

// WeekSummary aggregates a week of availability.
type WeekSummary struct {
	TotalWorkingDays    int `json:"total_working_days"`
	TotalAvailableSlots int `json:"total_available_slots"`
	TotalBookedSlots    int `json:"total_booked_slots"`
}

// WeekAvailability covers seven consecutive days starting at WeekStart.
type WeekAvailability struct {
	ConsultantID string            `json:"consultant_id"`
	WeekStart    string            `json:"week_start"`
	WeekEnd      string            `json:"week_end"`
	Days         []DayAvailability `json:"days"`
	Summary      WeekSummary       `json:"summary"`
}
