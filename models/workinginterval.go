package models

// WorkingInterval describes one day's working hours with an optional break
// window. IsAvailable=false means the day is off regardless of the times.
type WorkingInterval struct {
	Start       TimeOfDay  `bson:"startTime" json:"start_time"`
	End         TimeOfDay  `bson:"endTime" json:"end_time"`
	BreakStart  *TimeOfDay `bson:"breakStart,omitempty" json:"break_start,omitempty"`
	BreakEnd    *TimeOfDay `bson:"breakEnd,omitempty" json:"break_end,omitempty"`
	IsAvailable bool       `bson:"isAvailable" json:"is_available"`
}

// Validate enforces start < end and, when a break is present, that both break
// fields are set, break start < break end, and the break sits inside the
// working hours.
func (w WorkingInterval) Validate() error {
	if w.Start.Minutes() >= w.End.Minutes() {
		return NewValidationError("start_time", "start time must be before end time")
	}
	if (w.BreakStart == nil) != (w.BreakEnd == nil) {
		return NewValidationError("break_start", "both break start and break end are required when a break is specified")
	}
	if w.BreakStart != nil {
		if w.BreakStart.Minutes() >= w.BreakEnd.Minutes() {
			return NewValidationError("break_start", "break start must be before break end")
		}
		if w.BreakStart.Minutes() < w.Start.Minutes() || w.BreakEnd.Minutes() > w.End.Minutes() {
			return NewValidationError("break_start", "break must be within working hours")
		}
	}
	return nil
}

// Interval returns the working hours as a minute interval.
func (w WorkingInterval) Interval() Interval {
	return Interval{Start: w.Start.Minutes(), End: w.End.Minutes()}
}

// BreakInterval returns the break window, or ok=false when no break is set.
func (w WorkingInterval) BreakInterval() (Interval, bool) {
	if w.BreakStart == nil || w.BreakEnd == nil {
		return Interval{}, false
	}
	return Interval{Start: w.BreakStart.Minutes(), End: w.BreakEnd.Minutes()}, true
}
