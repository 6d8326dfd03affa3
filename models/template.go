package models

import "time"

// Slot duration bounds in minutes, enforced on every template write.
const (
	MinSlotDuration     = 15
	MaxSlotDuration     = 120
	DefaultSlotDuration = 30
)

// CreatedBy records the actor that wrote a template or override.
type CreatedBy struct {
	UserID string `bson:"userId" json:"user_id"`
	Role   string `bson:"role" json:"role"`
	Name   string `bson:"name" json:"name"`
}

// WorkingDays maps each weekday to its optional working hours. An absent day
// is a non-working day.
type WorkingDays struct {
	Monday    *WorkingInterval `bson:"monday,omitempty" json:"monday,omitempty"`
	Tuesday   *WorkingInterval `bson:"tuesday,omitempty" json:"tuesday,omitempty"`
	Wednesday *WorkingInterval `bson:"wednesday,omitempty" json:"wednesday,omitempty"`
	Thursday  *WorkingInterval `bson:"thursday,omitempty" json:"thursday,omitempty"`
	Friday    *WorkingInterval `bson:"friday,omitempty" json:"friday,omitempty"`
	Saturday  *WorkingInterval `bson:"saturday,omitempty" json:"saturday,omitempty"`
	Sunday    *WorkingInterval `bson:"sunday,omitempty" json:"sunday,omitempty"`
}

// Day returns the interval configured for the given weekday, or nil.
func (wd WorkingDays) Day(d Weekday) *WorkingInterval {
	switch d {
	case Monday:
		return wd.Monday
	case Tuesday:
		return wd.Tuesday
	case Wednesday:
		return wd.Wednesday
	case Thursday:
		return wd.Thursday
	case Friday:
		return wd.Friday
	case Saturday:
		return wd.Saturday
	case Sunday:
		return wd.Sunday
	}
	return nil
}

// WeeklyTemplate is a consultant's recurring weekly working-hours pattern,
// effective over a date range. EffectiveTo empty means open-ended.
type WeeklyTemplate struct {
	ID                  string      `bson:"id" json:"id"`
	ConsultantID        string      `bson:"consultantId" json:"consultant_id"`
	EffectiveFrom       string      `bson:"effectiveFrom" json:"effective_from"`
	EffectiveTo         string      `bson:"effectiveTo,omitempty" json:"effective_to,omitempty"`
	WorkingDays         WorkingDays `bson:"workingDays" json:"working_days"`
	DefaultSlotDuration int         `bson:"defaultSlotDuration" json:"default_slot_duration"`
	IsActive            bool        `bson:"isActive" json:"is_active"`
	CreatedBy           CreatedBy   `bson:"createdBy" json:"created_by"`
	Notes               string      `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt           time.Time   `bson:"createdAt" json:"created_at"`
	UpdatedAt           time.Time   `bson:"updatedAt" json:"updated_at"`
}

// Validate checks the effective range, slot duration bounds, and every
// configured weekday interval. It does not check overlap against other
// templates; that is the conflict validator's job.
func (t WeeklyTemplate) Validate() error {
	if t.ConsultantID == "" {
		return NewValidationError("consultant_id", "consultant id is required")
	}
	if _, err := ParseDate(t.EffectiveFrom); err != nil {
		return NewFormatError("effective_from", "effective from must be a YYYY-MM-DD date")
	}
	if t.EffectiveTo != "" {
		if _, err := ParseDate(t.EffectiveTo); err != nil {
			return NewFormatError("effective_to", "effective to must be a YYYY-MM-DD date")
		}
		if t.EffectiveTo <= t.EffectiveFrom {
			return NewValidationError("effective_to", "effective to must be after effective from")
		}
	}
	if t.DefaultSlotDuration < MinSlotDuration || t.DefaultSlotDuration > MaxSlotDuration {
		return NewValidationError("default_slot_duration", "slot duration must be between 15 and 120 minutes")
	}
	for _, day := range Weekdays {
		if wi := t.WorkingDays.Day(day); wi != nil {
			if err := wi.Validate(); err != nil {
				return NewValidationError(string(day), err.Error())
			}
		}
	}
	return nil
}

// RangeIntersects reports whether two effective ranges intersect, treating an
// empty EffectiveTo as +infinity.
func (t WeeklyTemplate) RangeIntersects(other WeeklyTemplate) bool {
	if t.EffectiveTo != "" && t.EffectiveTo <= other.EffectiveFrom {
		return false
	}
	if other.EffectiveTo != "" && other.EffectiveTo <= t.EffectiveFrom {
		return false
	}
	return true
}

// Covers reports whether the template's effective range contains the date.
// EffectiveTo is exclusive.
func (t WeeklyTemplate) Covers(date string) bool {
	if date < t.EffectiveFrom {
		return false
	}
	return t.EffectiveTo == "" || date < t.EffectiveTo
}
