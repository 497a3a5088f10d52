package schema

import (
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mud-ali/DIHacks2025/consts"
)

const (
	MasjidCollection = "masjid"
)

var (
	phoneStripper = regexp.MustCompile(`[\s\-\(\)]`)
	phonePattern  = regexp.MustCompile(`^[\+]?[1-9][\d]{0,15}$`)
	emailPattern  = regexp.MustCompile(`(?i)^[A-Z0-9\._+-]+@[A-Z0-9\.-]+\.[A-Z]{2,}$`)
	timePattern   = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

// FieldError is a single schema-validation violation. Validation of a record
// returns one FieldError per violated rule so the API can report them all at
// once, the way the original per-field validators did.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PrayerTimes holds the five daily prayers as HH:MM strings. A prayer left
// empty means the timing service was unreachable when the record was created.
type PrayerTimes struct {
	Fajr    string `bson:"fajr,omitempty" json:"fajr,omitempty"`
	Dhuhr   string `bson:"dhuhr,omitempty" json:"dhuhr,omitempty"`
	Asr     string `bson:"asr,omitempty" json:"asr,omitempty"`
	Maghrib string `bson:"maghrib,omitempty" json:"maghrib,omitempty"`
	Isha    string `bson:"isha,omitempty" json:"isha,omitempty"`
}

// IsEmpty reports whether no prayer time is set at all.
func (p PrayerTimes) IsEmpty() bool {
	return p.Fajr == "" && p.Dhuhr == "" && p.Asr == "" && p.Maghrib == "" && p.Isha == ""
}

// Masjid is a registered community center. Latitude/Longitude are the fields
// clients read; Location mirrors them as a GeoJSON point for the 2dsphere
// index and stays server-side.
type Masjid struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Address           string             `bson:"address" json:"address"`
	Latitude          float64            `bson:"latitude" json:"latitude"`
	Longitude         float64            `bson:"longitude" json:"longitude"`
	Location          *GeoJSON           `bson:"location,omitempty" json:"-"`
	CalculationMethod string             `bson:"calculation_method,omitempty" json:"calculationMethod,omitempty"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	Phone             string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email             string             `bson:"email,omitempty" json:"email,omitempty"`
	Services          []string           `bson:"services" json:"services"`
	PrayerTimes       PrayerTimes        `bson:"prayer_times" json:"prayerTimes"`
	Distance          *float64           `bson:"distance,omitempty" json:"distance,omitempty"`
	CreatedAt         int64              `bson:"created_at" json:"-"`
	UpdatedAt         int64              `bson:"updated_at" json:"-"`
}

// Validate checks every field-level rule and returns one entry per violated
// rule. It must be called before any persistence write.
func (m *Masjid) Validate() []FieldError {
	var errs []FieldError

	if strings.TrimSpace(m.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	}
	if strings.TrimSpace(m.Address) == "" {
		errs = append(errs, FieldError{Field: "address", Message: "Address is required"})
	}
	if m.Latitude < -90 || m.Latitude > 90 {
		errs = append(errs, FieldError{Field: "latitude", Message: "Latitude must be between -90 and 90"})
	}
	if m.Longitude < -180 || m.Longitude > 180 {
		errs = append(errs, FieldError{Field: "longitude", Message: "Longitude must be between -180 and 180"})
	}
	if !consts.IsSupportedCalculationMethod(m.CalculationMethod) {
		errs = append(errs, FieldError{Field: "calculationMethod", Message: "Invalid calculation method"})
	}
	if m.Phone != "" && !phonePattern.MatchString(phoneStripper.ReplaceAllString(m.Phone, "")) {
		errs = append(errs, FieldError{Field: "phone", Message: "Invalid phone number format"})
	}
	if m.Email != "" && !emailPattern.MatchString(m.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Invalid email format"})
	}

	for field, v := range map[string]string{
		"prayerTimes.fajr":    m.PrayerTimes.Fajr,
		"prayerTimes.dhuhr":   m.PrayerTimes.Dhuhr,
		"prayerTimes.asr":     m.PrayerTimes.Asr,
		"prayerTimes.maghrib": m.PrayerTimes.Maghrib,
		"prayerTimes.isha":    m.PrayerTimes.Isha,
	} {
		if v != "" && !timePattern.MatchString(v) {
			errs = append(errs, FieldError{Field: field, Message: "Prayer time must be in HH:MM format"})
		}
	}

	return errs
}

// ValidEmail reports whether v looks like an email address. Shared with the
// user schema.
func ValidEmail(v string) bool {
	return emailPattern.MatchString(v)
}

// ValidPrayerTime reports whether v is an HH:MM 24-hour string.
func ValidPrayerTime(v string) bool {
	return timePattern.MatchString(v)
}
