package schema

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	EventCollection = "event"
)

// Event is a one-off community event hosted at a center.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Location    string             `bson:"location" json:"location"`
	StartTime   time.Time          `bson:"start_time" json:"startTime"`
	EndTime     time.Time          `bson:"end_time" json:"endTime"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

func (e *Event) Validate() []FieldError {
	var errs []FieldError

	if strings.TrimSpace(e.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	}
	if !e.StartTime.IsZero() && !e.EndTime.IsZero() && e.EndTime.Before(e.StartTime) {
		errs = append(errs, FieldError{Field: "endTime", Message: "End time must not precede start time"})
	}

	return errs
}
