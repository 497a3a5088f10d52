// Package geolocation acquires a caller's current position through a ladder
// of progressively relaxed accuracy/timeout tiers, normalizing provider
// failures into a small typed taxonomy.
package geolocation

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mud-ali/DIHacks2025/schema"
)

// ErrorKind classifies position failures.
type ErrorKind string

const (
	PermissionDenied    ErrorKind = "permission_denied"
	PositionUnavailable ErrorKind = "position_unavailable"
	Timeout             ErrorKind = "timeout"
	Unknown             ErrorKind = "unknown"
)

// Error is a typed position failure. Code mirrors the browser geolocation
// error codes (1 permission, 2 unavailable, 3 timeout) so clients can keep
// their existing handling.
type Error struct {
	Code    int
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("geolocation: %s (%s)", e.Message, e.Kind)
}

// Options is one tier's request configuration.
type Options struct {
	EnableHighAccuracy bool
	Timeout            time.Duration
	MaximumAge         time.Duration
}

// defaultTiers is the fixed retry ladder: precise first, then trade
// accuracy and freshness for a faster answer.
var defaultTiers = []Options{
	{EnableHighAccuracy: true, Timeout: 15 * time.Second, MaximumAge: 0},
	{EnableHighAccuracy: false, Timeout: 10 * time.Second, MaximumAge: 5 * time.Minute},
	{EnableHighAccuracy: false, Timeout: 5 * time.Second, MaximumAge: 10 * time.Minute},
}

// PositionProvider is the underlying position source (a browser agent, a
// device service, a fake in tests).
type PositionProvider interface {
	CurrentPosition(ctx context.Context, opts Options) (schema.Location, error)
}

// Result is an acquired position annotated with the tier that produced it.
// Tiers are 1-based in the annotation since that is how operators read them.
type Result struct {
	Location schema.Location
	Tier     int
}

// Acquirer runs the tier ladder against a provider.
type Acquirer struct {
	provider PositionProvider
	tiers    []Options
}

func NewAcquirer(provider PositionProvider) *Acquirer {
	return &Acquirer{
		provider: provider,
		tiers:    defaultTiers,
	}
}

// Acquire walks the tiers in order. A timeout or position-unavailable
// failure advances silently to the next tier; a permission denial or unknown
// failure stops immediately, since retrying cannot change a permission
// decision. Exhausting the ladder reports a timeout-kind error distinct from
// a single tier's timeout.
func (a *Acquirer) Acquire(ctx context.Context) (*Result, error) {
	for i, tier := range a.tiers {
		loc, err := a.provider.CurrentPosition(ctx, tier)
		if err == nil {
			return &Result{Location: loc, Tier: i + 1}, nil
		}

		kind := classify(err)
		log.WithField("prefix", "geolocation").WithField("tier", i+1).
			WithField("kind", string(kind)).Debug("position attempt failed")

		if kind == Timeout || kind == PositionUnavailable {
			continue
		}

		if kind == PermissionDenied {
			return nil, &Error{
				Code:    1,
				Kind:    PermissionDenied,
				Message: "location access denied, check permissions",
			}
		}

		return nil, &Error{
			Code:    0,
			Kind:    Unknown,
			Message: err.Error(),
		}
	}

	return nil, &Error{
		Code:    3,
		Kind:    Timeout,
		Message: "failed to get location after multiple attempts",
	}
}

func classify(err error) ErrorKind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	if err == context.DeadlineExceeded {
		return Timeout
	}
	return Unknown
}
