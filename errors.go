package twitter

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every *ConfigError. The resolver
	// returns it when the URI names a handler but a property that handler
	// needs is missing or blank.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownType is returned by ParseCategory and ParseSubCategory for
	// tokens outside the lookup tables. The resolver never returns it; it
	// only appears as a fallback reason.
	ErrUnknownType = errors.New("unknown type")

	// ErrNotImplemented is the fallback reason for categories that are
	// recognized but have no handler (trends, user, userlist).
	ErrNotImplemented = errors.New("not implemented")

	// ErrNoClient is returned by a handler invoked without a Client.
	ErrNoClient = errors.New("no client configured")
)

var (
	errMissingCategory    = fmt.Errorf("%w: no category in uri", ErrUnknownType)
	errMissingSubCategory = fmt.Errorf("%w: no sub-category in uri", ErrUnknownType)
)

// ConfigError reports a required endpoint property that is missing or blank.
type ConfigError struct {
	// Category is the category that needed the property.
	Category Category

	// Property is the missing property key.
	Property string

	// Message is the human-readable description.
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s (property %q)", ErrInvalidArgument, e.Message, e.Property)
}

// Is reports whether target is ErrInvalidArgument.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// typeError wraps ErrUnknownType with the offending token.
type typeError struct {
	family string
	token  string
}

func (e *typeError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.family, e.token)
}

func (e *typeError) Unwrap() error { return ErrUnknownType }
