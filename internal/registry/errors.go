package registry

import "errors"

// Sentinel errors for the registry.
var (
	// ErrTagMismatch is returned when a tag is requested with different
	// type parameters than it was first declared with.
	ErrTagMismatch = errors.New("tag already declared with a different type")

	// ErrRegistryClosed is returned when requesting instances from a
	// closed registry.
	ErrRegistryClosed = errors.New("registry is closed")
)

// TagMismatchError reports the concrete types involved in a tag collision.
type TagMismatchError struct {
	// Tag is the colliding tag.
	Tag Tag

	// Stored is the type name of the instance already in the slot.
	Stored string

	// Requested is the type name the caller asked for.
	Requested string
}

// Error implements the error interface.
func (e *TagMismatchError) Error() string {
	return "tag " + string(e.Tag) + " holds " + e.Stored + ", requested " + e.Requested
}

// Is allows errors.Is to match a TagMismatchError with ErrTagMismatch.
func (e *TagMismatchError) Is(target error) bool {
	return target == ErrTagMismatch
}
