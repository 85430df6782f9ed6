package registry

import "errors"

// Sentinel errors returned by Store implementations. Callers match with
// errors.Is to decide how an operation failed.
var (
	// ErrActivityNotFound indicates the activity name has no entry in the
	// registry.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrAlreadySignedUp indicates the email is already on the roster.
	ErrAlreadySignedUp = errors.New("student already signed up for this activity")

	// ErrActivityFull indicates the roster is at max_participants.
	ErrActivityFull = errors.New("activity is full")

	// ErrParticipantNotFound indicates the email is not on the roster.
	ErrParticipantNotFound = errors.New("student is not signed up for this activity")
)

// IsNotFound reports whether err is an absence error (activity or
// participant). The two cases share a kind and differ only in message.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrActivityNotFound) || errors.Is(err, ErrParticipantNotFound)
}

// IsConflict reports whether err is a roster conflict (duplicate signup or
// capacity reached).
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadySignedUp) || errors.Is(err, ErrActivityFull)
}
