// Package registry holds the activity catalog and the roster mutation
// contract: signup and unregister with duplicate and capacity checks.
package registry

import "context"

// Activity is a named extracurricular offering with a capacity and roster.
// Participants are email strings in signup order.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Clone returns a deep copy so callers cannot mutate stored rosters.
func (a *Activity) Clone() *Activity {
	cp := *a
	cp.Participants = make([]string, len(a.Participants))
	copy(cp.Participants, a.Participants)
	return &cp
}

// IsFull reports whether the roster has reached capacity.
func (a *Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// HasParticipant reports whether email is already on the roster.
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Store defines access to the activity registry. Implementations must make
// each Signup/Unregister atomic with respect to other operations on the
// same registry so the capacity and uniqueness invariants hold under
// concurrent requests.
type Store interface {
	// List returns the full name -> activity mapping.
	List(ctx context.Context) (map[string]*Activity, error)

	// Get returns a single activity by exact name.
	Get(ctx context.Context, name string) (*Activity, error)

	// Signup appends email to the named activity's roster. Checks are
	// evaluated existence -> duplicate -> capacity.
	Signup(ctx context.Context, name, email string) error

	// Unregister removes email from the named activity's roster.
	Unregister(ctx context.Context, name, email string) error
}
