// Package registry holds the in-memory activity registry: every roster
// the service knows about lives here for the lifetime of the process.
package registry

import (
	"sync"

	"activities-api/internal/common/errors"
	"activities-api/internal/models"
)

// Registry is a map-backed store of activities keyed by name. It is
// seeded once at construction and mutated in place by Signup and
// Unregister. The mutex only guards the map against net/http's
// per-request goroutines.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*models.Activity
}

// New builds a registry from the given seed. The seed is copied, so the
// caller's map stays untouched by later mutations.
func New(seed map[string]models.Activity) *Registry {
	activities := make(map[string]*models.Activity, len(seed))
	for name, activity := range seed {
		cloned := activity.Clone()
		activities[name] = &cloned
	}
	return &Registry{activities: activities}
}

// Activities returns a snapshot of every activity keyed by name,
// unfiltered. Rosters keep signup order.
func (r *Registry) Activities() map[string]models.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]models.Activity, len(r.activities))
	for name, activity := range r.activities {
		out[name] = activity.Clone()
	}
	return out
}

// Count returns the number of registered activities.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.activities)
}

// Signup appends email to the activity's roster. It fails if the
// activity is unknown or the email is already on the roster. Capacity
// is deliberately not checked: max_participants is informational and
// over-capacity signups succeed.
func (r *Registry) Signup(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return errors.NewActivityNotFoundError(name)
	}
	if activity.HasParticipant(email) {
		return errors.NewAlreadySignedUpError(email, name)
	}

	activity.Participants = append(activity.Participants, email)
	return nil
}

// Unregister removes email from the activity's roster. It fails if the
// activity is unknown or the email is not on the roster.
func (r *Registry) Unregister(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return errors.NewActivityNotFoundError(name)
	}

	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return nil
		}
	}
	return errors.NewNotSignedUpError(email, name)
}
