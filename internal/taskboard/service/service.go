package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
)

// Clock returns the current time. Services fall back to time.Now when nil.
type Clock func() time.Time

// now returns the clock reading in UTC at millisecond precision, which is
// what every store driver round-trips.
func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC().Truncate(time.Millisecond)
	}
	return c().UTC().Truncate(time.Millisecond)
}

// Notifier receives change events after a mutation has been persisted.
type Notifier interface {
	Publish(ctx context.Context, e domain.Event) error
}

func requireActor(actor domain.Actor) error {
	if actor.UserID == "" {
		return domain.Unauthorized("Authentication required")
	}
	return nil
}

// usersByID resolves ids to users in one store round trip.
func usersByID(ctx context.Context, s store.Store, ids []string) (map[string]domain.User, error) {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	users, err := s.Users().ListUsersByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}

	out := make(map[string]domain.User, len(users))
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

func isNotFound(err error) bool { return errors.Is(err, store.ErrNotFound) }
