// Package store holds every collection of the service in process memory.
// Nothing here survives a restart.
package store

import (
	"sync"
	"time"

	"anoa.com/civicwaste/internal/entity"
	"github.com/google/uuid"
)

const dayLayout = "2006-01-02"

// Clock returns the current instant. Tests swap it for a fixed time.
type Clock func() time.Time

type Store struct {
	mu    sync.RWMutex
	clock Clock

	users      []entity.User
	households []entity.Household
	activities []entity.Activity
	dayIndex   []entity.DayIndex
}

func New(clock Clock) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{clock: clock}
}

// Now is the store clock truncated to milliseconds, the precision timestamps carry
// on the wire.
func (s *Store) Now() time.Time {
	return s.clock().Truncate(time.Millisecond)
}

func (s *Store) AddUser(user entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
}

func (s *Store) FindUser(id uuid.UUID) (entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return entity.User{}, false
}

func (s *Store) FindUserByEmail(email string) (entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return entity.User{}, false
}

// AddUserIfEmailFree appends user unless another user already has its email.
func (s *Store) AddUserIfEmailFree(user entity.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return false
		}
	}
	s.users = append(s.users, user)
	return true
}

func (s *Store) CountUsers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// FindOrCreateHousehold returns the user's household, calling build to create one
// only when none exists. The first household written for a user wins.
func (s *Store) FindOrCreateHousehold(userID uuid.UUID, build func() entity.Household) (entity.Household, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.households {
		if h.UserID == userID {
			return h, false
		}
	}
	h := build()
	s.households = append(s.households, h)
	return h, true
}

// AppendActivity adds a to the log and files its id under the user's entry for the
// current server-local day.
func (s *Store) AppendActivity(a entity.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities = append(s.activities, a)

	today := s.clock().Local().Format(dayLayout)
	for i := range s.dayIndex {
		day := &s.dayIndex[i]
		if day.UserID == a.UserID && day.Date.Local().Format(dayLayout) == today {
			day.ActivityIDs = append(day.ActivityIDs, a.ID)
			return
		}
	}
	s.dayIndex = append(s.dayIndex, entity.DayIndex{
		UserID:      a.UserID,
		Date:        s.Now(),
		ActivityIDs: []uuid.UUID{a.ID},
	})
}

// ActivitiesByUser returns a copy of the user's activities in recording order.
func (s *Store) ActivitiesByUser(userID uuid.UUID) []entity.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Activity, 0)
	for _, a := range s.activities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out
}

// DayIndex returns the per-day activity id lists recorded for the user.
func (s *Store) DayIndex(userID uuid.UUID) []entity.DayIndex {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.DayIndex
	for _, d := range s.dayIndex {
		if d.UserID == userID {
			ids := make([]uuid.UUID, len(d.ActivityIDs))
			copy(ids, d.ActivityIDs)
			d.ActivityIDs = ids
			out = append(out, d)
		}
	}
	return out
}
