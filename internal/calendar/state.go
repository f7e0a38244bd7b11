// Package calendar holds the widget's domain state: the reminder
// collection, the daily travel distance log and the one-shot
// notification bookkeeping. A single State owns all of it and writes
// each collection back to the store on every mutation.
package calendar

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/offlinelab/calendar-plus/internal/dateutil"
	"github.com/offlinelab/calendar-plus/internal/store"
)

// State is the coordinating owner of all persisted collections plus
// the transient active notification. It is safe for use from the
// clock goroutine and the REPL goroutine.
type State struct {
	mu sync.Mutex

	reminders   []Reminder
	distances   map[string]float64 // day key -> km
	notifiedIDs map[string]struct{}

	// Transient, never persisted.
	active *Reminder

	store *store.Store
}

// Load builds a State from the three persisted collections. Missing or
// unreadable collections start empty; nothing here is fatal.
func Load(st *store.Store) *State {
	s := &State{
		distances:   make(map[string]float64),
		notifiedIDs: make(map[string]struct{}),
		store:       st,
	}

	st.Load(store.CollectionReminders, &s.reminders)
	s.sortReminders()

	st.Load(store.CollectionDistances, &s.distances)
	if s.distances == nil {
		s.distances = make(map[string]float64)
	}

	// The notified set is serialized as an ordered id slice.
	var ids []string
	st.Load(store.CollectionNotifiedIDs, &ids)
	for _, id := range ids {
		s.notifiedIDs[id] = struct{}{}
	}

	return s
}

// AddReminder creates a reminder for the given day. Text is trimmed;
// an empty result makes the call a no-op and returns false.
func (s *State) AddReminder(day dateutil.Day, text string) (Reminder, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Reminder{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r := Reminder{
		ID:          uuid.NewString(),
		Date:        day.Key(),
		Text:        text,
		IsCompleted: false,
	}
	s.reminders = append(s.reminders, r)
	s.sortReminders()
	s.store.Save(store.CollectionReminders, s.reminders)
	return r, true
}

// ToggleReminderComplete flips the completion flag. Toggling twice
// restores the original value. Returns false when the id is unknown.
func (s *State) ToggleReminderComplete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reminders {
		if s.reminders[i].ID == id {
			s.reminders[i].IsCompleted = !s.reminders[i].IsCompleted
			s.store.Save(store.CollectionReminders, s.reminders)
			return true
		}
	}
	return false
}

// DeleteReminder removes the reminder and its notified-set entry, and
// drops the active notification if it pointed at the deleted id.
// Returns false when the id is unknown.
func (s *State) DeleteReminder(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	s.reminders = append(s.reminders[:idx], s.reminders[idx+1:]...)
	s.store.Save(store.CollectionReminders, s.reminders)

	if _, ok := s.notifiedIDs[id]; ok {
		delete(s.notifiedIDs, id)
		s.saveNotifiedIDs()
	}

	if s.active != nil && s.active.ID == id {
		s.active = nil
	}
	return true
}

// SetDailyDistance creates or overwrites the distance entry for the
// day. Zero is a real entry, distinct from no entry at all.
func (s *State) SetDailyDistance(day dateutil.Day, km float64) error {
	if km < 0 {
		return fmt.Errorf("distance must be non-negative, got %g", km)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.distances[day.Key()] = km
	s.store.Save(store.CollectionDistances, s.distances)
	return nil
}

// ClearDailyDistance removes the day's entry entirely. Returns false
// when there was none.
func (s *State) ClearDailyDistance(day dateutil.Day) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.distances[day.Key()]; !ok {
		return false
	}
	delete(s.distances, day.Key())
	s.store.Save(store.CollectionDistances, s.distances)
	return true
}

// Reminders returns a copy of the collection, sorted by date ascending
// with insertion order preserved among equal dates.
func (s *State) Reminders() []Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}

// RemindersOn returns the reminders for a single day, in collection order.
func (s *State) RemindersOn(day dateutil.Day) []Reminder {
	key := day.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Reminder
	for _, r := range s.reminders {
		if r.Date == key {
			out = append(out, r)
		}
	}
	return out
}

// HasReminderOn reports whether any reminder exists for the day.
func (s *State) HasReminderOn(day dateutil.Day) bool {
	key := day.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.reminders {
		if r.Date == key {
			return true
		}
	}
	return false
}

// FindReminder resolves an id or unambiguous id prefix.
func (s *State) FindReminder(idOrPrefix string) (Reminder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var match *Reminder
	for i := range s.reminders {
		if s.reminders[i].ID == idOrPrefix {
			return s.reminders[i], true
		}
		if strings.HasPrefix(s.reminders[i].ID, idOrPrefix) {
			if match != nil {
				return Reminder{}, false // ambiguous
			}
			match = &s.reminders[i]
		}
	}
	if match == nil {
		return Reminder{}, false
	}
	return *match, true
}

// Distance returns the logged distance for the day and whether an
// entry exists.
func (s *State) Distance(day dateutil.Day) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	km, ok := s.distances[day.Key()]
	return km, ok
}

// Notified reports whether the reminder id has already triggered its
// one-time notification.
func (s *State) Notified(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.notifiedIDs[id]
	return ok
}

func (s *State) sortReminders() {
	sort.SliceStable(s.reminders, func(i, j int) bool {
		return s.reminders[i].Date < s.reminders[j].Date
	})
}

// saveNotifiedIDs persists the set as an ordered slice. Callers hold s.mu.
func (s *State) saveNotifiedIDs() {
	ids := make([]string, 0, len(s.notifiedIDs))
	for id := range s.notifiedIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	s.store.Save(store.CollectionNotifiedIDs, ids)
}
