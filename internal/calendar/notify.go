package calendar

import (
	"time"

	"github.com/offlinelab/calendar-plus/internal/dateutil"
)

// EvaluateNotifications runs the notification rule against the given
// wall-clock time. It first clears an active notification that is no
// longer relevant (reminder gone, completed, or its date is no longer
// today), then, if none is active, promotes the first reminder in
// collection order that is due today, uncompleted and not yet
// notified. Promotion and the notified-set insert happen in the same
// critical section so the two can never disagree.
//
// The newly surfaced reminder, if any, is returned so the caller can
// render a banner.
func (s *State) EvaluateNotifications(now time.Time) (Reminder, bool) {
	today := dateutil.DayOf(now).Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		current := s.findLocked(s.active.ID)
		if current == nil || current.Date != today || current.IsCompleted {
			s.active = nil
		}
	}

	if s.active != nil {
		return Reminder{}, false
	}

	for i := range s.reminders {
		r := s.reminders[i]
		if r.Date != today || r.IsCompleted {
			continue
		}
		if _, seen := s.notifiedIDs[r.ID]; seen {
			continue
		}

		s.active = &r
		s.notifiedIDs[r.ID] = struct{}{}
		s.saveNotifiedIDs()
		return r, true
	}

	return Reminder{}, false
}

// ActiveNotification returns the reminder currently surfaced to the
// user, if any.
func (s *State) ActiveNotification() (Reminder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return Reminder{}, false
	}
	return *s.active, true
}

// DismissNotification clears the transient active pointer only; the
// notified set keeps the id so the reminder never re-triggers.
func (s *State) DismissNotification() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = nil
}

// findLocked returns the live reminder for id. Callers hold s.mu.
func (s *State) findLocked(id string) *Reminder {
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			return &s.reminders[i]
		}
	}
	return nil
}
