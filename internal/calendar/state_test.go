package calendar

import (
	"testing"
	"time"

	"github.com/offlinelab/calendar-plus/internal/dateutil"
	"github.com/offlinelab/calendar-plus/internal/store"
)

func newTestState(t *testing.T) (*State, *store.Store) {
	t.Helper()
	backend, err := store.NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileBackend failed: %v", err)
	}
	t.Cleanup(func() { backend.Close() })
	st := store.New(backend)
	return Load(st), st
}

func day(t *testing.T, key string) dateutil.Day {
	t.Helper()
	d, err := dateutil.ParseDay(key)
	if err != nil {
		t.Fatalf("bad day key %q: %v", key, err)
	}
	return d
}

func TestAddReminderKeepsCollectionSorted(t *testing.T) {
	s, _ := newTestState(t)

	keys := []string{"2024-06-20", "2024-06-10", "2024-06-15", "2024-06-10", "2024-01-01"}
	for _, k := range keys {
		if _, ok := s.AddReminder(day(t, k), "note for "+k); !ok {
			t.Fatalf("AddReminder(%s) rejected", k)
		}
	}

	got := s.Reminders()
	if len(got) != len(keys) {
		t.Fatalf("got %d reminders, want %d", len(got), len(keys))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Date > got[i].Date {
			t.Errorf("collection not sorted at %d: %s > %s", i, got[i-1].Date, got[i].Date)
		}
	}
}

func TestAddReminderSameDateKeepsInsertionOrder(t *testing.T) {
	s, _ := newTestState(t)
	d := day(t, "2024-06-15")

	first, _ := s.AddReminder(d, "first")
	second, _ := s.AddReminder(d, "second")

	got := s.Reminders()
	if got[0].ID != first.ID || got[1].ID != second.ID {
		t.Errorf("insertion order lost among equal dates: got %q then %q", got[0].Text, got[1].Text)
	}
}

func TestAddReminderRejectsEmptyText(t *testing.T) {
	s, _ := newTestState(t)

	if _, ok := s.AddReminder(day(t, "2024-06-15"), "   \t "); ok {
		t.Errorf("whitespace-only text was accepted")
	}
	if len(s.Reminders()) != 0 {
		t.Errorf("collection mutated by rejected add")
	}
}

func TestAddReminderTrimsText(t *testing.T) {
	s, _ := newTestState(t)

	r, ok := s.AddReminder(day(t, "2024-06-15"), "  Call Bob  ")
	if !ok {
		t.Fatalf("AddReminder rejected valid text")
	}
	if r.Text != "Call Bob" {
		t.Errorf("text not trimmed: got %q", r.Text)
	}
	if r.IsCompleted {
		t.Errorf("new reminder created completed")
	}
	if r.ID == "" {
		t.Errorf("new reminder has empty id")
	}
}

func TestToggleReminderCompleteIsItsOwnInverse(t *testing.T) {
	s, _ := newTestState(t)
	r, _ := s.AddReminder(day(t, "2024-06-15"), "Call Bob")

	if !s.ToggleReminderComplete(r.ID) {
		t.Fatalf("toggle of existing reminder failed")
	}
	if got := s.Reminders()[0]; !got.IsCompleted {
		t.Errorf("first toggle: IsCompleted = false, want true")
	}

	s.ToggleReminderComplete(r.ID)
	if got := s.Reminders()[0]; got.IsCompleted {
		t.Errorf("second toggle: IsCompleted = true, want false")
	}

	if s.ToggleReminderComplete("no-such-id") {
		t.Errorf("toggle of unknown id reported success")
	}
}

func TestDeleteReminderCascadesToNotifiedSet(t *testing.T) {
	s, _ := newTestState(t)
	today := time.Now()
	r, _ := s.AddReminder(dateutil.DayOf(today), "due today")

	if _, surfaced := s.EvaluateNotifications(today); !surfaced {
		t.Fatalf("reminder due today was not surfaced")
	}
	if !s.Notified(r.ID) {
		t.Fatalf("surfaced reminder missing from notified set")
	}

	if !s.DeleteReminder(r.ID) {
		t.Fatalf("delete of existing reminder failed")
	}
	if s.Notified(r.ID) {
		t.Errorf("notified set still contains deleted id")
	}
	if _, active := s.ActiveNotification(); active {
		t.Errorf("active notification survived deletion of its reminder")
	}

	// Deleted ids never surface again.
	if _, surfaced := s.EvaluateNotifications(today); surfaced {
		t.Errorf("evaluation surfaced a deleted reminder")
	}

	if s.DeleteReminder("no-such-id") {
		t.Errorf("delete of unknown id reported success")
	}
}

func TestDailyDistanceZeroDistinctFromAbsent(t *testing.T) {
	s, _ := newTestState(t)
	d := day(t, "2024-06-15")

	if _, ok := s.Distance(d); ok {
		t.Fatalf("unset day reported an entry")
	}

	if err := s.SetDailyDistance(d, 0); err != nil {
		t.Fatalf("SetDailyDistance(0) failed: %v", err)
	}
	km, ok := s.Distance(d)
	if !ok {
		t.Fatalf("day with distance 0 reported as absent")
	}
	if km != 0 {
		t.Errorf("got %g, want 0", km)
	}
}

func TestSetDailyDistanceRejectsNegative(t *testing.T) {
	s, _ := newTestState(t)
	d := day(t, "2024-06-15")

	if err := s.SetDailyDistance(d, -1.5); err == nil {
		t.Errorf("negative distance accepted")
	}
	if _, ok := s.Distance(d); ok {
		t.Errorf("rejected set left an entry behind")
	}
}

func TestClearDailyDistanceRemovesEntry(t *testing.T) {
	s, _ := newTestState(t)
	d := day(t, "2024-06-15")

	if err := s.SetDailyDistance(d, 5.3); err != nil {
		t.Fatalf("SetDailyDistance failed: %v", err)
	}
	if !s.ClearDailyDistance(d) {
		t.Fatalf("clear of existing entry failed")
	}
	if _, ok := s.Distance(d); ok {
		t.Errorf("entry still present after clear, want absent (not 0)")
	}
	if s.ClearDailyDistance(d) {
		t.Errorf("clear of absent entry reported success")
	}
}

func TestStateRoundTripThroughStore(t *testing.T) {
	s, st := newTestState(t)

	a, _ := s.AddReminder(day(t, "2024-06-15"), "Call Bob")
	b, _ := s.AddReminder(day(t, "2024-06-10"), "Pay rent")
	s.ToggleReminderComplete(b.ID)
	s.SetDailyDistance(day(t, "2024-06-15"), 5.3)

	// Simulate a restart: a fresh State over the same store.
	reloaded := Load(st)

	got := reloaded.Reminders()
	if len(got) != 2 {
		t.Fatalf("reloaded %d reminders, want 2", len(got))
	}
	if got[0].ID != b.ID || !got[0].IsCompleted {
		t.Errorf("first reloaded reminder: got %+v, want completed %q", got[0], b.ID)
	}
	if got[1].ID != a.ID || got[1].Text != "Call Bob" {
		t.Errorf("second reloaded reminder: got %+v, want %q", got[1], a.ID)
	}

	km, ok := reloaded.Distance(day(t, "2024-06-15"))
	if !ok || km != 5.3 {
		t.Errorf("reloaded distance: got %g/%v, want 5.3/true", km, ok)
	}

	if _, active := reloaded.ActiveNotification(); active {
		t.Errorf("transient active notification survived a reload")
	}
}

func TestFindReminderByPrefix(t *testing.T) {
	s, _ := newTestState(t)
	r, _ := s.AddReminder(day(t, "2024-06-15"), "Call Bob")

	got, ok := s.FindReminder(r.ID[:8])
	if !ok || got.ID != r.ID {
		t.Errorf("prefix lookup failed: got %v/%v", got.ID, ok)
	}
	if _, ok := s.FindReminder("zzzz"); ok {
		t.Errorf("lookup of unknown prefix reported success")
	}
}
