package store

import (
	"path/filepath"
	"testing"
)

type record struct {
	ID   string  `json:"id"`
	Text string  `json:"text"`
	KM   float64 `json:"km"`
}

func runBackendTests(t *testing.T, b Backend) {
	t.Helper()

	// Absent collection loads as nil without error.
	data, err := b.Load("neverSaved")
	if err != nil {
		t.Fatalf("Load of absent collection failed: %v", err)
	}
	if data != nil {
		t.Errorf("Load of absent collection: got %q, want nil", data)
	}

	if err := b.Save("things", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err = b.Load("things")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != `[{"id":"a"}]` {
		t.Errorf("Load: got %q, want %q", data, `[{"id":"a"}]`)
	}

	// Save replaces the whole blob.
	if err := b.Save("things", []byte(`[]`)); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	data, _ = b.Load("things")
	if string(data) != `[]` {
		t.Errorf("Load after overwrite: got %q, want %q", data, `[]`)
	}
}

func TestFileBackend(t *testing.T) {
	b, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileBackend failed: %v", err)
	}
	defer b.Close()
	runBackendTests(t, b)
}

func TestSQLiteBackend(t *testing.T) {
	b, err := NewSQLiteBackend(filepath.Join(t.TempDir(), "calendar.db"))
	if err != nil {
		t.Fatalf("NewSQLiteBackend failed: %v", err)
	}
	defer b.Close()
	runBackendTests(t, b)
}

func TestStoreRoundTrip(t *testing.T) {
	b, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileBackend failed: %v", err)
	}
	s := New(b)

	in := []record{{ID: "r1", Text: "Call Bob", KM: 5.3}}
	s.Save("records", in)

	var out []record
	if ok := s.Load("records", &out); !ok {
		t.Fatalf("Load reported no data after Save")
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Errorf("round trip: got %+v, want %+v", out, in)
	}
}

func TestStoreLoadDefaults(t *testing.T) {
	b, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileBackend failed: %v", err)
	}
	s := New(b)

	// Absent collection: value stays at empty default.
	var out []record
	if ok := s.Load("missing", &out); ok {
		t.Errorf("Load of missing collection reported data")
	}
	if len(out) != 0 {
		t.Errorf("missing collection: got %+v, want empty", out)
	}

	// Corrupt blob: also degrades to empty default, no panic, no error.
	if err := b.Save("broken", []byte(`{not json`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	out = nil
	if ok := s.Load("broken", &out); ok {
		t.Errorf("Load of corrupt collection reported data")
	}
	if len(out) != 0 {
		t.Errorf("corrupt collection: got %+v, want empty", out)
	}
}
