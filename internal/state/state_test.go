package state

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Radius float64 `json:"radius"`
	Name   string  `json:"name"`
}

func TestOpenMissingFile(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "nope", "state.json"))
	if err != nil {
		t.Fatalf("Open missing: %v", err)
	}
	var v sample
	ok, err := s.Get("app", &v)
	if ok || err != nil {
		t.Errorf("Get on empty store = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "state.json")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set("app", sample{Radius: 0.5, Name: "circle"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	var got sample
	ok, err := reopened.Get("app", &got)
	if !ok || err != nil {
		t.Fatalf("Get = (%v, %v)", ok, err)
	}
	if got != (sample{Radius: 0.5, Name: "circle"}) {
		t.Errorf("Get = %+v", got)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("dir has %d entries after save, want only the state file", len(entries))
	}
}

func TestSaveSkipsCleanStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, _ := Open(path)
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("clean Save created a file (stat err %v)", err)
	}
}

func TestOpenCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("Open corrupt err = %v, want parse error", err)
	}
}

func TestGetTypeMismatch(t *testing.T) {
	s := Memory()
	_ = s.Set("app", "a string")
	var v sample
	ok, err := s.Get("app", &v)
	if !ok || err == nil {
		t.Errorf("Get mismatch = (%v, %v), want (true, error)", ok, err)
	}
}

func TestDeleteAndKeys(t *testing.T) {
	s := Memory()
	_ = s.Set("b", 1)
	_ = s.Set("a", 2)
	if got := strings.Join(s.Keys(), ","); got != "a,b" {
		t.Errorf("Keys = %s, want a,b", got)
	}
	s.Delete("a")
	if got := strings.Join(s.Keys(), ","); got != "b" {
		t.Errorf("Keys after delete = %s, want b", got)
	}
	if err := s.Save(); err != nil {
		t.Errorf("Save on memory store: %v", err)
	}
}
