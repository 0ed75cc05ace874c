package store

import (
	"os"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pulse", "state.json")
	return Open(path), path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s, _ := testStore(t)
	st := s.Load()
	if st.Shape != "circle" || st.Best != 0 {
		t.Fatalf("defaults = %+v, want shape circle best 0", st)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s, _ := testStore(t)
	if err := s.Save(State{Shape: "triangle", Best: 12}); err != nil {
		t.Fatalf("save: %v", err)
	}
	st := s.Load()
	if st.Shape != "triangle" || st.Best != 12 {
		t.Fatalf("loaded = %+v, want shape triangle best 12", st)
	}
}

func TestLoadCorruptFileYieldsDefaults(t *testing.T) {
	s, path := testStore(t)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	st := s.Load()
	if st.Shape != "circle" || st.Best != 0 {
		t.Fatalf("corrupt load = %+v, want defaults", st)
	}
}

func TestLoadNormalizesBadValues(t *testing.T) {
	s, _ := testStore(t)
	if err := s.Save(State{Shape: "dodecahedron", Best: -5}); err != nil {
		t.Fatalf("save: %v", err)
	}
	st := s.Load()
	if st.Shape != "circle" {
		t.Fatalf("unknown shape loaded as %q, want circle", st.Shape)
	}
	if st.Best != 0 {
		t.Fatalf("negative best loaded as %d, want 0", st.Best)
	}
}
