package editorconfig

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	p := Load()
	if p != Default() {
		t.Errorf("missing file should yield defaults, got %+v", p)
	}
}

func TestLoadInvalidReturnsDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	os.MkdirAll(filepath.Dir(PrefsPath), 0755)
	os.WriteFile(PrefsPath, []byte("max_undo: [not a number"), 0644)

	p := Load()
	if p != Default() {
		t.Errorf("invalid file should yield defaults, got %+v", p)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	chdir(t, t.TempDir())

	want := Prefs{
		MaxUndo:         25,
		AutosaveSeconds: 60,
		DefaultScene:    "scenes/level1.json",
		CameraSpeed:     4,
	}
	if err := Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	if got := Load(); got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadClampsUndoDepth(t *testing.T) {
	chdir(t, t.TempDir())
	os.MkdirAll(filepath.Dir(PrefsPath), 0755)
	os.WriteFile(PrefsPath, []byte("max_undo: 0\n"), 0644)

	if p := Load(); p.MaxUndo != Default().MaxUndo {
		t.Errorf("zero undo depth should fall back to default, got %d", p.MaxUndo)
	}
}
