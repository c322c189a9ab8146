package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomonobold"
)

func TestLoadEmbedded(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if s.Name() != "gomonobold" {
		t.Errorf("Name = %q", s.Name())
	}
	face, err := s.Face(87)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()
	if face.Metrics().Ascent <= 0 {
		t.Error("face has no ascent")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono-bold.ttf")
	if err := os.WriteFile(path, gomonobold.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name() != path {
		t.Errorf("Name = %q", s.Name())
	}
	if _, err := s.Face(12); err != nil {
		t.Error(err)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "bad.ttf")
	if err := os.WriteFile(garbage, []byte("not a font"), 0644); err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{filepath.Join(dir, "missing.ttf"), garbage} {
		if _, err := Load(path); err == nil {
			t.Errorf("Load(%q) expected error", path)
		}
	}
}
