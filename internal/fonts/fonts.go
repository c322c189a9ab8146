// Package fonts loads the bold monospace face used for the splash wordmark.
package fonts

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
)

// Source hands out faces of one parsed font at any size.
type Source struct {
	name string
	font *opentype.Font
}

// Load parses the TrueType/OpenType file at path. An empty path selects the
// embedded Go Mono Bold.
func Load(path string) (*Source, error) {
	if path == "" {
		return Embedded(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return &Source{name: path, font: f}, nil
}

// Embedded returns Go Mono Bold.
func Embedded() *Source {
	f, err := opentype.Parse(gomonobold.TTF)
	if err != nil {
		panic(fmt.Sprintf("fonts: embedded Go Mono Bold: %v", err))
	}
	return &Source{name: "gomonobold", font: f}
}

// Name is the file path, or "gomonobold" for the embedded font.
func (s *Source) Name() string {
	return s.name
}

// Face returns a face where size is the em height in pixels. Faces are not
// safe for concurrent use; take one per render.
func (s *Source) Face(size float64) (font.Face, error) {
	face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}
