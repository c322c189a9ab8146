package brand

import (
	"fmt"
	"image"
	"math/rand"
	"strings"
)

// Asset is one generated file.
type Asset struct {
	Name string
	File string
	Size int

	render func(t Theme, size int, faces FaceSource) (*image.NRGBA, error)
}

// Render composes the asset at its fixed size.
func (a Asset) Render(t Theme, faces FaceSource) (*image.NRGBA, error) {
	return a.render(t, a.Size, faces)
}

func pure(fn func(Theme, int) *image.NRGBA) func(Theme, int, FaceSource) (*image.NRGBA, error) {
	return func(t Theme, size int, _ FaceSource) (*image.NRGBA, error) {
		return fn(t, size), nil
	}
}

// Assets lists every asset in generation order.
func Assets() []Asset {
	return []Asset{
		{Name: "icon", File: "icon.png", Size: 1024, render: pure(Icon)},
		{Name: "splash", File: "splash-icon.png", Size: 1024, render: func(t Theme, size int, faces FaceSource) (*image.NRGBA, error) {
			return Splash(t, size, faces, rand.New(rand.NewSource(t.RainSeed)))
		}},
		{Name: "adaptive-icon", File: "adaptive-icon.png", Size: 1024, render: pure(AdaptiveIcon)},
		{Name: "favicon", File: "favicon.png", Size: 48, render: pure(Favicon)},
	}
}

// Select returns the named assets in generation order. No names selects all.
func Select(names []string) ([]Asset, error) {
	all := Assets()
	if len(names) == 0 {
		return all, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			want[n] = true
		}
	}
	if len(want) == 0 {
		return all, nil
	}
	var out []Asset
	for _, a := range all {
		if want[a.Name] {
			out = append(out, a)
			delete(want, a.Name)
		}
	}
	for n := range want {
		return nil, fmt.Errorf("unknown asset %q", n)
	}
	return out, nil
}
