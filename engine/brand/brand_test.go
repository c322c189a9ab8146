package brand

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/1siamBot/brandgen/engine/canvas"
	"github.com/1siamBot/brandgen/internal/fonts"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"gopkg.in/yaml.v3"
)

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func TestIconFullSize(t *testing.T) {
	if testing.Short() {
		t.Skip("full-resolution render")
	}
	theme := DefaultTheme()
	img := canvas.Flatten(Icon(theme, 1024))

	if img.Bounds() != image.Rect(0, 0, 1024, 1024) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if !img.Opaque() {
		t.Fatal("icon is not opaque")
	}

	// The far corner lies outside the gradient, brackets and glow; only the
	// hex mesh, scanlines and vignette touch it.
	bg := theme.Background
	c := img.RGBAAt(1, 1)
	if !near(c.R, bg.R, 20) || !near(c.G, bg.G, 20) || !near(c.B, bg.B, 20) {
		t.Errorf("corner = %v, want near background %v", c, bg)
	}

	// The glyph body is lit neon.
	chev := IconChevron(1024)
	body := img.RGBAAt(int(chev.CX+chev.W/4), int(chev.CY))
	if body.G < 200 {
		t.Errorf("chevron body = %v, want bright green", body)
	}
}

func TestFavicon(t *testing.T) {
	theme := DefaultTheme()
	img := canvas.Flatten(Favicon(theme, 48))
	if img.Bounds() != image.Rect(0, 0, 48, 48) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if !img.Opaque() {
		t.Fatal("favicon is not opaque")
	}

	bg := color.RGBA{theme.Background.R, theme.Background.G, theme.Background.B, 255}
	box := FaviconChevron(48).Bounds().Intersect(img.Bounds())
	lit := false
	for y := box.Min.Y; y < box.Max.Y && !lit; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				lit = true
				break
			}
		}
	}
	if !lit {
		t.Error("no glyph pixel inside the chevron bounding box")
	}
}

func TestFaviconCursorIsSolidNeon(t *testing.T) {
	theme := DefaultTheme()
	cur := FaviconCursor(48)
	if cur != image.Rect(37, 21, 42, 30) {
		t.Fatalf("cursor = %v", cur)
	}
	img := canvas.Flatten(Favicon(theme, 48))
	neon := color.RGBA{theme.Neon.R, theme.Neon.G, theme.Neon.B, 255}
	for y := cur.Min.Y; y < cur.Max.Y; y++ {
		for x := cur.Min.X; x < cur.Max.X; x++ {
			if got := img.RGBAAt(x, y); got != neon {
				t.Fatalf("cursor pixel (%d,%d) = %v, want %v", x, y, got, neon)
			}
		}
	}
	// The block has hard edges: the glyph glow alone never reaches full neon here.
	for _, p := range []image.Point{{cur.Max.X, cur.Min.Y + 4}, {cur.Min.X + 2, cur.Max.Y}} {
		if img.RGBAAt(p.X, p.Y) == neon {
			t.Errorf("pixel %v outside the cursor is solid neon", p)
		}
	}
}

func TestAdaptiveChevronInSafeZone(t *testing.T) {
	size := 1024
	chev := AdaptiveChevron(size)
	inset := float64(size) * (1 - safeZone) / 2
	b := chev.Bounds()
	if float64(b.Min.Y) < inset || float64(b.Max.Y) > float64(size)-inset {
		t.Errorf("chevron %v leaves the vertical safe zone (inset %.0f)", b, inset)
	}
	if float64(b.Min.X) < inset {
		t.Errorf("chevron %v leaves the safe zone on the left", b)
	}
}

func TestAdaptiveIconSmall(t *testing.T) {
	img := AdaptiveIcon(DefaultTheme(), 128)
	if !img.Opaque() || img.Bounds().Dx() != 128 {
		t.Fatalf("bad canvas: opaque=%v bounds=%v", img.Opaque(), img.Bounds())
	}
	chev := AdaptiveChevron(128)
	if g := img.NRGBAAt(int(chev.CX+chev.W/4), int(chev.CY)).G; g < 200 {
		t.Errorf("chevron body green = %d", g)
	}
}

func TestSplashDeterministic(t *testing.T) {
	theme := DefaultTheme()
	faces := fonts.Embedded()
	render := func() *image.NRGBA {
		img, err := Splash(theme, 256, faces, rand.New(rand.NewSource(theme.RainSeed)))
		if err != nil {
			t.Fatal(err)
		}
		return img
	}
	a, b := render(), render()
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("splash differs between runs with the same seed")
	}
}

func TestSplashLabelCentred(t *testing.T) {
	theme := DefaultTheme()
	face, err := fonts.Embedded().Face(87)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()

	label := SplashLabel(theme, 1024, face)
	left := label.X
	right := 1024 - (label.X + label.Width())
	if d := left - right; d > 0.5 || d < -0.5 {
		t.Errorf("label off centre: left %v right %v", left, right)
	}
	if len(label.Runs) != 3 || label.Runs[1].Text != "git" || label.Runs[1].Color != theme.White {
		t.Errorf("runs = %+v", label.Runs)
	}
}

type failingFaces struct{}

func (failingFaces) Face(float64) (font.Face, error) { return nil, os.ErrNotExist }

func TestSelect(t *testing.T) {
	tests := []struct {
		names []string
		want  []string
		err   bool
	}{
		{nil, []string{"icon", "splash", "adaptive-icon", "favicon"}, false},
		{[]string{"favicon", "icon"}, []string{"icon", "favicon"}, false},
		{[]string{" splash ", ""}, []string{"splash"}, false},
		{[]string{""}, []string{"icon", "splash", "adaptive-icon", "favicon"}, false},
		{[]string{"logo"}, nil, true},
	}
	for _, tt := range tests {
		got, err := Select(tt.names)
		if tt.err {
			if err == nil {
				t.Errorf("Select(%q) expected error", tt.names)
			}
			continue
		}
		if err != nil {
			t.Errorf("Select(%q): %v", tt.names, err)
			continue
		}
		var names []string
		for _, a := range got {
			names = append(names, a.Name)
		}
		if strings.Join(names, ",") != strings.Join(tt.want, ",") {
			t.Errorf("Select(%q) = %v, want %v", tt.names, names, tt.want)
		}
	}
}

func TestAssetsFixedFiles(t *testing.T) {
	want := map[string]int{
		"icon.png":          1024,
		"splash-icon.png":   1024,
		"adaptive-icon.png": 1024,
		"favicon.png":       48,
	}
	for _, a := range Assets() {
		if want[a.File] != a.Size {
			t.Errorf("%s: size %d", a.File, a.Size)
		}
		delete(want, a.File)
	}
	if len(want) != 0 {
		t.Errorf("missing assets: %v", want)
	}
}

func tinyAssets() []Asset {
	return []Asset{
		{Name: "tiny-a", File: "a.png", Size: 16, render: pure(Favicon)},
		{Name: "tiny-b", File: "b.png", Size: 24, render: pure(Favicon)},
		{Name: "tiny-c", File: "c.png", Size: 32, render: pure(Favicon)},
	}
}

func TestGeneratorWritesOpaquePNGs(t *testing.T) {
	for _, jobs := range []int{1, 3} {
		dir := filepath.Join(t.TempDir(), "out")
		var progress bytes.Buffer
		g := &Generator{
			Theme:    DefaultTheme(),
			Faces:    fonts.Embedded(),
			OutDir:   dir,
			Jobs:     jobs,
			Log:      zerolog.Nop(),
			Progress: &progress,
		}
		results, err := g.Run(context.Background(), tinyAssets())
		if err != nil {
			t.Fatalf("jobs=%d: %v", jobs, err)
		}
		if len(results) != 3 {
			t.Fatalf("jobs=%d: %d results", jobs, len(results))
		}
		for i, r := range results {
			if r.Asset.Name != tinyAssets()[i].Name {
				t.Errorf("jobs=%d: result %d is %s", jobs, i, r.Asset.Name)
			}
			f, err := os.Open(r.Path)
			if err != nil {
				t.Fatal(err)
			}
			img, err := png.Decode(f)
			f.Close()
			if err != nil {
				t.Fatal(err)
			}
			if img.Bounds().Dx() != r.Asset.Size {
				t.Errorf("%s: width %d", r.Path, img.Bounds().Dx())
			}
			if _, ok := img.(*image.RGBA); !ok {
				t.Errorf("%s decoded as %T, want RGB", r.Path, img)
			}
			if fi, _ := os.Stat(r.Path); fi.Size() != r.Bytes {
				t.Errorf("%s: reported %d bytes, file has %d", r.Path, r.Bytes, fi.Size())
			}
			if len(r.SHA256) != 64 {
				t.Errorf("sha256 = %q", r.SHA256)
			}
			if !strings.Contains(progress.String(), "  "+r.Asset.File+"\n") {
				t.Errorf("progress missing %s: %q", r.Asset.File, progress.String())
			}
		}
	}
}

func TestGeneratorConcurrentReportsInOrder(t *testing.T) {
	// Mixed sizes so renders finish out of order.
	var assets []Asset
	var want strings.Builder
	for i, size := range []int{64, 12, 48, 16, 56, 8, 40, 20} {
		name := string(rune('a' + i))
		assets = append(assets, Asset{Name: name, File: name + ".png", Size: size, render: pure(Favicon)})
		want.WriteString("  " + name + ".png\n")
	}

	var progress, logs bytes.Buffer
	g := &Generator{
		Theme:    DefaultTheme(),
		OutDir:   t.TempDir(),
		Jobs:     3,
		Log:      zerolog.New(&logs).Level(zerolog.DebugLevel),
		Progress: &progress,
	}
	results, err := g.Run(context.Background(), assets)
	if err != nil {
		t.Fatal(err)
	}
	if progress.String() != want.String() {
		t.Errorf("progress = %q, want %q", progress.String(), want.String())
	}
	for i, r := range results {
		if r.Asset.Name != assets[i].Name {
			t.Errorf("result %d is %s", i, r.Asset.Name)
		}
	}

	// One debug and one info event per asset, each a whole JSON line.
	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	if len(lines) != 2*len(assets) {
		t.Fatalf("%d log lines, want %d", len(lines), 2*len(assets))
	}
	for _, l := range lines {
		if !strings.HasPrefix(l, "{") || !strings.HasSuffix(l, "}") {
			t.Errorf("interleaved log line %q", l)
		}
	}
}

func TestGeneratorOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}
	g := &Generator{Theme: DefaultTheme(), OutDir: dir, Log: zerolog.Nop()}
	if _, err := g.Run(context.Background(), tinyAssets()[:1]); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if bytes.HasPrefix(data, []byte("stale")) {
		t.Error("existing file was not overwritten")
	}
}

func TestGeneratorFailsFast(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	g := &Generator{Theme: DefaultTheme(), OutDir: filepath.Join(blocker, "out"), Log: zerolog.Nop()}
	if _, err := g.Run(context.Background(), tinyAssets()); err == nil {
		t.Error("expected error when the output dir cannot be created")
	}
}

func TestGeneratorFontError(t *testing.T) {
	splash, err := Select([]string{"splash"})
	if err != nil {
		t.Fatal(err)
	}
	g := &Generator{Theme: DefaultTheme(), Faces: failingFaces{}, OutDir: t.TempDir(), Log: zerolog.Nop()}
	if _, err := g.Run(context.Background(), splash); err == nil {
		t.Error("expected font error to abort the run")
	}
}

func TestGeneratorCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := &Generator{Theme: DefaultTheme(), OutDir: t.TempDir(), Log: zerolog.Nop()}
	if _, err := g.Run(ctx, tinyAssets()); err == nil {
		t.Error("expected cancelled context to stop the run")
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	g := &Generator{Theme: DefaultTheme(), OutDir: dir, Log: zerolog.Nop()}
	results, err := g.Run(context.Background(), tinyAssets())
	if err != nil {
		t.Fatal(err)
	}
	path, err := WriteManifest(dir, results)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if len(m.Assets) != 3 {
		t.Fatalf("manifest has %d assets", len(m.Assets))
	}
	got := m.Assets[1]
	if got.Name != "tiny-b" || got.File != "b.png" || got.Width != 24 || got.Height != 24 {
		t.Errorf("entry = %+v", got)
	}
	if got.SHA256 != results[1].SHA256 || got.Bytes != results[1].Bytes {
		t.Errorf("entry checksum/bytes mismatch: %+v", got)
	}
}

func TestContactSheet(t *testing.T) {
	theme := DefaultTheme()
	imgs := []image.Image{Favicon(theme, 48), Favicon(theme, 32)}
	sheet := ContactSheet(imgs, 64, 8, theme.Background)
	if sheet.Bounds() != image.Rect(0, 0, 8+2*(64+8), 64+16) {
		t.Fatalf("bounds = %v", sheet.Bounds())
	}
	if got := sheet.RGBAAt(2, 2); got != (color.RGBA{15, 15, 26, 255}) {
		t.Errorf("gap pixel = %v", got)
	}
}

func TestRenderAll(t *testing.T) {
	imgs, err := RenderAll(DefaultTheme(), fonts.Embedded(), tinyAssets())
	if err != nil {
		t.Fatal(err)
	}
	for i, img := range imgs {
		if img.Bounds().Dx() != tinyAssets()[i].Size {
			t.Errorf("image %d: %v", i, img.Bounds())
		}
	}
}
