package brand

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/1siamBot/brandgen/engine/canvas"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Result describes one written asset.
type Result struct {
	Asset   Asset
	Path    string
	Bytes   int64
	SHA256  string
	Elapsed time.Duration
}

// Generator renders assets and writes them as opaque PNGs into OutDir.
type Generator struct {
	Theme  Theme
	Faces  FaceSource
	OutDir string

	// Jobs > 1 renders assets concurrently. Composers share no state, so the
	// output is identical either way.
	Jobs int

	Log zerolog.Logger

	// Progress receives one line per written file. Nil discards.
	Progress io.Writer
}

// Run renders and writes every asset, stopping at the first failure. Files
// already written are left in place. Results and progress lines come in the
// order of assets regardless of Jobs.
func (g *Generator) Run(ctx context.Context, assets []Asset) ([]Result, error) {
	if err := os.MkdirAll(g.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	rep := newReporter(g.Log, g.Progress, len(assets))
	jobs := g.Jobs
	if jobs <= 1 {
		for i, a := range assets {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			res, err := g.generate(a, rep)
			if err != nil {
				return nil, err
			}
			rep.finish(i, res)
		}
		return rep.results, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)
	for i, a := range assets {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := g.generate(a, rep)
			if err != nil {
				return err
			}
			rep.finish(i, res)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return rep.results, nil
}

func (g *Generator) generate(a Asset, rep *reporter) (Result, error) {
	start := time.Now()
	rep.started(a)

	img, err := a.Render(g.Theme, g.Faces)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", a.Name, err)
	}

	path := filepath.Join(g.OutDir, a.File)
	n, sum, err := savePNG(path, img)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", a.Name, err)
	}
	return Result{Asset: a, Path: path, Bytes: n, SHA256: sum, Elapsed: time.Since(start)}, nil
}

// reporter serialises log events and progress lines from concurrent
// renders. A result is reported once every asset before it has finished.
type reporter struct {
	mu      sync.Mutex
	log     zerolog.Logger
	out     io.Writer
	results []Result
	done    []bool
	next    int
}

func newReporter(log zerolog.Logger, out io.Writer, n int) *reporter {
	return &reporter{log: log, out: out, results: make([]Result, n), done: make([]bool, n)}
}

func (r *reporter) started(a Asset) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log.Debug().Str("asset", a.Name).Int("size", a.Size).Msg("rendering")
}

func (r *reporter) finish(i int, res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[i] = res
	r.done[i] = true
	for r.next < len(r.done) && r.done[r.next] {
		r.report(r.results[r.next])
		r.next++
	}
}

func (r *reporter) report(res Result) {
	a := res.Asset
	r.log.Info().
		Str("file", a.File).
		Str("dims", fmt.Sprintf("%dx%d", a.Size, a.Size)).
		Str("bytes", humanize.Bytes(uint64(res.Bytes))).
		Dur("elapsed", res.Elapsed).
		Msg("asset written")
	if r.out != nil {
		fmt.Fprintf(r.out, "  %s\n", a.File)
	}
}

// RenderAll composes assets in memory without writing them.
func RenderAll(t Theme, faces FaceSource, assets []Asset) ([]*image.NRGBA, error) {
	out := make([]*image.NRGBA, 0, len(assets))
	for _, a := range assets {
		img, err := a.Render(t, faces)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.Name, err)
		}
		out = append(out, img)
	}
	return out, nil
}

// savePNG flattens img and encodes it to path, returning the byte count and
// SHA-256 of what was written.
func savePNG(path string, img *image.NRGBA) (int64, string, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, "", err
	}
	defer f.Close()

	h := sha256.New()
	cw := &countingWriter{w: io.MultiWriter(f, h)}
	if err := png.Encode(cw, canvas.Flatten(img)); err != nil {
		return 0, "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return 0, "", err
	}
	return cw.n, hex.EncodeToString(h.Sum(nil)), nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
