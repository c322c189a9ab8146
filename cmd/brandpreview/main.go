// brandpreview renders every brand asset in memory and shows them side by
// side on one contact sheet. Nothing is written to disk. Close the window to
// exit. It reads the same brandgen.yaml and BRANDGEN_* settings as brandgen.
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/1siamBot/brandgen/engine/brand"
	"github.com/1siamBot/brandgen/internal/config"
	"github.com/1siamBot/brandgen/internal/fonts"
	"github.com/1siamBot/brandgen/internal/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	CellSize = 320
	CellGap  = 24
	LabelH   = 20
)

// Preview implements ebiten.Game over a static sheet.
type Preview struct {
	sheet  *ebiten.Image
	labels []string
	w, h   int
}

func NewPreview(theme brand.Theme, faces brand.FaceSource) (*Preview, error) {
	assets := brand.Assets()
	rendered, err := brand.RenderAll(theme, faces, assets)
	if err != nil {
		return nil, err
	}
	imgs := make([]image.Image, len(rendered))
	labels := make([]string, len(assets))
	for i, img := range rendered {
		imgs[i] = img
		labels[i] = assets[i].File
	}

	sheet := brand.ContactSheet(imgs, CellSize, CellGap, theme.Background)
	b := sheet.Bounds()
	return &Preview{
		sheet:  ebiten.NewImageFromImage(sheet),
		labels: labels,
		w:      b.Dx(),
		h:      b.Dy() + LabelH,
	}, nil
}

func (p *Preview) Update() error {
	return nil
}

func (p *Preview) Draw(screen *ebiten.Image) {
	screen.DrawImage(p.sheet, nil)
	for i, l := range p.labels {
		x := CellGap + i*(CellSize+CellGap)
		ebitenutil.DebugPrintAt(screen, l, x, CellSize+CellGap+2)
	}
}

func (p *Preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.w, p.h
}

// bindConfig loads brandgen's settings with --font taking precedence.
func bindConfig(cmd *cobra.Command, cfgFile string) (*viper.Viper, error) {
	v, err := config.New(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := v.BindPFlag("font_path", cmd.Flags().Lookup("font")); err != nil {
		return nil, err
	}
	return v, nil
}

// loadSettings resolves config and font exactly as brandgen does.
func loadSettings(v *viper.Viper) (config.Config, *fonts.Source, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, nil, err
	}
	faces, err := fonts.Load(cfg.FontPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, faces, nil
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		verbose bool
		v       *viper.Viper
	)

	cmd := &cobra.Command{
		Use:           "brandpreview",
		Short:         "Show the GitGud brand assets in a window",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			v, err = bindConfig(cmd, cfgFile)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, faces, err := loadSettings(v)
			if err != nil {
				return err
			}
			if verbose {
				cfg.Logging.Level = "debug"
			}
			log := logger.Setup(cfg.Logging, cmd.ErrOrStderr())

			p, err := NewPreview(brand.DefaultTheme(), faces)
			if err != nil {
				return err
			}
			log.Debug().Str("font", faces.Name()).Int("width", p.w).Int("height", p.h).Msg("contact sheet ready")

			ebiten.SetWindowSize(p.w, p.h)
			ebiten.SetWindowTitle("GitGud brand assets")
			return ebiten.RunGame(p)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgFile, "config", "", "config file (default ./brandgen.yaml if present)")
	f.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	f.String("font", "", "TTF/OTF bold monospace font (default embedded Go Mono Bold)")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
