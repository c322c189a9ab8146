package main

import (
	"fmt"

	"github.com/1siamBot/brandgen/engine/brand"
	"github.com/1siamBot/brandgen/internal/config"
	"github.com/1siamBot/brandgen/internal/fonts"
	"github.com/1siamBot/brandgen/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		verbose bool
		v       *viper.Viper
	)

	cmd := &cobra.Command{
		Use:           "brandgen",
		Short:         "Generate the GitGud brand PNG assets",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			v, err = config.New(cfgFile)
			if err != nil {
				return err
			}
			for _, name := range []string{"output_dir", "font_path", "jobs", "manifest", "only"} {
				if err := v.BindPFlag(name, cmd.Flags().Lookup(flagName(name))); err != nil {
					return err
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			if verbose {
				cfg.Logging.Level = "debug"
			}
			log := logger.Setup(cfg.Logging, cmd.ErrOrStderr())
			return run(cmd, cfg, log)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgFile, "config", "", "config file (default ./brandgen.yaml if present)")
	f.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	f.StringP("out", "o", "assets/images", "output directory")
	f.String("font", "", "TTF/OTF bold monospace font (default embedded Go Mono Bold)")
	f.IntP("jobs", "j", 1, "assets rendered concurrently")
	f.Bool("manifest", false, "write "+brand.ManifestFile+" next to the assets")
	f.StringSlice("only", nil, "render only these assets (icon, splash, adaptive-icon, favicon)")
	return cmd
}

func flagName(key string) string {
	switch key {
	case "output_dir":
		return "out"
	case "font_path":
		return "font"
	}
	return key
}

func run(cmd *cobra.Command, cfg config.Config, log zerolog.Logger) error {
	assets, err := brand.Select(cfg.Only)
	if err != nil {
		return err
	}
	faces, err := fonts.Load(cfg.FontPath)
	if err != nil {
		return err
	}
	log.Debug().Str("font", faces.Name()).Str("out", cfg.OutputDir).Int("jobs", cfg.Jobs).Msg("starting")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Generating GitGud brand assets...")
	fmt.Fprintln(out)

	gen := &brand.Generator{
		Theme:    brand.DefaultTheme(),
		Faces:    faces,
		OutDir:   cfg.OutputDir,
		Jobs:     cfg.Jobs,
		Log:      log,
		Progress: out,
	}
	results, err := gen.Run(cmd.Context(), assets)
	if err != nil {
		return err
	}

	if cfg.Manifest {
		path, err := brand.WriteManifest(cfg.OutputDir, results)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %s\n", brand.ManifestFile)
		log.Info().Str("file", path).Msg("manifest written")
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Done.")
	return nil
}
