// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ik5/ohrli"
	"github.com/ik5/ohrli/engine"
	"github.com/ik5/ohrli/internal/config"
	"github.com/ik5/ohrli/internal/logging"
	"github.com/ik5/ohrli/resample"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the global flags and everything built from them.
type app struct {
	cfgFile    string
	verbose    bool
	outputJSON bool
	resampler  string
	quality    string

	cfg      config.Config
	logger   *zap.Logger
	comparer *ohrli.Comparer
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "ohrli",
		Short: "Perceptual audio comparison",
		Long: `ohrli scores how close a degraded recording sounds to its reference.

Every input is mixed down to mono and resampled to 48 kHz before a
spectrogram of each is compared. The result is a distance (0 means
identical) or a mean opinion score between 1 and 5.

Examples:
  ohrli compare reference.wav encoded.mp3
  ohrli compare --distance reference.wav encoded.ogg
  ohrli batch reference.wav a.mp3 b.mp3 c.ogg
  ohrli --config ohrli.yaml --resampler cubic compare a.wav b.wav
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "YAML config file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	flags.BoolVar(&a.outputJSON, "json", false, "output as JSON")
	flags.StringVar(&a.resampler, "resampler", "", "resampler: soxr or cubic")
	flags.StringVar(&a.quality, "quality", "", "soxr quality: quick, low, medium, high or veryhigh")

	rootCmd.AddCommand(
		newCompareCmd(a),
		newDistanceCmd(a),
		newBatchCmd(a),
		newMOSCmd(a),
		newResampleCmd(a),
		newInfoCmd(a),
		newConfigCmd(a),
	)

	return rootCmd
}

// Execute runs the command line with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// setup merges the config file and flags, then builds the logger and the
// comparer. Flags win over the file.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.cfgFile != "" {
		var err error
		if cfg, err = config.Load(a.cfgFile); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("resampler") {
		cfg.Resampler = a.resampler
	}
	if flags.Changed("quality") {
		cfg.Quality = a.quality
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return err
	}
	a.logger = logger

	r, err := resample.New(cfg.Resampler, cfg.Quality)
	if err != nil {
		return err
	}

	opts := []ohrli.Option{
		ohrli.WithResampler(r),
		ohrli.WithLogger(logger),
		ohrli.WithEngine(engine.NewFactory(engine.WithMaxSteps(cfg.MaxSteps))),
	}
	if cfg.BufferSize > 0 {
		opts = append(opts, ohrli.WithBufferSize(cfg.BufferSize))
	}
	a.comparer = ohrli.New(opts...)

	logger.Debug("configured",
		zap.String("config", a.cfgFile),
		zap.String("resampler", cfg.Resampler),
		zap.String("quality", cfg.Quality),
		zap.Int("max_steps", cfg.MaxSteps),
	)

	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	return nil
}
