// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"os"

	"github.com/ik5/ohrli"
	"github.com/ik5/ohrli/engine"
	"github.com/ik5/ohrli/formats/wav"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newResampleCmd(a *app) *cobra.Command {
	var rate int

	cmd := &cobra.Command{
		Use:   "resample <input> <output.wav>",
		Short: "Write a 16-bit mono WAV at a new sample rate",
		Long: `Decode input, mix it down to mono, resample it and write a 16-bit PCM
WAV file. The default rate is the one comparisons run at.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rate <= 0 {
				return fmt.Errorf("rate must be positive, got %d", rate)
			}

			in, out := args[0], args[1]
			dec, err := ohrli.DefaultRegistry().ForPath(in)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}

			f, err := os.Open(in)
			if err != nil {
				return fmt.Errorf("%w", err)
			}
			defer f.Close()

			src, err := dec.Decode(f)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			defer src.Close()

			pcm16, outRate, err := a.comparer.ResampleToMono16(src, rate)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}

			w, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("%w", err)
			}
			if err := wav.WriteWAV16(w, outRate, pcm16); err != nil {
				_ = w.Close()
				return fmt.Errorf("%s: %w", out, err)
			}
			if err := w.Close(); err != nil {
				return fmt.Errorf("%w", err)
			}

			a.logger.Info("resampled",
				zap.String("input", in),
				zap.String("output", out),
				zap.Int("from", src.SampleRate()),
				zap.Int("to", outRate),
				zap.Int("samples", len(pcm16)),
			)

			return nil
		},
	}
	cmd.Flags().IntVarP(&rate, "rate", "r", engine.SampleRate, "output sample rate in Hz")

	return cmd
}
