// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"

	"github.com/ik5/ohrli/engine"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type compareResult struct {
	Reference string         `json:"reference"`
	Test      string         `json:"test"`
	Distance  *float64       `json:"distance,omitempty"`
	MOS       *float64       `json:"mos,omitempty"`
	Quality   engine.Quality `json:"quality,omitempty"`
}

func newCompareCmd(a *app) *cobra.Command {
	var distance bool

	cmd := &cobra.Command{
		Use:   "compare <reference> <test>",
		Short: "Compare two audio files",
		Long: `Compare two audio files and print their MOS, or their distance with
--distance. The files may differ in format, rate and channel count.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.compare(cmd, args[0], args[1], distance)
		},
	}
	cmd.Flags().BoolVarP(&distance, "distance", "d", false, "print the raw distance instead of MOS")

	return cmd
}

func newDistanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance <reference> <test>",
		Short: "Print the perceptual distance between two audio files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.compare(cmd, args[0], args[1], true)
		},
	}
}

func (a *app) compare(cmd *cobra.Command, ref, test string, distance bool) error {
	score, err := a.comparer.CompareFiles(ref, test, distance)
	if err != nil {
		return err
	}
	a.logger.Debug("compared",
		zap.String("reference", ref),
		zap.String("test", test),
		zap.Bool("distance", distance),
		zap.Float64("score", score),
	)

	res := compareResult{Reference: ref, Test: test}
	if distance {
		res.Distance = &score
	} else {
		res.MOS = &score
		res.Quality = engine.QualityOf(score)
	}

	out := cmd.OutOrStdout()
	if a.outputJSON {
		return writeJSON(out, res)
	}
	if distance {
		fmt.Fprintf(out, "%.6f\n", score)
	} else {
		fmt.Fprintf(out, "%.3f %s\n", score, res.Quality)
	}

	return nil
}
