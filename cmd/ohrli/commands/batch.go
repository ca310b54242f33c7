// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/ik5/ohrli/engine"
	"github.com/spf13/cobra"
)

type batchEntry struct {
	Test    string         `json:"test"`
	MOS     float64        `json:"mos"`
	Quality engine.Quality `json:"quality"`
}

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <reference> <test>...",
		Short: "Score several files against one reference",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, refRate, err := a.comparer.LoadMono(args[0])
			if err != nil {
				return err
			}

			entries := make([]batchEntry, 0, len(args)-1)
			for _, path := range args[1:] {
				test, rate, err := a.comparer.LoadMono(path)
				if err != nil {
					return err
				}
				mos, err := a.comparer.CompareAudio(ref, refRate, test, rate, false)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				entries = append(entries, batchEntry{Test: path, MOS: mos, Quality: engine.QualityOf(mos)})
			}

			out := cmd.OutOrStdout()
			if a.outputJSON {
				return writeJSON(out, entries)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FILE\tMOS\tQUALITY")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%.3f\t%s\n", e.Test, e.MOS, e.Quality)
			}
			return tw.Flush()
		},
	}
}
