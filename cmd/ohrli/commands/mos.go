// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"strconv"

	"github.com/ik5/ohrli"
	"github.com/ik5/ohrli/engine"
	"github.com/spf13/cobra"
)

type mosEntry struct {
	Distance float64        `json:"distance"`
	MOS      float64        `json:"mos"`
	Quality  engine.Quality `json:"quality"`
}

func newMOSCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mos <distance>...",
		Short: "Convert distances to mean opinion scores",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := make([]mosEntry, len(args))
			for i, arg := range args {
				d, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("distance %q: %w", arg, err)
				}
				mos := ohrli.MOSFromZimtohrli(d)
				entries[i] = mosEntry{Distance: d, MOS: mos, Quality: engine.QualityOf(mos)}
			}

			out := cmd.OutOrStdout()
			if a.outputJSON {
				return writeJSON(out, entries)
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%g\t%.3f\t%s\n", e.Distance, e.MOS, e.Quality)
			}
			return nil
		},
	}
}
