// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"strings"

	"github.com/ik5/ohrli"
	"github.com/ik5/ohrli/resample"
	"github.com/spf13/cobra"
)

type info struct {
	SampleRate  int      `json:"sample_rate"`
	NumRotators int      `json:"num_rotators"`
	Formats     []string `json:"formats"`
	Resamplers  []string `json:"resamplers"`
	Qualities   []string `json:"qualities"`
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show engine constants and supported formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			i := info{
				SampleRate:  ohrli.SampleRate(),
				NumRotators: ohrli.NumRotators(),
				Formats:     ohrli.DefaultRegistry().Formats(),
				Resamplers:  resample.Kinds(),
				Qualities:   resample.Qualities(),
			}

			out := cmd.OutOrStdout()
			if a.outputJSON {
				return writeJSON(out, i)
			}
			fmt.Fprintf(out, "sample rate:  %d\n", i.SampleRate)
			fmt.Fprintf(out, "rotators:     %d\n", i.NumRotators)
			fmt.Fprintf(out, "formats:      %s\n", strings.Join(i.Formats, ", "))
			fmt.Fprintf(out, "resamplers:   %s\n", strings.Join(i.Resamplers, ", "))
			fmt.Fprintf(out, "qualities:    %s\n", strings.Join(i.Qualities, ", "))
			return nil
		},
	}
}
