package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/hdrgen/internal/app"
)

func (c *CLI) newSdksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sdks <developer-dir>",
		Short: "List the SDK selected for each platform and its target triples",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, _ := cmd.Flags().GetStringArray("target")
			targets, err := app.DefaultTargets().WithOverrides(specs)
			if err != nil {
				return err
			}

			sdks, err := c.app.ListSdks(cmd.Context(), args[0], targets)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range sdks {
				triples := "skipped"
				if len(s.Triples) > 0 {
					names := make([]string, len(s.Triples))
					for i, t := range s.Triples {
						names[i] = string(t)
					}
					triples = strings.Join(names, ", ")
				}
				_, _ = fmt.Fprintf(out, "%s: %s (%s)\n", s.Sdk.Platform, s.Sdk.Path, triples)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayP("target", "t", nil, "Override the triples of a platform: PLATFORM=TRIPLE (repeatable)")
	return cmd
}
