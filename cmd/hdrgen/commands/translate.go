package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hdrgen/internal/app"
	"go.trai.ch/hdrgen/internal/core/domain"
)

func (c *CLI) newTranslateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate <developer-dir>",
		Short: "Parse every configured target and write the generated frameworks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, _ := cmd.Flags().GetString("src")
			header, _ := cmd.Flags().GetString("header")
			canonical, _ := cmd.Flags().GetString("canonical")
			specs, _ := cmd.Flags().GetStringArray("target")

			platform, err := domain.ParsePlatform(canonical)
			if err != nil {
				return err
			}

			targets, err := app.DefaultTargets().WithOverrides(specs)
			if err != nil {
				return err
			}

			return c.app.Translate(cmd.Context(), app.TranslateOptions{
				DeveloperDir: args[0],
				SrcDir:       src,
				EntryHeader:  header,
				Canonical:    platform,
				Targets:      targets,
			})
		},
	}
	cmd.Flags().StringP("src", "s", ".", "Directory holding one config directory per framework")
	cmd.Flags().String("header", "", "Umbrella header to parse (default <src>/"+domain.DefaultEntryHeader+")")
	cmd.Flags().String("canonical", domain.PlatformMacOSX.String(), "Platform whose result is written")
	cmd.Flags().StringArrayP("target", "t", nil, "Override the triples of a platform: PLATFORM=TRIPLE (repeatable)")
	return cmd
}
