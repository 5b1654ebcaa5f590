// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"github.com/spf13/cobra"

	"github.com/taibuivan/kiosk/internal/platform/constants"
)

// cliOptions holds the persistent flags shared by every sub-command.
type cliOptions struct {
	output string
	format outputFormat
}

func newRootCommand() *cobra.Command {
	options := &cliOptions{}

	root := &cobra.Command{
		Use:   "kiosk",
		Short: "Plan, generate and render illustrated magazines",
		Long: `Kiosk turns a short brief into a paginated, illustrated magazine.

The offline commands run the layout pipeline locally:
  - plan      prints the page skeleton for a page count
  - generate  asks the language model for a magazine and lays it out
  - render    turns a magazine structure into a standalone HTML document`,
		Version:      constants.AppVersion,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(options.output)
			if err != nil {
				return err
			}
			options.format = format
			return nil
		},
	}

	root.PersistentFlags().StringVarP(
		&options.output, "output", "o", string(formatYAML), "output format: yaml or json",
	)

	root.AddCommand(
		newPlanCommand(options),
		newGenerateCommand(options),
		newRenderCommand(),
	)

	return root
}
