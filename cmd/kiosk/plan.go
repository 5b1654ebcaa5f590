// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"github.com/spf13/cobra"

	"github.com/taibuivan/kiosk/internal/core/magazine"
)

func newPlanCommand(options *cliOptions) *cobra.Command {
	var pages int

	command := &cobra.Command{
		Use:   "plan",
		Short: "Print the page skeleton for a page count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slots := magazine.Plan(pages)
			return writeOutput(cmd.OutOrStdout(), options.format, map[string]any{
				"totalPages":   len(slots),
				"chapterSlots": magazine.CountChapterSlots(slots),
				"pages":        slots,
			})
		},
	}

	command.Flags().IntVar(&pages, "pages", magazine.DefaultPages, "requested page count (minimum 5)")

	return command
}
