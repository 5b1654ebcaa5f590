// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/kiosk/internal/core/magazine"
	"github.com/taibuivan/kiosk/internal/render"
)

func newRenderCommand() *cobra.Command {
	var outPath string

	command := &cobra.Command{
		Use:   "render <file.json|->",
		Short: "Render a magazine structure as standalone HTML",
		Long: `Render reads a magazine structure, either bare or as printed by
"kiosk generate -o json", and writes the HTML document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			structure, err := readStructure(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			document, err := render.Magazine(structure)
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(document)
				return err
			}
			return os.WriteFile(outPath, document, 0o644)
		},
	}

	command.Flags().StringVar(&outPath, "out", "", "write to this file instead of stdout")

	return command
}

// readStructure accepts a bare structure or a generate result wrapping one.
func readStructure(stdin io.Reader, path string) (magazine.Structure, error) {
	var (
		payload []byte
		err     error
	)
	if path == "-" {
		payload, err = io.ReadAll(stdin)
	} else {
		payload, err = os.ReadFile(path)
	}
	if err != nil {
		return magazine.Structure{}, fmt.Errorf("read structure: %w", err)
	}

	var wrapped generationResult
	if err := json.Unmarshal(payload, &wrapped); err == nil && len(wrapped.Structure.Pages) > 0 {
		return wrapped.Structure, nil
	}

	var structure magazine.Structure
	if err := json.Unmarshal(payload, &structure); err != nil {
		return magazine.Structure{}, fmt.Errorf("decode structure: %w", err)
	}
	if len(structure.Pages) == 0 {
		return magazine.Structure{}, fmt.Errorf("decode structure: no pages in %s", path)
	}
	return structure, nil
}
