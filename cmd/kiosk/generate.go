// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/kiosk/internal/core/magazine"
	"github.com/taibuivan/kiosk/internal/core/moderation"
	"github.com/taibuivan/kiosk/internal/llm"
	"github.com/taibuivan/kiosk/internal/platform/apperr"
	"github.com/taibuivan/kiosk/internal/platform/config"
	"github.com/taibuivan/kiosk/internal/render"
)

type generateFlags struct {
	brief        magazine.Brief
	mock         bool
	imageBaseURL string
	htmlPath     string
}

// generationResult is what generate prints.
type generationResult struct {
	Degraded  bool               `json:"degraded"`
	Structure magazine.Structure `json:"structure"`
}

func newGenerateCommand(options *cliOptions) *cobra.Command {
	flags := &generateFlags{}

	command := &cobra.Command{
		Use:   "generate",
		Short: "Generate and lay out a magazine from a brief",
		Long: `Generate runs one language model call and lays the answer out.

LLM_PROVIDER, LLM_API_KEY, LLM_MODEL and LLM_BASE_URL are read from the
environment or a .env file. --mock uses the offline generator instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

			generator, err := buildGenerator(flags.mock)
			if err != nil {
				return err
			}

			brief := magazine.NormalizeBrief(flags.brief)
			if err := magazine.ValidateBrief(brief); err != nil {
				return fmt.Errorf("invalid brief: %w", describeValidation(err))
			}

			assembler := magazine.NewAssembler(
				magazine.NewRequestor(generator),
				magazine.NewSeeder(flags.imageBaseURL),
				moderation.NewGate(),
				logger,
			)

			assembly, err := assembler.Assemble(cmd.Context(), brief)
			if err != nil {
				return err
			}

			if flags.htmlPath != "" {
				document, err := render.Magazine(assembly.Structure)
				if err != nil {
					return err
				}
				if err := os.WriteFile(flags.htmlPath, document, 0o644); err != nil {
					return fmt.Errorf("write html: %w", err)
				}
				logger.Info("html_written", slog.String("path", flags.htmlPath))
			}

			return writeOutput(cmd.OutOrStdout(), options.format, generationResult{
				Degraded:  assembly.Degraded,
				Structure: assembly.Structure,
			})
		},
	}

	command.Flags().StringVar(&flags.brief.Theme, "theme", "", "magazine theme (required)")
	command.Flags().StringVar(&flags.brief.Genre, "genre", "", "genre, e.g. science or travel")
	command.Flags().IntVar(&flags.brief.Age, "age", 0, "reader age")
	command.Flags().StringVar(&flags.brief.Language, "language", "en", "BCP 47 language tag")
	command.Flags().StringSliceVar(&flags.brief.Keywords, "keyword", nil, "keyword to weave in (repeatable)")
	command.Flags().IntVar(&flags.brief.Pages, "pages", magazine.DefaultPages, "page count (5 to 40)")
	command.Flags().BoolVar(&flags.mock, "mock", false, "use the offline generator")
	command.Flags().StringVar(&flags.imageBaseURL, "image-base-url", magazine.DefaultImageBaseURL, "placeholder image service")
	command.Flags().StringVar(&flags.htmlPath, "html", "", "also write the rendered HTML to this file")
	_ = command.MarkFlagRequired("theme")

	return command
}

func buildGenerator(mock bool) (llm.Generator, error) {
	if mock {
		return llm.NewMock(), nil
	}

	settings, err := config.LoadLLM()
	if err != nil {
		return nil, err
	}

	return llm.New(llm.Settings{
		Provider: settings.Provider,
		APIKey:   settings.APIKey,
		Model:    settings.Model,
		BaseURL:  settings.BaseURL,
		Timeout:  settings.Timeout,
	})
}

// describeValidation spells out field errors, which the API returns as details.
func describeValidation(err error) error {
	appErr := apperr.As(err)
	if appErr == nil || len(appErr.Details) == 0 {
		return err
	}

	problems := make([]string, 0, len(appErr.Details))
	for _, detail := range appErr.Details {
		problems = append(problems, detail.Field+": "+detail.Message)
	}
	return errors.New(strings.Join(problems, "; "))
}
