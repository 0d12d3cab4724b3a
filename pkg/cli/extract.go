package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gamelog/pkg/domain/types"
	"github.com/m-mizutani/gamelog/pkg/infra/sevenzip"
	"github.com/m-mizutani/gamelog/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

func cmdExtract() *cli.Command {
	return &cli.Command{
		Name:    "extract",
		Aliases: []string{"x"},
		Usage:   "Extract " + types.DefaultArchivePath.String() + " into " + types.DefaultOutputDir.String(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			fs := afero.NewOsFs()
			extractUC := usecase.NewExtract(fs, sevenzip.NewOpener(fs))

			result, err := extractUC.Extract(ctx, types.DefaultArchivePath, types.DefaultOutputDir)
			if err != nil {
				return goerr.Wrap(err, "failed to extract game logs")
			}

			logger.Debug("Extraction finished", "file_count", result.FileCount())

			if _, err := color.New(color.FgGreen).Fprintf(c.Root().Writer, "Extracted to %s\n", result.OutputDir); err != nil {
				return goerr.Wrap(err, "failed to write result")
			}
			return nil
		},
	}
}
