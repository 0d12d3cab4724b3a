package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gamelog/pkg/domain/interfaces"
	"github.com/m-mizutani/gamelog/pkg/domain/model"
	"github.com/m-mizutani/gamelog/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/spf13/afero"
)

type extractUseCase struct {
	fs     afero.Fs
	opener interfaces.ArchiveOpener
}

// NewExtract creates a new instance of ExtractUseCase. fs is used to create the output directory.
func NewExtract(fs afero.Fs, opener interfaces.ArchiveOpener) interfaces.ExtractUseCase {
	return &extractUseCase{
		fs:     fs,
		opener: opener,
	}
}

// Extract creates dir if needed and extracts every entry of the archive at src into it.
// Entries already written are left in place when extraction fails part way.
func (uc *extractUseCase) Extract(ctx context.Context, src types.ArchivePath, dir types.OutputDir) (*model.ExtractionResult, error) {
	logger := ctxlog.From(ctx)

	logger.Info("Extracting archive",
		"archive", src,
		"output_dir", dir,
	)

	if err := uc.fs.MkdirAll(dir.String(), 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create output directory",
			goerr.T(types.ErrTagDirectoryCreation),
			goerr.V("output_dir", dir),
		)
	}

	archive, err := uc.opener.Open(ctx, src)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open archive",
			goerr.T(types.ErrTagArchiveOpen),
			goerr.V("archive", src),
		)
	}
	defer func() {
		if err := archive.Close(); err != nil {
			logger.Warn("Failed to close archive", "error", err, "archive", src)
		}
	}()

	entries, err := archive.ExtractAll(ctx, dir)
	if err != nil {
		logger.Error("Extraction stopped part way",
			"error", err,
			"archive", src,
			"extracted_count", len(entries),
		)
		return nil, goerr.Wrap(err, "failed to extract archive",
			goerr.T(types.ErrTagExtraction),
			goerr.V("archive", src),
			goerr.V("output_dir", dir),
		)
	}

	result := &model.ExtractionResult{
		OutputDir: dir.String(),
		Entries:   entries,
	}
	for _, e := range entries {
		result.Size += e.Size
	}

	logger.Info("Extracted archive",
		"output_dir", result.OutputDir,
		"entry_count", len(result.Entries),
		"file_count", result.FileCount(),
		"total_size_bytes", result.Size,
	)

	return result, nil
}
