package interfaces

import (
	"context"

	"github.com/m-mizutani/gamelog/pkg/domain/model"
	"github.com/m-mizutani/gamelog/pkg/domain/types"
)

// ExtractUseCase defines operations for archive extraction
type ExtractUseCase interface {
	// Extract creates dir if needed and extracts every entry of the archive at src into it
	Extract(ctx context.Context, src types.ArchivePath, dir types.OutputDir) (*model.ExtractionResult, error)
}
