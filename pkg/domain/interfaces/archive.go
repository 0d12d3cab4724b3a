package interfaces

import (
	"context"

	"github.com/m-mizutani/gamelog/pkg/domain/model"
	"github.com/m-mizutani/gamelog/pkg/domain/types"
)

// ArchiveOpener opens archives for reading
type ArchiveOpener interface {
	// Open opens the archive at path. The caller must Close the returned Archive.
	Open(ctx context.Context, path types.ArchivePath) (Archive, error)
}

// Archive is an archive opened for reading
type Archive interface {
	// ExtractAll writes every entry of the archive under dir, preserving relative paths.
	// Existing files are overwritten. Entries written before a failure are left in place.
	ExtractAll(ctx context.Context, dir types.OutputDir) ([]model.ExtractedEntry, error)

	// Close releases the underlying file handle
	Close() error
}
