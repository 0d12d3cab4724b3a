package sevenzip

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bodgit/sevenzip"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gamelog/pkg/domain/interfaces"
	"github.com/m-mizutani/gamelog/pkg/domain/model"
	"github.com/m-mizutani/gamelog/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/spf13/afero"
)

const (
	defaultDirMode  fs.FileMode = 0755
	defaultFileMode fs.FileMode = 0644
)

type opener struct {
	fs afero.Fs
}

// NewOpener creates an ArchiveOpener that reads 7z archives from fs and extracts into fs
func NewOpener(fs afero.Fs) interfaces.ArchiveOpener {
	return &opener{fs: fs}
}

// Open opens the 7z archive at path and reads its header
func (x *opener) Open(ctx context.Context, path types.ArchivePath) (interfaces.Archive, error) {
	file, err := x.fs.Open(path.String())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open archive file", goerr.V("path", path))
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, goerr.Wrap(err, "failed to stat archive file", goerr.V("path", path))
	}
	if stat.IsDir() {
		_ = file.Close()
		return nil, goerr.New("archive path is a directory", goerr.V("path", path))
	}

	reader, err := sevenzip.NewReader(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, goerr.Wrap(err, "failed to read 7z archive", goerr.V("path", path))
	}

	ctxlog.From(ctx).Debug("Opened archive",
		"path", path,
		"size_bytes", stat.Size(),
		"entry_count", len(reader.File),
	)

	return &archive{
		fs:     x.fs,
		file:   file,
		reader: reader,
	}, nil
}

type archive struct {
	fs     afero.Fs
	file   afero.File
	reader *sevenzip.Reader
}

// ExtractAll extracts entries in archive order. Solid blocks are decoded
// sequentially, so walking reader.File in order avoids re-decoding them.
// Directory times are restored after all entries are written.
func (x *archive) ExtractAll(ctx context.Context, dir types.OutputDir) ([]model.ExtractedEntry, error) {
	logger := ctxlog.From(ctx)

	var dirs []dirTime
	entries := make([]model.ExtractedEntry, 0, len(x.reader.File))
	for _, f := range x.reader.File {
		entry, destPath, err := x.extractFile(f, dir.String())
		if err != nil {
			return entries, goerr.Wrap(err, "failed to extract entry",
				goerr.V("name", f.Name),
				goerr.V("dir", dir),
			)
		}

		if entry.IsDir {
			dirs = append(dirs, dirTime{path: destPath, modified: f.Modified})
		} else {
			x.restoreModTime(ctx, destPath, f.Modified)
		}

		logger.Debug("Extracted entry",
			"name", entry.Name,
			"size_bytes", entry.Size,
			"is_dir", entry.IsDir,
		)
		entries = append(entries, *entry)
	}

	for _, d := range dirs {
		x.restoreModTime(ctx, d.path, d.modified)
	}

	return entries, nil
}

type dirTime struct {
	path     string
	modified time.Time
}

// extractFile writes a single entry under destDir and returns the written path
func (x *archive) extractFile(f *sevenzip.File, destDir string) (*model.ExtractedEntry, string, error) {
	name := strings.TrimSuffix(strings.ReplaceAll(f.Name, `\`, "/"), "/")

	// Prevent path traversal
	if !filepath.IsLocal(filepath.FromSlash(name)) {
		return nil, "", goerr.New("entry path escapes output directory", goerr.V("name", f.Name))
	}
	destPath := filepath.Join(destDir, filepath.FromSlash(name))
	info := f.FileInfo()

	if info.IsDir() {
		if err := x.fs.MkdirAll(destPath, defaultDirMode); err != nil {
			return nil, "", goerr.Wrap(err, "failed to create directory", goerr.V("path", destPath))
		}
		return &model.ExtractedEntry{Name: name, IsDir: true}, destPath, nil
	}

	if err := x.fs.MkdirAll(filepath.Dir(destPath), defaultDirMode); err != nil {
		return nil, "", goerr.Wrap(err, "failed to create parent directories", goerr.V("path", filepath.Dir(destPath)))
	}

	rc, err := f.Open()
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to open entry in archive")
	}
	defer rc.Close()

	mode := info.Mode().Perm()
	if mode == 0 {
		mode = defaultFileMode
	}

	// Existing files are truncated and overwritten
	out, err := x.fs.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to create destination file", goerr.V("path", destPath))
	}

	written, copyErr := io.Copy(out, rc)
	closeErr := out.Close()
	if copyErr != nil {
		return nil, "", goerr.Wrap(copyErr, "failed to copy entry content", goerr.V("path", destPath))
	}
	if closeErr != nil {
		return nil, "", goerr.Wrap(closeErr, "failed to close destination file", goerr.V("path", destPath))
	}

	return &model.ExtractedEntry{Name: name, Size: written}, destPath, nil
}

// restoreModTime applies the recorded modification time, if any. Failure is not fatal.
func (x *archive) restoreModTime(ctx context.Context, path string, modified time.Time) {
	if modified.IsZero() {
		return
	}
	if err := x.fs.Chtimes(path, modified, modified); err != nil {
		ctxlog.From(ctx).Debug("Failed to restore modification time", "error", err, "path", path)
	}
}

// Close releases the archive file
func (x *archive) Close() error {
	if err := x.file.Close(); err != nil {
		return goerr.Wrap(err, "failed to close archive file")
	}
	return nil
}
