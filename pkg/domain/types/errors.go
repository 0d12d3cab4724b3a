package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrTagArchiveOpen marks errors where the archive is missing, unreadable or not a 7z archive
	ErrTagArchiveOpen = goerr.NewTag("archive_open")

	// ErrTagDirectoryCreation marks errors where the output directory cannot be created
	ErrTagDirectoryCreation = goerr.NewTag("directory_creation")

	// ErrTagExtraction marks errors raised while decoding or writing archive entries
	ErrTagExtraction = goerr.NewTag("extraction")
)
