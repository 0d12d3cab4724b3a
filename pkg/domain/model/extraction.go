package model

// ExtractedEntry represents a single archive entry written to disk
type ExtractedEntry struct {
	Name  string // Slash separated path relative to the output directory
	Size  int64  // Uncompressed size in bytes
	IsDir bool
}

// ExtractionResult represents the result of extracting an archive
type ExtractionResult struct {
	OutputDir string           // Directory the entries were written to
	Entries   []ExtractedEntry // Entries in archive order
	Size      int64            // Total uncompressed size in bytes
}

// FileCount returns the number of regular files in the result
func (x *ExtractionResult) FileCount() int {
	var n int
	for _, e := range x.Entries {
		if !e.IsDir {
			n++
		}
	}
	return n
}
