package types

// ArchivePath is a filesystem path to a 7z archive
type ArchivePath string

// String returns the path as a plain string
func (x ArchivePath) String() string { return string(x) }

// OutputDir is a directory that receives extracted entries
type OutputDir string

// String returns the path as a plain string
func (x OutputDir) String() string { return string(x) }

const (
	// DefaultArchivePath is the SportVU game log archive read by the extract command
	DefaultArchivePath ArchivePath = "data/2016.NBA.Raw.SportVU.Game.Logs/01.01.2016.CHA.at.TOR.7z"

	// DefaultOutputDir is where the extract command writes the archive contents
	DefaultOutputDir OutputDir = "data/2016.NBA.Raw.SportVU.Game.Logs/Extracted"
)
