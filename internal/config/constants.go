package config

// Default paths for the two data files. The names are inherited from the
// data files this tool reads and writes; renaming them would orphan
// existing libraries.
const (
	// DefaultBookDataPath is the default path for the book records file.
	DefaultBookDataPath = "./bookData"

	// DefaultReadingDataPath is the default path for the reading-log file.
	DefaultReadingDataPath = "./ReadingData"
)
