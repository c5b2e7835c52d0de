package constants

// Log file settings.
const (
	// CLILogFileName is the name of the CLI log file.
	// This file is located in ~/.sigil/logs/sigil.log
	CLILogFileName = "sigil.log"

	// LogMaxSizeMB is the default size at which the log file is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the default number of rotated log files kept.
	LogMaxBackups = 3

	// LogMaxAgeDays is the default number of days rotated log files are kept.
	LogMaxAgeDays = 28

	// LogCompress controls gzip compression of rotated log files by default.
	LogCompress = true
)

// Configuration file names.
const (
	// GlobalConfigName is the name of the global sigil configuration file.
	// This file is located in the sigil home directory.
	GlobalConfigName = "config.yaml"

	// DefaultKeyOutputDir is where `text generate` writes keys when no directory is configured.
	DefaultKeyOutputDir = "."
)
