package config

// Default returns the repository default configuration. These values match
// the sample configuration written when no config file exists.
func Default() Config {
	return Config{
		SourceDir:          "./roms",
		DestinationDir:     "./sorted",
		ArchiveDir:         "./archive",
		LogFile:            "rom_sorter.log",
		LogLevel:           "INFO",
		RankingCriteria:    []string{"[!]"},
		ExcludedDirs:       []string{"images"},
		ExcludedExtensions: []string{".png", ".jpg"},
	}
}
