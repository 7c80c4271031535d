package game

// Config selects the game dump to audit.
type Config struct {
	// Directory is the root of the game dump.
	Directory string `mapstructure:"directory" default:""`
	// Profile forces a profile key instead of detecting it from Directory.
	Profile string `mapstructure:"profile" default:""`
}
