package audit

// OutputConfig controls where reports are written.
type OutputConfig struct {
	// Directory receives the report files.
	Directory string `mapstructure:"directory" default:"."`
}

// ScanConfig tunes the source scan.
type ScanConfig struct {
	// Workers bounds how many source families are scanned at once.
	Workers int `mapstructure:"workers" default:"4"`
}
