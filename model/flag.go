package model

// Flags holds the options of a manual run from the command line
type Flags struct {
	Region   string
	Profile  string
	Days     int
	Format   Format
	Send     bool
	Chart    bool
	LogLevel string
}
