package config

// DefaultConfigFile is the run manifest the driver looks for when no -config
// flag is given.
const DefaultConfigFile = "minml.yaml"

// Color modes accepted in the run manifest.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)
