package cli

const (
	FlagConfig    = "config"
	FlagHome      = "home"
	FlagReport    = "report"
	FlagDryRun    = "dry-run"
	FlagPathsOnly = "paths-only"
)
