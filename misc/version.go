// Package misc keeps build time information about the program.
package misc

// Set with -ldflags "-X fce/misc.version=... -X fce/misc.gitHash=...".
var (
	version = "dev"
	gitHash = "unknown"
	appName = "fce"
)

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns git commit the program was built from.
func GetGitHash() string {
	return gitHash
}

// GetAppName returns program name used for logs, reports and defaults.
func GetAppName() string {
	return appName
}
