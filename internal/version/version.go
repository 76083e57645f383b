// Package version holds the build version for shelf.
package version

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is the svn revision or VCS commit the binary was built from,
// set at build time via -ldflags.
var Commit = ""

// FullVersion returns the version string with commit if available.
// Format: "vX.Y.Z (commit <id>)" or "dev" for dev builds.
func FullVersion() string {
	if Commit != "" {
		return Version + " (commit " + Commit + ")"
	}
	return Version
}
