// Package build holds build-time information.
package build

// Set by linker flags; the defaults describe a development build.
var (
	// Version is the application version.
	Version = "dev"
	// Commit is the revision the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
