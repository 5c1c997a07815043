package version

import "fmt"

// Name is the binary name shown in version output.
const Name = "lumconv"

// Version is the release version embedded in the binary.
// Override at build time with:
// go build -ldflags "-X github.com/oukeidos/lumconv/internal/version.Version=1.0.0"
var Version = "0.1.0"

// Commit is the git commit hash, set via -ldflags like Version.
var Commit = "unknown"

// BuildDate is the RFC3339 build timestamp, set via -ldflags like Version.
var BuildDate = "unknown"

// Info returns a multi-line version string for CLI output.
func Info() string {
	return fmt.Sprintf("%s %s\ncommit: %s\nbuild: %s", Name, Version, Commit, BuildDate)
}
