// Package version carries the build version, set at link time:
//
//	go build -ldflags "-X oficina/internal/shared/version.Version=1.4.0 -X oficina/internal/shared/version.Commit=abc123"
package version

import "strings"

var (
	Version = "dev"
	Commit  = ""
)

// Normalize ensures version string has "v" prefix.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3", "dev" -> "dev"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" || version == "dev" {
		return version
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// String renders the version with the short commit, e.g. "v1.4.0 (abc123)".
func String() string {
	v := Normalize(Version)
	if Commit == "" {
		return v
	}
	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return v + " (" + commit + ")"
}
