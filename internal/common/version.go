package common

import (
	"os"
	"strings"
)

// Build information. Populated at build-time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// GetVersion returns the application version.
func GetVersion() string {
	return Version
}

// GetBuild returns the build timestamp.
func GetBuild() string {
	return BuildTime
}

// GetGitCommit returns the git commit hash.
func GetGitCommit() string {
	return GitCommit
}

// LoadVersionFromFile reads the version from a .version file if present,
// falling back to the build-time value.
func LoadVersionFromFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return Version
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if v, ok := strings.CutPrefix(line, "version:"); ok {
			return strings.TrimSpace(v)
		}
		return line
	}

	return Version
}
