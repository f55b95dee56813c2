package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionFormat(t *testing.T) {
	if !semverRegex.MatchString(Version) {
		t.Errorf("Version %q does not match semver format (x.y.z)", Version)
	}
}

func TestInfo(t *testing.T) {
	info := Info()

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"version", info.Version, Version},
		{"git commit", info.GitCommit, GitCommit},
		{"build date", info.BuildDate, BuildDate},
		{"go version", info.GoVersion, runtime.Version()},
		{"platform", info.Platform, runtime.GOOS + "/" + runtime.GOARCH},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Info().%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestInfoString(t *testing.T) {
	s := Info().String()
	if !strings.HasPrefix(s, "textkit v"+Version+"\n") {
		t.Errorf("String() = %q, want prefix %q", s, "textkit v"+Version)
	}
	if !strings.Contains(s, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("String() = %q, missing platform", s)
	}
}
