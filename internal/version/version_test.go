package version

import (
	"strings"
	"testing"
)

func TestVersionContainsSemverParts(t *testing.T) {
	// Цветовые escape-последовательности не должны ломать содержимое
	for _, part := range []string{"0", "1", "0", "-dev", "."} {
		if !strings.Contains(Version, part) {
			t.Errorf("Version %q is missing %q", Version, part)
		}
	}
}

func TestPlainHasNoEscapes(t *testing.T) {
	if strings.ContainsRune(Plain, '\x1b') {
		t.Errorf("Plain %q must not carry color escapes", Plain)
	}
	if Plain != "0.1.0-dev" {
		t.Errorf("Plain = %q, want %q", Plain, "0.1.0-dev")
	}
}

func TestBuildMetadataOverride(t *testing.T) {
	origCommit, origMessage, origDate := GitCommit, GitMessage, BuildDate
	defer func() {
		GitCommit, GitMessage, BuildDate = origCommit, origMessage, origDate
	}()

	GitCommit = "deadbeef"
	GitMessage = "tighten loop emission"
	BuildDate = "2026-08-29T00:00:00Z"

	if GitCommit != "deadbeef" || GitMessage != "tighten loop emission" || BuildDate != "2026-08-29T00:00:00Z" {
		t.Errorf("ldflags-style override did not stick: %q %q %q", GitCommit, GitMessage, BuildDate)
	}
}

func TestBuildMetadataDefaultsEmpty(t *testing.T) {
	// Без ldflags метаданные пустые; CLI показывает их как "unknown"
	if GitCommit != "" || GitMessage != "" || BuildDate != "" {
		t.Skip("build metadata injected, nothing to assert")
	}
}
