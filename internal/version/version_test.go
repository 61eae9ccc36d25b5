// Where: internal/version/version_test.go
// What: Tests for version resolution.
// Why: Ensure stamped and build-info versions are reported.
package version

import (
	"runtime/debug"
	"testing"
)

func stubBuildInfo(t *testing.T, info *debug.BuildInfo, ok bool) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, ok }
	t.Cleanup(func() { readBuildInfo = orig })
}

func TestGetVersionPrefersStampedVersion(t *testing.T) {
	orig := Version
	Version = "v1.2.3"
	t.Cleanup(func() { Version = orig })

	if got := GetVersion(); got != "v1.2.3" {
		t.Fatalf("expected stamped version, got %q", got)
	}
}

func TestGetVersionUsesShortRevision(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.modified", Value: "true"},
	}}, true)

	if got := GetVersion(); got != "0123456 (dirty)" {
		t.Fatalf("unexpected version %q", got)
	}
}

func TestGetVersionFallsBackToDev(t *testing.T) {
	stubBuildInfo(t, nil, false)
	if got := GetVersion(); got != "dev" {
		t.Fatalf("expected dev, got %q", got)
	}

	stubBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true)
	if got := GetVersion(); got != "dev" {
		t.Fatalf("expected dev for devel build, got %q", got)
	}
}
