// Where: internal/envutil/envutil_test.go
// What: Tests for prefixed environment lookup.
// Why: Ensure ENV_PREFIX handling stays consistent.
package envutil

import "testing"

func TestHostEnvKeyDefaultsPrefix(t *testing.T) {
	t.Setenv("ENV_PREFIX", "")
	if got := HostEnvKey(SuffixProfile); got != "DOCROOT_PROFILE" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestHostEnvKeyHonorsPrefix(t *testing.T) {
	t.Setenv("ENV_PREFIX", "DOCS")
	t.Setenv("DOCS_PROFILE", "  index ")
	if got := HostEnvKey(SuffixProfile); got != "DOCS_PROFILE" {
		t.Fatalf("unexpected key %q", got)
	}
	if got := GetHostEnv(SuffixProfile); got != "index" {
		t.Fatalf("unexpected value %q", got)
	}
}
