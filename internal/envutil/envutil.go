// Package envutil resolves prefixed host environment variables.
package envutil

import (
	"os"
	"strings"

	"github.com/poruru-code/docroot/internal/meta"
)

// Suffixes joined to the prefix by HostEnvKey.
const (
	SuffixConfigPath = "CONFIG_PATH"
	SuffixConfigHome = "CONFIG_HOME"
	SuffixProfile    = "PROFILE"
)

// HostEnvKey joins ENV_PREFIX (default DOCROOT) and suffix.
// Example: HostEnvKey("PROFILE") returns "DOCROOT_PROFILE".
func HostEnvKey(suffix string) string {
	prefix := strings.TrimSpace(os.Getenv("ENV_PREFIX"))
	if prefix == "" {
		prefix = meta.EnvPrefix
	}
	return prefix + "_" + suffix
}

// GetHostEnv returns the trimmed value of HostEnvKey(suffix).
func GetHostEnv(suffix string) string {
	return strings.TrimSpace(os.Getenv(HostEnvKey(suffix)))
}
