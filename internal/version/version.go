// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Report the release tag when stamped, otherwise the VCS revision.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Version is stamped at release time with
// -ldflags "-X github.com/poruru-code/docroot/internal/version.Version=v1.2.3".
var Version = ""

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the stamped version, else the short VCS revision
// (suffixed with "(dirty)" for modified trees), else "dev".
func GetVersion() string {
	if v := strings.TrimSpace(Version); v != "" {
		return v
	}

	info, ok := readBuildInfo()
	if !ok {
		return "dev"
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
		return "dev"
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
