// Where: internal/meta/meta.go
// What: Tool identity constants.
// Why: Keep naming and directory layout in one place.
package meta

const (
	// Tool Identity
	AppName   = "docroot"
	EnvPrefix = "DOCROOT"

	// Directory Layout
	HomeDir          = ".docroot"
	SettingsFileName = "config.yaml"

	// Header Import
	DefaultImportLog = "CParserPlugin.out"
)
