package api

const (
	// Required configuration keys.
	KeyProjectName = "project_name"
	KeySourceDir   = "source_dir"
	KeyOutputDir   = "output_dir"
	KeySteps       = "steps"

	// Optional configuration keys.
	KeyDMGName         = "dmg_name"
	KeyVolumeName      = "volume_name"
	KeyWindowSize      = "window_size"
	KeyIconSize        = "icon_size"
	KeyBackgroundImage = "background_image"
	KeyKeep            = "keep"
	KeyVersion         = "version"
	KeySigningIdentity = "signing_identity"
	KeyTeamID          = "team_id"
	KeyAppleIDService  = "apple_id_service"
	KeyPasswordService = "password_service"
	KeySparkleDir      = "sparkle_dir"

	DefaultWindowWidth  = 600
	DefaultWindowHeight = 400
	DefaultIconSize     = 128
)

// RequiredKeys must be present and non-empty after load.
var RequiredKeys = []string{
	KeyProjectName,
	KeySourceDir,
	KeyOutputDir,
	KeySteps,
}

// Defaults is the table of optional keys and their default values.
// Required keys deliberately have no entry here.
var Defaults = map[string]string{
	KeyDMGName:         "{{ .ProjectName }}.dmg",
	KeyVolumeName:      "",
	KeyWindowSize:      "600,400",
	KeyIconSize:        "128",
	KeyBackgroundImage: "",
	KeyKeep:            "*.app",
	KeyVersion:         "",
	KeySigningIdentity: "",
	KeyTeamID:          "",
	KeyAppleIDService:  "macship-apple-id",
	KeyPasswordService: "macship-app-password",
	KeySparkleDir:      "",
}

// Config is the loaded release configuration. It is constructed once by
// Load and never mutated afterwards; steps only read from it.
type Config struct {
	values map[string]string

	// Set by the loader, not from the file.
	FilePath string

	// Steps is the ordered, trimmed step list parsed from the "steps"
	// value. Duplicates are retained and executed as listed.
	Steps []string
}

// Get returns the value for key, falling back to the defaults table.
func (c *Config) Get(key string) string {
	if v, ok := c.values[key]; ok {
		return v
	}
	return Defaults[key]
}

// ProjectName returns the configured project name.
func (c *Config) ProjectName() string { return c.Get(KeyProjectName) }

// SourceDir returns the directory holding the built application bundle.
func (c *Config) SourceDir() string { return c.Get(KeySourceDir) }

// OutputDir returns the directory release artifacts are written to.
func (c *Config) OutputDir() string { return c.Get(KeyOutputDir) }

// VolumeName returns the disk image volume name, defaulting to the
// project name when not configured.
func (c *Config) VolumeName() string {
	if v := c.Get(KeyVolumeName); v != "" {
		return v
	}
	return c.ProjectName()
}

// AppBundleName returns the file name of the packaged application.
func (c *Config) AppBundleName() string {
	return c.ProjectName() + ".app"
}
