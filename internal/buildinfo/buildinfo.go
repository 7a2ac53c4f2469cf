// Package buildinfo describes the running program: the values stamped in at
// build time, the Go module build record, and environment overrides.
package buildinfo

import (
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/caarlos0/env/v11"
)

// Set at build time via -ldflags "-X github.com/NielsdaWheelz/cmdkit/internal/buildinfo.Version=v1.2.3".
var (
	Title     = ""
	Version   = "dev"
	Copyright = ""
	Commit    = ""
)

// develVersion is what the go command records for builds outside a module version.
const develVersion = "(devel)"

// Identity is the program's own build record.
type Identity struct {
	// Name is the main module path, e.g. "github.com/NielsdaWheelz/cmdkit".
	Name    string
	Version string
}

// Descriptor is the read-only metadata a banner is rendered from.
// Empty strings mean "not declared".
type Descriptor struct {
	Title     string `env:"TITLE"`
	Version   string `env:"VERSION"`
	Copyright string `env:"COPYRIGHT"`

	Identity Identity
}

// envPrefix scopes the runtime overrides: CMDKIT_TITLE, CMDKIT_VERSION, CMDKIT_COPYRIGHT.
const envPrefix = "CMDKIT_"

// indirections for tests
var (
	readBuildInfo = debug.ReadBuildInfo
	executable    = func() string { return os.Args[0] }
)

// Current returns a fresh descriptor for the running program. Nothing is
// cached: every call re-reads the build record and the environment.
func Current() Descriptor {
	d := Descriptor{
		Title:     Title,
		Version:   declaredVersion(),
		Copyright: Copyright,
		Identity:  ReadIdentity(),
	}
	if withEnv, err := FromEnv(d); err == nil {
		d = withEnv
	}
	return d
}

// FromEnv returns base with any CMDKIT_* environment overrides applied.
func FromEnv(base Descriptor) (Descriptor, error) {
	var over Descriptor
	if err := env.ParseWithOptions(&over, env.Options{Prefix: envPrefix}); err != nil {
		return base, err
	}
	if over.Title != "" {
		base.Title = over.Title
	}
	if over.Version != "" {
		base.Version = over.Version
	}
	if over.Copyright != "" {
		base.Copyright = over.Copyright
	}
	return base, nil
}

// ReadIdentity returns the main module path and version from the Go build
// record. A missing path falls back to the executable's base name and a
// missing version to "(devel)".
func ReadIdentity() Identity {
	var id Identity
	if bi, ok := readBuildInfo(); ok && bi != nil {
		id.Name = bi.Main.Path
		id.Version = bi.Main.Version
		if id.Name == "" {
			id.Name = bi.Path
		}
	}
	if id.Name == "" {
		id.Name = filepath.Base(executable())
	}
	if id.Version == "" {
		id.Version = develVersion
	}
	return id
}

// declaredVersion treats the "dev" placeholder as undeclared so the banner
// falls back to the module version.
func declaredVersion() string {
	if Version == "dev" {
		return ""
	}
	return Version
}

// FullVersion returns the version string with commit if available.
// Format: "vX.Y.Z (commit <shortsha>)" or "dev" for dev builds.
func FullVersion() string {
	if Commit != "" {
		return Version + " (commit " + Commit + ")"
	}
	return Version
}
