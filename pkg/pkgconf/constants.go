// pkg/pkgconf/constants.go
package pkgconf

const (
	// DefaultBinary is the package-description provider invoked for every
	// query. Overridable through Config.Binary or the PKG_CONFIG
	// environment variable.
	DefaultBinary = "pkg-config"

	// DefaultToolboxPackage is the well-known package identity of the
	// toolbox itself, used for --variable and --modversion queries.
	DefaultToolboxPackage = "sigkit"

	// BinaryEnv names the environment variable consulted for an alternate
	// provider binary.
	BinaryEnv = "PKG_CONFIG"
)
