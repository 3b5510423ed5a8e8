package usertimer

// Version is the current version of the go-usertimer library
const Version = "1.0.0"

// VersionInfo contains detailed version information
type VersionInfo struct {
	// Version is the semantic version
	Version string
	// Manager is the service manager the generated units target
	Manager string
	// Scope is the manager instance commands are issued to
	Scope string
}

// GetVersion returns the current version information
func GetVersion() VersionInfo {
	return VersionInfo{
		Version: Version,
		Manager: "systemd",
		Scope:   "user",
	}
}
