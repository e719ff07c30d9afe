// Package version exposes build version information.
package version

// Version is the service version, overridden at build time via
// -ldflags "-X .../internal/version.Version=x.y.z".
var Version = "dev"
