// Package build exposes build-time metadata injected via ldflags.
package build

// Version and Commit are set at build time by:
//
//	-ldflags "-X github.com/MikMuellerDev/yaus/internal/build.Version=... ..."
var (
	Version = "dev"
	Commit  = "unknown"
)

// UserAgent is the value the CLI client sends in the User-Agent header.
func UserAgent() string {
	return "yaus-cli/" + Version
}
