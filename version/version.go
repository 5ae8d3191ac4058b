package version

import "runtime"

// Populated at build time via -ldflags.
var (
	Version   = "dev"
	GitCommit = ""
	BuildDate = ""
	GoVersion = runtime.Version()
	OsArch    = runtime.GOOS + "/" + runtime.GOARCH
)
