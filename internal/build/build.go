package build

import "runtime/debug"

// Set with -ldflags "-X github.com/depot/browsercompat/internal/build.Version=..."
var Version = "dev"
var Date = ""

func init() {
	if Version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
}
