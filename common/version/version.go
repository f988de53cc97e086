package version

import (
	"fmt"
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

var GitCommit string
var Version string

func SetDefaults() {
	build, infoOk := debug.ReadBuildInfo()

	if GitCommit == "" {
		GitCommit = ".dev"
		if infoOk {
			for _, setting := range build.Settings {
				if setting.Key == "vcs.revision" {
					GitCommit = setting.Value
					break
				}
			}
		}
	}

	if Version == "" {
		Version = "unknown"
		if infoOk && build.Main.Version != "" && build.Main.Version != "(devel)" {
			Version = build.Main.Version
		}
	}
}

// Release is the identifier reported to Sentry.
func Release() string {
	SetDefaults()
	return fmt.Sprintf("media-canvas@%s-%s", Version, GitCommit)
}

func Print(usingLogger bool) {
	SetDefaults()

	if usingLogger {
		logrus.WithField("commit", GitCommit).Info("media-canvas " + Version)
	} else {
		fmt.Println("media-canvas " + Version)
		fmt.Println("Commit: " + GitCommit)
	}
}
