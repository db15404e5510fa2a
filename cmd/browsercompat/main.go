package main

import (
	"os"

	"github.com/depot/browsercompat/internal/build"
	"github.com/depot/browsercompat/pkg/cmd/root"
	"github.com/sirupsen/logrus"
)

func main() {
	code := runMain()
	os.Exit(code)
}

func runMain() int {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	rootCmd := root.NewCmdRoot(build.Version, build.Date)

	if err := rootCmd.Execute(); err != nil {
		return 1
	}

	return 0
}
