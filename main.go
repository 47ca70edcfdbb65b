package main

import (
	"os"

	"github.com/lunapress/packagemeta/internal/cli"
	"github.com/sirupsen/logrus"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if err := cli.Execute(version, commit, date); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
