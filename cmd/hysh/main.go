package main

import (
	"os"

	"github.com/hysh-lang/hysh/runtime/cli"
)

// version is stamped by the release build.
var version = "dev"

func main() {
	harness := cli.New("hysh", version)
	if err := harness.Execute(); err != nil {
		os.Exit(1)
	}
}
