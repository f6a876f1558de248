package main

import (
	"os"

	"github.com/jmgilman/go/filemgr/cmd/filemgr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
