// Command vigsig encrypts and signs 64-bit blocks with a short repeating key.
package main

import (
	"os"

	"github.com/idelchi/vigsig/internal/commands"
	"github.com/idelchi/vigsig/internal/config"
)

// version is set at build time with -ldflags.
var version = "unknown"

func main() {
	cfg := &config.Config{}

	if err := commands.NewRootCommand(cfg, version).Execute(); err != nil {
		os.Exit(1)
	}
}
