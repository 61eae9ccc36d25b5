// Where: cmd/docroot/main.go
// What: CLI entrypoint.
// Why: Execute docroot commands with configured dependencies.
package main

import (
	"fmt"
	"os"

	"github.com/poruru-code/docroot/internal/app"
	"github.com/poruru-code/docroot/internal/wire"
)

func main() {
	deps, err := wire.BuildDependencies()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(app.Run(os.Args[1:], deps))
}
