// Command bookshelf is the interactive terminal client for the Bookshelf
// catalog. Configuration comes from defaults, environment, an optional
// JSON file and flags; see internal/client/config.
package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/bookshelf/internal/buildinfo"
	"github.com/dmitrijs2005/bookshelf/internal/client/cli"
	"github.com/dmitrijs2005/bookshelf/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	app.Run(ctx)
}
