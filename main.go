package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	app2 "github.com/fugaso-go/slot-core/app"
	"github.com/fugaso-go/slot-core/internal/config"
	"github.com/fugaso-go/slot-core/internal/database"
	"github.com/fugaso-go/slot-core/internal/redis"
	"github.com/fugaso-go/slot-core/internal/server"
	"github.com/fugaso-go/slot-core/internal/utils"
)

// main is the entry point for the application. It configures and starts the CLI application.
// It sets up flags for configuration and starts the server using app2.RunServer.
func main() {
	// Initialize the CLI application with flags merged from every config-owning package.
	app := &cli.App{
		Flags: utils.MergeSlices(
			config.LogFlags,
			database.DatabaseFlags,
			server.APIFlags,
			config.SlotFlags,
			config.CoreFlags,
			config.TourFlags,
			config.LaunchFlags,
			config.IPServiceFlags,
			redis.Flags,
		),
		Action: app2.RunServer,
	}

	// Run the CLI application and handle any errors encountered during execution.
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
