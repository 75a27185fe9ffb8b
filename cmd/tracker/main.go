package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/NssGourav/shuttle-tracker/config"
	"github.com/NssGourav/shuttle-tracker/internal/app"
)

//	@title			Shuttle Tracker API
//	@version		1.0
//	@description	Campus shuttle tracking service: driver location reports, student queries and a simulated shuttle fleet.

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	var (
		help       = flag.Bool("help", false, "show configuration help and exit")
		configPath = flag.String("config-path", "config.yaml", "path to the yaml config file")
	)
	flag.Parse()

	if *help {
		config.PrintHelp()
		return
	}

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	application, err := app.New(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "application error: %v\n", err)
		os.Exit(1)
	}
}
