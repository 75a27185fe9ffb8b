// trackctl watches the tracker API from a terminal, polling the driver
// list the same way the web dashboard does.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NssGourav/shuttle-tracker/internal/client"
	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
)

func main() {
	var (
		addr     = flag.String("addr", "http://localhost:4000", "tracker API base URL")
		token    = flag.String("token", "", "bearer token for authenticated endpoints")
		interval = flag.Duration("interval", client.DefaultPollInterval, "poll interval")
	)
	flag.Parse()

	opts := []client.Option{}
	if *token != "" {
		opts = append(opts, client.WithToken(*token))
	}
	c := client.New(*addr, opts...)

	p := client.NewPoller(c, *interval, printSnapshot, func(err error) {
		fmt.Fprintf(os.Stderr, "poll failed: %v\n", err)
	})

	p.Start(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	p.Stop()
}

func printSnapshot(drivers []models.DriverWithLocation) {
	now := time.Now()

	fmt.Printf("--- %s · %d driver(s) ---\n", now.Format("15:04:05"), len(drivers))
	for _, d := range drivers {
		if d.Location == nil {
			fmt.Printf("%-20s OFFLINE   never reported\n", d.Name)
			continue
		}

		status := "OFFLINE"
		if client.IsLive(d.Location.UpdatedAt, now) {
			status = "LIVE"
		}

		fmt.Printf("%-20s %-9s %.5f, %.5f  (%s)\n",
			d.Name, status,
			d.Location.Latitude, d.Location.Longitude,
			client.FormatAge(d.Location.UpdatedAt, now),
		)
	}
}
