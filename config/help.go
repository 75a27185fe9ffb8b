package config

import (
	"flag"
	"fmt"
)

const HelpMessage = `
Campus Shuttle Tracker API

Usage:
  tracker [-config-path config.yaml]

Configuration is read from the YAML file (if present), overridden by
environment variables. See config.yaml for the full list of keys.
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}

// PrintConfig dumps the effective (non-secret) configuration at startup.
func PrintConfig(cfg *Config) {
	fmt.Printf("server:    %s\n", cfg.Server.Addr())
	fmt.Printf("database:  %s:%s/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.Database)
	fmt.Printf("rabbitmq:  enabled=%t host=%s\n", cfg.RabbitMQ.Enabled, cfg.RabbitMQ.Host)
	fmt.Printf("simulator: enabled=%t interval=%s\n", cfg.Simulator.Enabled, cfg.Simulator.Interval)
	fmt.Printf("log level: %s\n", cfg.Log.Level)
}
