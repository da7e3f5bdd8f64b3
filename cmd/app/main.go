package main

import (
	"context"
	"fmt"
	"os"

	authservice "fleetops/internal/auth-service"
	"fleetops/internal/config"
	fleetservice "fleetops/internal/fleet-service"
	"fleetops/internal/mylogger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: app <fleet-service|auth-service>")
		os.Exit(1)
	}

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	mylog, err := mylogger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "fleet-service":
		if err := fleetservice.Execute(ctx, mylog, cfg); err != nil {
			mylog.Error("fleet-service stopped with error", err)
			os.Exit(1)
		}
	case "auth-service":
		if err := authservice.Execute(ctx, mylog, cfg); err != nil {
			mylog.Error("auth-service stopped with error", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown service %q\n", os.Args[1])
		os.Exit(1)
	}
}
