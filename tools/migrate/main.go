package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/orgball2608/insta-stories-player/internal/migrations"
	"github.com/orgball2608/insta-stories-player/pkg/config"
)

const usage = "Usage: migrate [up|down|status|reset|version|create <name>]"

func main() {
	if len(os.Args) < 2 {
		log.Fatal(usage)
	}

	command, args := os.Args[1], os.Args[2:]
	switch command {
	case "create":
		if len(args) < 1 {
			log.Fatal("Usage: migrate create <name>")
		}
		args = []string{args[0], "go"}
	case "up", "down", "status", "reset", "version":
	default:
		log.Fatalf("Unknown command: %s\n%s", command, usage)
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fmt.Printf("Running %s in: %s\n", command, migrations.Dir)
	if err := migrations.Run(context.Background(), cfg.GetDSN(), migrations.Dir, command, args...); err != nil {
		log.Fatalf("Failed to run %s: %v", command, err)
	}
}
