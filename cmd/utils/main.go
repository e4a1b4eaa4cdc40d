package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/appetiteclub/apt"

	"github.com/campuscanteen/canteen/cmd/utils/internal/commands"
)

const (
	appName    = "canteen-utils"
	appVersion = "0.1.0"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Load config from UTILS namespace (or use default mongo connection)
	config, err := apt.LoadConfig("UTILS", os.Args[2:])
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	logLevel, _ := config.GetString("log.level")
	if logLevel == "" {
		logLevel = "info"
	}
	logger := apt.NewLogger(logLevel)

	ctx := context.Background()
	command := os.Args[1]

	switch command {
	case "seed-demo":
		if err := commands.SeedDemo(ctx, config, logger); err != nil {
			log.Fatalf("❌ Demo seeding failed: %v", err)
		}
		logger.Info("✅ Demo seeding completed successfully")

	case "clear-demo":
		if err := commands.ClearDemo(ctx, config, logger); err != nil {
			log.Fatalf("❌ Clear demo data failed: %v", err)
		}
		logger.Info("✅ Demo data cleared successfully")

	case "reset-db":
		if err := commands.ResetDB(ctx, config, logger); err != nil {
			log.Fatalf("❌ Database reset failed: %v", err)
		}
		logger.Info("✅ Database reset completed successfully")

	case "version":
		fmt.Printf("%s version %s\n", appName, appVersion)

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`%s - Canteen utility commands

Usage:
  %s <command> [options]

Commands:
  seed-demo    Apply demo seeding (creates the sample menu and demo orders)
  clear-demo   Clear demo data (removes demo orders, keeps the catalog)
  reset-db     Full database reset (drops the canteen database - USE WITH CAUTION)
  version      Show version information
  help         Show this help message

Options:
  --db.mongo.url <url>    MongoDB connection URL (default: mongodb://localhost:27017)
  --db.mongo.name <name>  Database name (default: canteen)
  --log.level <level>     Log level (default: info)

Environment variables use the UTILS_ prefix, e.g. UTILS_DB_MONGO_URL.
`, appName, appName)
}
