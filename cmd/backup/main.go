package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"wordkingdom/internal/config"
	"wordkingdom/internal/database"
	"wordkingdom/internal/repository"
)

func main() {
	// Define subcommands
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	// Export flags
	exportOutput := exportCmd.String("output", "", "Output file path (default: backup_YYYYMMDD_HHMMSS.json)")

	// Import flags
	importInput := importCmd.String("input", "", "Input file path (required)")
	importClear := importCmd.Bool("clear", false, "Clear existing data before import (WARNING: destructive)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations to ensure schema is up to date
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	repo := repository.NewKVRepository(db)

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(repo, *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		handleImport(repo, *importInput, *importClear)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleExport(repo *repository.KVRepository, outputPath string) {
	// Generate default filename if not provided
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = fmt.Sprintf("backup_%s.json", timestamp)
	}

	// Ensure directory exists
	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	entries, err := repo.List()
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	raw, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Fatalf("Failed to serialize entries: %v", err)
	}
	if err := os.WriteFile(outputPath, raw, 0644); err != nil {
		log.Fatalf("Failed to write backup file: %v", err)
	}

	log.Printf("Export complete: %d entries written to %s", len(entries), outputPath)
}

func handleImport(repo *repository.KVRepository, inputPath string, clearData bool) {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}

	var entries []repository.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Fatalf("Failed to parse backup file: %v", err)
	}

	if clearData {
		fmt.Print("WARNING: This will delete all existing data. Type 'yes' to confirm: ")
		var confirmation string
		fmt.Scanln(&confirmation)
		if confirmation != "yes" {
			log.Println("Import cancelled")
			return
		}

		log.Println("Clearing existing data...")
		if err := repo.Clear(); err != nil {
			log.Fatalf("Failed to clear entries: %v", err)
		}
	}

	for _, entry := range entries {
		if err := repo.Set(entry.Key, entry.Value); err != nil {
			log.Fatalf("Failed to import entry %s: %v", entry.Key, err)
		}
	}

	log.Printf("Import complete: %d entries", len(entries))
}

func printUsage() {
	fmt.Println("Word Kingdom Backup Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  backup export [options]    Export player data to JSON file")
	fmt.Println("  backup import [options]    Import player data from JSON file")
	fmt.Println()
	fmt.Println("Export Options:")
	fmt.Println("  -output <file>    Output file path (default: backup_YYYYMMDD_HHMMSS.json)")
	fmt.Println()
	fmt.Println("Import Options:")
	fmt.Println("  -input <file>     Input file path (required)")
	fmt.Println("  -clear            Clear existing data before import (WARNING: destructive)")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DB_TYPE          Database type: sqlite, postgres, or mysql (default: sqlite)")
	fmt.Println("  DB_PATH          SQLite database path (default: ./wordkingdom.db)")
	fmt.Println("  DATABASE_URL     PostgreSQL or MySQL connection URL")
}
