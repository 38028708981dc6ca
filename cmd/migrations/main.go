// Command migrations applies SQL files from the postgres migrations directory.
//
//	migrations <name>   run the first file matching <name>.sql, e.g. "create_polls.up"
//	migrations up       run every *.up.sql in order
//	migrations down     run every *.down.sql in reverse order
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/vncsmyrnk/polly/internal/config"
	"github.com/vncsmyrnk/polly/internal/platform/database"
)

var basePath = filepath.Join(".", "internal", "adapters", "repository", "postgres", "migrations")

func main() {
	if len(os.Args) < 2 {
		log.Fatal("a migration name, \"up\" or \"down\" is required.")
	}
	target := os.Args[1]

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = config.PostgresURL()
	}

	db, err := database.NewPostgres(context.Background(), dsn, 10*time.Second)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	files, err := migrationFiles(basePath, target)
	if err != nil {
		log.Fatal(err)
	}

	for _, name := range files {
		if err := execFile(db, filepath.Join(basePath, name)); err != nil {
			log.Fatalf("Failed to execute %s: %v", name, err)
		}
		fmt.Printf("Migration file %s executed successfully.\n", name)
	}
}

func execFile(db *sql.DB, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = db.Exec(string(content))
	return err
}

func migrationFiles(dir, target string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	switch target {
	case "up", "down":
		suffix := "." + target + ".sql"
		var picked []string
		for _, n := range names {
			if strings.HasSuffix(n, suffix) {
				picked = append(picked, n)
			}
		}
		if target == "down" {
			sort.Sort(sort.Reverse(sort.StringSlice(picked)))
		}
		if len(picked) == 0 {
			return nil, fmt.Errorf("no %s migrations found", target)
		}
		return picked, nil
	}

	name, err := matchMigration(names, target)
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

func matchMigration(names []string, migrationName string) (string, error) {
	regex, err := regexp.Compile(fmt.Sprintf(`^.*%s\.sql$`, regexp.QuoteMeta(migrationName)))
	if err != nil {
		return "", fmt.Errorf("invalid pattern: %w", err)
	}

	for _, n := range names {
		if regex.MatchString(n) {
			return n, nil
		}
	}

	return "", fmt.Errorf("migration file not found")
}
