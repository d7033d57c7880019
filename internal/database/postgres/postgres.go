package postgres

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/valvesss/weseg-replit/internal/config"
)

var DBStatus bool

// ConnectAndCreateDB connects to the configured database, creating it
// (and running schema.sql) on first contact.
func ConnectAndCreateDB(cfg config.PostgresConfig) (*sqlx.DB, error) {
	defaultConnStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=disable",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password)

	defaultDB, err := sql.Open("postgres", defaultConnStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to default postgres db: %w", err)
	}
	defer defaultDB.Close()

	var exists bool
	checkQuery := `SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`
	err = defaultDB.QueryRow(checkQuery, cfg.DBname).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check if database exists: %w", err)
	}

	if !exists {
		createQuery := fmt.Sprintf(`CREATE DATABASE "%s"`, cfg.DBname)
		_, err = defaultDB.Exec(createQuery)
		if err != nil {
			return nil, fmt.Errorf("failed to create database %s: %w", cfg.DBname, err)
		}
		log.Printf("Database '%s' created", cfg.DBname)
	}

	targetConnStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.DBname)

	db, err := sqlx.Connect("postgres", targetConnStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to target database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping target database: %w", err)
	}

	if !exists {
		if err := executeSchema(db); err != nil {
			// Allow manual schema setup instead of failing startup.
			log.Printf("Warning: failed to execute schema.sql: %v", err)
		}
	}

	DBStatus = true
	return db, nil
}

// executeSchema reads and executes the schema.sql file.
func executeSchema(db *sqlx.DB) error {
	schemaLocations := []string{
		"schema.sql",
		"./schema.sql",
		"/app/schema.sql",
		filepath.Join(os.Getenv("PWD"), "schema.sql"),
	}

	var schemaPath string
	for _, location := range schemaLocations {
		if _, err := os.Stat(location); err == nil {
			schemaPath = location
			break
		}
	}
	if schemaPath == "" {
		return fmt.Errorf("schema.sql not found in any expected locations: %v", schemaLocations)
	}

	schemaContent, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read schema.sql from %s: %w", schemaPath, err)
	}

	statements := strings.Split(string(schemaContent), ";")
	successCount := 0
	for i, statement := range statements {
		statement = strings.TrimSpace(statement)
		if statement == "" || strings.HasPrefix(statement, "--") {
			continue
		}
		if _, err := db.Exec(statement); err != nil {
			log.Printf("Warning: failed to execute schema statement %d: %v", i+1, err)
			continue
		}
		successCount++
	}

	log.Printf("Schema execution completed, %d statements applied", successCount)
	return nil
}

// RetryConnectOnFailed keeps retrying the connection in the background
// until it succeeds. Used when the database is not up yet at boot.
func RetryConnectOnFailed(wait time.Duration, db **sqlx.DB, cfg config.PostgresConfig) {
	if DBStatus {
		return
	}

	if *db != nil {
		if err := (*db).Ping(); err == nil {
			log.Printf("database connection is healthy, no retry needed")
			return
		}
	}

	newDB, err := ConnectAndCreateDB(cfg)
	if err == nil {
		*db = newDB
		log.Printf("database retry connection succeeded")
		return
	}
	log.Printf("failed to retry connect database: %s, next retry in %v", err, wait)
	time.Sleep(wait)

	RetryConnectOnFailed(wait, db, cfg)
}
