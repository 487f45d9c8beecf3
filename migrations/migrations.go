package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"parade/config"

	_ "github.com/lib/pq"
)

// Applies migrations/<n>.sql files in order, starting after the recorded version.
func main() {
	cfg := config.Env()
	db, err := sql.Open("postgres", fmt.Sprintf("%s search_path=%s", cfg.DSN(), cfg.DatabaseSchema))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	version, err := getMigrationVersion(db, cfg.DatabaseSchema)
	if err != nil {
		log.Fatal(err)
	}

	dir := "migrations"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	for {
		version++
		err = migrateUp(db, dir, version)
		if err != nil {
			break
		}
	}
}

func migrateUp(db *sql.DB, dir string, version int) error {
	file, err := os.ReadFile(filepath.Join(dir, fmt.Sprintf("%d.sql", version)))
	if err != nil {
		fmt.Println("Cannot migrate further up")
		return err
	}
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if _, err = tx.Exec(string(file)); err != nil {
		tx.Rollback()
		fmt.Printf("error executing migration %d: %v\n", version, err)
		return err
	}
	if _, err = tx.Exec("UPDATE migrations SET version = $1", version); err != nil {
		tx.Rollback()
		fmt.Printf("error updating migration version: %v\n", err)
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	fmt.Printf("Migrated to version %d\n", version)
	return nil
}

func getMigrationVersion(db *sql.DB, schema string) (version int, err error) {
	if _, err := db.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %q;", schema)); err != nil {
		return 0, err
	}
	err = db.QueryRow("SELECT version FROM migrations").Scan(&version)
	if err != nil {
		err := generateMigrationTable(db)
		if err != nil {
			return 0, err
		}
		return 0, nil
	}
	return version, nil
}

func generateMigrationTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INT PRIMARY KEY
		);
		INSERT INTO migrations (version) VALUES (0);
	`)
	if err != nil {
		return err
	}
	return nil
}
