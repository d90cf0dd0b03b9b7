package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens sqlite with sensible defaults.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)
	return db, nil
}

// WithTx runs fn in a transaction.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Reset empties the catalog tables.
func Reset(db *sql.DB) error {
	return WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM products`); err != nil {
			return fmt.Errorf("clear products: %w", err)
		}
		if _, err := tx.Exec(`DELETE FROM categories`); err != nil {
			return fmt.Errorf("clear categories: %w", err)
		}
		return nil
	})
}
