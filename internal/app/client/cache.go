package client

import (
	"database/sql"
	"fmt"
	"time"

	// SQLite driver for the local read cache
	_ "github.com/mattn/go-sqlite3"
)

// Cache is a local sqlite snapshot of the last contact list fetched from the
// server. It only serves reads when the server is unreachable; the server
// stays the single source of truth.
type Cache struct {
	db *sql.DB
}

func NewCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	cache := &Cache{db: db}
	if err := cache.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache tables: %w", err)
	}

	return cache, nil
}

func (c *Cache) initTables() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS contacts (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			company TEXT NOT NULL DEFAULT '',
			"desc" TEXT NOT NULL DEFAULT '',
			img TEXT NOT NULL DEFAULT '',
			fetched_at DATETIME NOT NULL
		);
	`)
	return err
}

// Replace swaps the cached snapshot for the given list.
func (c *Cache) Replace(contacts []Contact) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin cache tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM contacts`); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}

	now := time.Now().UTC()
	for _, contact := range contacts {
		_, err := tx.Exec(
			`INSERT INTO contacts (id, name, company, "desc", img, fetched_at) VALUES (?, ?, ?, ?, ?, ?)`,
			contact.ID, contact.Name, contact.Company, contact.Desc, contact.Img, now,
		)
		if err != nil {
			return fmt.Errorf("cache contact: %w", err)
		}
	}

	return tx.Commit()
}

// Load returns the cached snapshot ordered by id ascending.
func (c *Cache) Load() ([]Contact, error) {
	rows, err := c.db.Query(`SELECT id, name, company, "desc", img FROM contacts ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("load cache: %w", err)
	}
	defer rows.Close()

	contacts := make([]Contact, 0)
	for rows.Next() {
		var contact Contact
		err := rows.Scan(&contact.ID, &contact.Name, &contact.Company, &contact.Desc, &contact.Img)
		if err != nil {
			return nil, fmt.Errorf("scan cached contact: %w", err)
		}
		contacts = append(contacts, contact)
	}

	return contacts, rows.Err()
}

func (c *Cache) Close() error {
	return c.db.Close()
}
