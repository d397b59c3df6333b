// Package sqlite tienda de tablas local (sin red) para desarrollo y pruebas.
// Replica las tablas website_lists y websites de Supabase.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/lewistwins/websites/internal/infrastructure/seed"
)

const schema = `
CREATE TABLE IF NOT EXISTS website_lists (
	id          INTEGER PRIMARY KEY,
	name        TEXT    NOT NULL,
	description TEXT,
	color       TEXT,
	order_index INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS websites (
	id              INTEGER PRIMARY KEY,
	website_list_id INTEGER NOT NULL REFERENCES website_lists (id) ON DELETE CASCADE,
	title           TEXT    NOT NULL,
	url             TEXT    NOT NULL,
	description     TEXT,
	order_index     INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS websites_list_order_idx ON websites (website_list_id, order_index);
`

// Open abre (o crea) la base en path, aplica PRAGMAs y el esquema.
// path puede ser ":memory:".
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: abrir %s: %w", path, err)
	}
	// Con :memory: cada conexión sería una base distinta.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite: %s: %w", pragma, err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: aplicar esquema: %w", err)
	}
	return db, nil
}

// Load reemplaza el contenido de ambas tablas por el catálogo en una transacción.
func Load(ctx context.Context, db *sql.DB, c *seed.Catalog) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM websites; DELETE FROM website_lists;`); err != nil {
		return fmt.Errorf("sqlite: vaciar tablas: %w", err)
	}
	for _, cat := range c.Categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO website_lists (id, name, description, color, order_index) VALUES (?, ?, ?, ?, ?)`,
			cat.ID, cat.Name, nullable(cat.Description), nullable(cat.Color), cat.OrderIndex,
		); err != nil {
			return fmt.Errorf("sqlite: insertar categoría %d: %w", cat.ID, err)
		}
		for _, w := range cat.Websites {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO websites (id, website_list_id, title, url, description, order_index) VALUES (?, ?, ?, ?, ?, ?)`,
				w.ID, cat.ID, w.Title, w.URL, nullable(w.Description), w.OrderIndex,
			); err != nil {
				return fmt.Errorf("sqlite: insertar sitio %d: %w", w.ID, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
