package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lewistwins/websites/internal/infrastructure/seed"
)

// Beginner lo implementan *pgxpool.Pool y *pgx.Conn.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// El sitio solo lee; lo usa cmd/seed para escribir el catálogo.
type TxRunner struct {
	db Beginner
}

// NewTxRunner construye el runner con el pool (o una conexión).
func NewTxRunner(db Beginner) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// LoadCatalog reemplaza website_lists y websites por el catálogo y ajusta las secuencias.
func (r *TxRunner) LoadCatalog(ctx context.Context, c *seed.Catalog) error {
	return r.Run(ctx, func(tx pgx.Tx) error {
		b := &pgx.Batch{}
		b.Queue(`TRUNCATE websites, website_lists RESTART IDENTITY CASCADE`)
		for _, cat := range c.Categories {
			b.Queue(`INSERT INTO website_lists (id, name, description, color, order_index) VALUES ($1, $2, $3, $4, $5)`,
				cat.ID, cat.Name, nullString(cat.Description), nullString(cat.Color), cat.OrderIndex)
			for _, w := range cat.Websites {
				b.Queue(`INSERT INTO websites (id, website_list_id, title, url, description, order_index) VALUES ($1, $2, $3, $4, $5, $6)`,
					w.ID, cat.ID, w.Title, w.URL, nullString(w.Description), w.OrderIndex)
			}
		}
		b.Queue(`SELECT setval(pg_get_serial_sequence('website_lists', 'id'), COALESCE(MAX(id), 1)) FROM website_lists`)
		b.Queue(`SELECT setval(pg_get_serial_sequence('websites', 'id'), COALESCE(MAX(id), 1)) FROM websites`)

		if err := tx.SendBatch(ctx, b).Close(); err != nil {
			return fmt.Errorf("cargar catálogo: %w", err)
		}
		return nil
	})
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
