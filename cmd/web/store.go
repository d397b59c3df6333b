package main

import (
	"context"
	"fmt"

	"github.com/lewistwins/websites/internal/domain/repository"
	"github.com/lewistwins/websites/internal/infrastructure/postgres"
	"github.com/lewistwins/websites/internal/infrastructure/seed"
	"github.com/lewistwins/websites/internal/infrastructure/sqlite"
	"github.com/lewistwins/websites/internal/infrastructure/supabase"
	"github.com/lewistwins/websites/pkg/config"
	"github.com/lewistwins/websites/pkg/logger"
)

// store repositorios del adaptador elegido y su función de cierre.
type store struct {
	categories repository.CategoryRepository
	websites   repository.WebsiteRepository
	close      func()
}

// openStore construye una sola vez el cliente de la tienda según STORE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*store, error) {
	switch cfg.Store.Driver {
	case config.DriverSupabase:
		client := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.AnonKey, cfg.Store.Timeout)
		log.Info().Str("url", cfg.Supabase.URL).Msg("tienda: Supabase REST")
		return &store{
			categories: supabase.NewCategoryRepository(client),
			websites:   supabase.NewWebsiteRepository(client),
			close:      func() {},
		}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		log.Info().Msg("tienda: PostgreSQL")
		return &store{
			categories: postgres.NewCategoryRepository(pool),
			websites:   postgres.NewWebsiteRepository(pool),
			close:      pool.Close,
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		if cfg.SQLite.SeedFile != "" {
			catalog, err := seed.LoadFile(cfg.SQLite.SeedFile)
			if err != nil {
				db.Close()
				return nil, err
			}
			if err := sqlite.Load(ctx, db, catalog); err != nil {
				db.Close()
				return nil, err
			}
			log.Info().Str("seed", cfg.SQLite.SeedFile).Int("categories", len(catalog.Categories)).Msg("semilla cargada")
		}
		log.Info().Str("path", cfg.SQLite.Path).Msg("tienda: SQLite")
		return &store{
			categories: sqlite.NewCategoryRepository(db),
			websites:   sqlite.NewWebsiteRepository(db),
			close:      func() { _ = db.Close() },
		}, nil
	}
	return nil, fmt.Errorf("STORE_DRIVER desconocido %q", cfg.Store.Driver)
}
