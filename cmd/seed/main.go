// seed genera el script SQL que puebla website_lists y websites a partir de un catálogo YAML,
// o lo carga directamente en una base SQLite local.
//
// Uso:
//
//	go run ./cmd/seed [-schema] [-out seed.sql] [catalogo.yaml]
//	go run ./cmd/seed -sqlite websites.db [catalogo.yaml]
//	go run ./cmd/seed -apply [catalogo.yaml]   (usa DATABASE_URL o DB_*)
//
// Por defecto lee seed.yaml del directorio actual y escribe el SQL en stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lewistwins/websites/internal/infrastructure/postgres"
	"github.com/lewistwins/websites/internal/infrastructure/seed"
	"github.com/lewistwins/websites/internal/infrastructure/sqlite"
	"github.com/lewistwins/websites/pkg/config"
)

func main() {
	withSchema := flag.Bool("schema", false, "incluir CREATE TABLE antes de los INSERT")
	outPath := flag.String("out", "", "archivo de salida (por defecto stdout)")
	sqlitePath := flag.String("sqlite", "", "cargar el catálogo en esta base SQLite en lugar de generar SQL")
	apply := flag.Bool("apply", false, "cargar el catálogo directamente en PostgreSQL")
	flag.Parse()

	yamlPath := "seed.yaml"
	if flag.NArg() > 0 {
		yamlPath = flag.Arg(0)
	}

	catalog, err := seed.LoadFile(yamlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer catálogo: %v\n", err)
		os.Exit(1)
	}

	if *sqlitePath != "" {
		if err := loadSQLite(*sqlitePath, catalog); err != nil {
			fmt.Fprintf(os.Stderr, "Cargar SQLite: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cargadas %d categorías en %s\n", len(catalog.Categories), *sqlitePath)
		return
	}

	if *apply {
		if err := applyPostgres(catalog); err != nil {
			fmt.Fprintf(os.Stderr, "Cargar PostgreSQL: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cargadas %d categorías en PostgreSQL\n", len(catalog.Categories))
		return
	}

	schema := ""
	if *withSchema {
		if schema, err = postgres.Schema(); err != nil {
			fmt.Fprintf(os.Stderr, "Leer esquema: %v\n", err)
			os.Exit(1)
		}
	}

	var w io.Writer = os.Stdout
	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
			os.Exit(1)
		}
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := catalog.WriteSQL(w, schema); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	if *outPath != "" {
		fmt.Printf("Escrito %s (%d categorías)\n", *outPath, len(catalog.Categories))
	}
}

func loadSQLite(path string, c *seed.Catalog) error {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()
	return sqlite.Load(ctx, db, c)
}

func applyPostgres(c *seed.Catalog) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()
	return postgres.NewTxRunner(pool).LoadCatalog(ctx, c)
}
