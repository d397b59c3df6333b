package postgres

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Schema devuelve los scripts de migrations/ concatenados en orden de nombre.
func Schema() (string, error) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return "", fmt.Errorf("listar migraciones: %w", err)
	}
	sort.Strings(names)
	var out string
	for _, name := range names {
		b, err := migrationsFS.ReadFile(name)
		if err != nil {
			return "", fmt.Errorf("leer %s: %w", name, err)
		}
		out += string(b) + "\n"
	}
	return out, nil
}
