package seed

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteSQL escribe un script PostgreSQL: el esquema (si no está vacío), el vaciado
// de ambas tablas, los INSERT del catálogo y el ajuste de las secuencias BIGSERIAL.
func (c *Catalog) WriteSQL(w io.Writer, schema string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "-- Generado por cmd/seed. No editar a mano.")
	if s := strings.TrimSpace(schema); s != "" {
		fmt.Fprintln(bw, s)
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw, "BEGIN;")
	fmt.Fprintln(bw, "TRUNCATE websites, website_lists RESTART IDENTITY CASCADE;")
	fmt.Fprintln(bw)

	for _, cat := range c.Categories {
		fmt.Fprintf(bw,
			"INSERT INTO website_lists (id, name, description, color, order_index) VALUES (%d, %s, %s, %s, %d);\n",
			cat.ID, quote(cat.Name), quoteNullable(cat.Description), quoteNullable(cat.Color), cat.OrderIndex)
		for _, site := range cat.Websites {
			fmt.Fprintf(bw,
				"INSERT INTO websites (id, website_list_id, title, url, description, order_index) VALUES (%d, %d, %s, %s, %s, %d);\n",
				site.ID, cat.ID, quote(site.Title), quote(site.URL), quoteNullable(site.Description), site.OrderIndex)
		}
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "SELECT setval(pg_get_serial_sequence('website_lists', 'id'), COALESCE(MAX(id), 1)) FROM website_lists;")
	fmt.Fprintln(bw, "SELECT setval(pg_get_serial_sequence('websites', 'id'), COALESCE(MAX(id), 1)) FROM websites;")
	fmt.Fprintln(bw, "COMMIT;")
	return bw.Flush()
}

// quote literal SQL con comillas simples duplicadas.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteNullable(s string) string {
	if s == "" {
		return "NULL"
	}
	return quote(s)
}
