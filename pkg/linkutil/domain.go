// Package linkutil utilidades puras sobre las URL de destino de los sitios.
package linkutil

import (
	"net/url"
	"strings"
)

// DomainResult resultado etiquetado de Domain. Fallback=true: la URL no se pudo
// interpretar y Value es la entrada sin cambios.
type DomainResult struct {
	Value    string
	Fallback bool
}

// Domain devuelve el host de raw (sin puerto ni prefijo "www.") para mostrarlo en
// las tarjetas. Exige esquema y host; en otro caso devuelve raw tal cual.
func Domain(raw string) DomainResult {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Hostname() == "" {
		return DomainResult{Value: raw, Fallback: true}
	}
	host := strings.ToLower(u.Hostname())
	return DomainResult{Value: strings.TrimPrefix(host, "www.")}
}
