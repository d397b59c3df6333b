// Package directory contiene los controladores de página del directorio de sitios:
// el listado de categorías (home) y el detalle de una categoría.
//
// Ambos siguen la misma máquina de estados idle → loading → (success | error) y
// vuelven a loading en cada Load. Cada Load obtiene un token de generación; la
// respuesta de una carga que ya no es la última se descarta, de modo que el estado
// final siempre corresponde a la petición más reciente.
package directory

import (
	"context"
	"time"
)

// Status estado de la máquina de carga.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// callContext acota una llamada a la tienda con d; d <= 0 no aplica límite.
func callContext(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// generations lleva el token de la carga vigente y cancela la anterior al empezar una nueva.
type generations struct {
	current uint64
	cancel  context.CancelFunc
}

// next registra una carga nueva. Debe llamarse con el mutex del controlador tomado.
func (g *generations) next(ctx context.Context) (context.Context, context.CancelFunc, uint64) {
	if g.cancel != nil {
		g.cancel()
	}
	lctx, cancel := context.WithCancel(ctx)
	g.current++
	g.cancel = cancel
	return lctx, cancel, g.current
}

// settle indica si gen sigue siendo la carga vigente; si lo es, la da por terminada.
func (g *generations) settle(gen uint64) bool {
	if gen != g.current {
		return false
	}
	g.cancel = nil
	return true
}
