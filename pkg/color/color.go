// Package color deriva canales RGB a partir de los colores de acento
// guardados en la tienda de tablas (cadenas de 6 dígitos hex, con o sin '#').
package color

import (
	"fmt"
	"regexp"
	"strconv"
)

// hexRe exige exactamente 6 dígitos hexadecimales, '#' opcional.
var hexRe = regexp.MustCompile(`^#?([a-fA-F\d]{2})([a-fA-F\d]{2})([a-fA-F\d]{2})$`)

// RGB tripleta de canales en [0,255].
type RGB struct {
	R, G, B int
}

var (
	// DefaultFallback se usa en tarjetas y acentos cuando el color no es válido.
	DefaultFallback = RGB{R: 255, G: 107, B: 107}
	// BackgroundFallback se usa en el fondo dinámico.
	BackgroundFallback = RGB{R: 102, G: 126, B: 234}
)

// Result resultado etiquetado: Fallback=true indica que la entrada no coincidió con el patrón.
// Embebe la tripleta, así res.Hex() y res.Channels() funcionan directamente.
type Result struct {
	RGB
	Fallback bool
}

// Parse interpreta s y devuelve DefaultFallback si no es un color válido.
func Parse(s string) Result {
	return ParseOr(s, DefaultFallback)
}

// ParseOr igual que Parse pero con la tripleta de respaldo indicada por el llamador.
func ParseOr(s string, fallback RGB) Result {
	m := hexRe.FindStringSubmatch(s)
	if m == nil {
		return Result{RGB: fallback, Fallback: true}
	}
	return Result{RGB: RGB{R: channel(m[1]), G: channel(m[2]), B: channel(m[3])}}
}

func channel(h string) int {
	n, _ := strconv.ParseUint(h, 16, 8) // el regex ya garantiza 2 dígitos hex
	return int(n)
}

// Channels devuelve "r, g, b" para componer expresiones rgba() en plantillas.
func (c RGB) Channels() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// RGBA expresión CSS translúcida.
func (c RGB) RGBA(alpha float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(alpha, 'f', -1, 64))
}

// Hex devuelve "#rrggbb" en minúsculas.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Complementary desplaza los canales (+40, +20, -50) y los acota a [0,255].
// Es el color secundario del fondo en la página de categoría.
func Complementary(c RGB) RGB {
	return RGB{R: clamp(c.R + 40), G: clamp(c.G + 20), B: clamp(c.B - 50)}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
