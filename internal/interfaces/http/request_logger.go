package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lewistwins/websites/pkg/logger"
)

// Locals key y cabecera del identificador de petición.
const (
	LocalRequestID  = "request_id"
	HeaderRequestID = "X-Request-ID"
)

// RequestLogger asigna un request id (respeta uno entrante si es un UUID válido),
// lo devuelve en X-Request-ID y registra cada petición al terminar.
func RequestLogger(log *logger.Logger) fiber.Handler {
	httpLog := log.Component("http")
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(HeaderRequestID, id)

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		ev := httpLog.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = httpLog.Error()
		case status >= fiber.StatusBadRequest:
			ev = httpLog.Warn()
		}
		ev.Err(err).
			Str("request_id", id).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}

// GetRequestID obtiene el request id desde c.Locals.
func GetRequestID(c *fiber.Ctx) string {
	if v := c.Locals(LocalRequestID); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
