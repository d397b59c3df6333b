package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lewistwins/websites/internal/application/dto"
	"github.com/lewistwins/websites/internal/domain"
)

// storeErrorStatus traduce un error de carga a código HTTP y código de error de la API.
func storeErrorStatus(err error) (int, dto.ErrorResponse) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: "id de categoría inválido"}
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout, dto.ErrorResponse{Code: "TIMEOUT", Message: "la tienda de datos tardó demasiado; intenta de nuevo"}
	default:
		return fiber.StatusBadGateway, dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: "no se pudo consultar la tienda de datos"}
	}
}
