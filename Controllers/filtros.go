package Controllers

import (
	"github.com/gofiber/fiber/v2"

	"Maquinaria/Models"
)

// GetCatalogoFiltros serves the whole filter part catalogue.
func GetCatalogoFiltros(ctx *fiber.Ctx) error {
	return ctx.JSON(Models.FiltrosPorModelo)
}

// GetFiltrosPorModelo serves the filter parts for one model.
func GetFiltrosPorModelo(ctx *fiber.Ctx) error {
	modelo := ctx.Params("modelo")
	filtros := Models.FiltrosDeModelo(modelo)
	if len(filtros) == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Modelo sin catálogo de filtros"})
	}
	return ctx.JSON(fiber.Map{
		"modelo":  modelo,
		"filtros": filtros,
	})
}
