package Controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Maquinaria/Models"
)

// SoatController handles insurance policy endpoints.
type SoatController struct {
	DB *gorm.DB
}

func NewSoatController(db *gorm.DB) *SoatController {
	return &SoatController{DB: db}
}

type soatInput struct {
	EquipoID         uint    `json:"equipo_id" validate:"required"`
	NumeroPoliza     string  `json:"numero_poliza" validate:"required"`
	Aseguradora      string  `json:"aseguradora" validate:"required"`
	FechaInicio      string  `json:"fecha_inicio" validate:"required"`
	FechaVencimiento string  `json:"fecha_vencimiento" validate:"required"`
	Monto            float64 `json:"monto" validate:"gte=0"`
	ArchivoURL       string  `json:"archivo_url"`
}

func (sc *SoatController) GetSoats(ctx *fiber.Ctx) error {
	query := sc.DB.Model(&Models.Soat{})

	if equipo := ctx.Query("equipo_id"); equipo != "" {
		query = query.Where("equipo_id = ?", equipo)
	}
	if vigente := ctx.Query("vigente"); vigente == "true" {
		query = query.Where("activo = ?", true)
	}

	var soats []Models.Soat
	if err := query.Order("fecha_vencimiento DESC").Find(&soats).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron obtener los SOAT"})
	}
	return ctx.JSON(soats)
}

func (sc *SoatController) GetSoat(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de SOAT inválido"})
	}

	var soat Models.Soat
	if err := sc.DB.First(&soat, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "SOAT no encontrado"})
	}
	return ctx.JSON(soat)
}

func (sc *SoatController) CreateSoat(ctx *fiber.Ctx) error {
	var input soatInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if mensajes := Validar(input); mensajes != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": mensajes})
	}

	var equipo Models.Equipo
	if err := sc.DB.First(&equipo, input.EquipoID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Equipo no encontrado"})
	}

	soat := Models.Soat{
		EquipoID:         input.EquipoID,
		NumeroPoliza:     input.NumeroPoliza,
		Aseguradora:      input.Aseguradora,
		FechaInicio:      input.FechaInicio,
		FechaVencimiento: input.FechaVencimiento,
		Monto:            input.Monto,
		ArchivoURL:       input.ArchivoURL,
		Activo:           true,
	}
	if err := sc.DB.Create(&soat).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "Duplicate entry") {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Ya existe un SOAT para este equipo con el mismo vencimiento",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo registrar el SOAT"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(soat)
}

func (sc *SoatController) UpdateSoat(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de SOAT inválido"})
	}

	var soat Models.Soat
	if err := sc.DB.First(&soat, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "SOAT no encontrado"})
	}

	var input soatInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	soat.NumeroPoliza = input.NumeroPoliza
	soat.Aseguradora = input.Aseguradora
	soat.FechaInicio = input.FechaInicio
	soat.FechaVencimiento = input.FechaVencimiento
	soat.Monto = input.Monto
	soat.ArchivoURL = input.ArchivoURL

	if err := sc.DB.Save(&soat).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo actualizar el SOAT"})
	}
	return ctx.JSON(soat)
}

func (sc *SoatController) DeleteSoat(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de SOAT inválido"})
	}

	var soat Models.Soat
	if err := sc.DB.First(&soat, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "SOAT no encontrado"})
	}

	sc.DB.Delete(&soat)
	return ctx.JSON(fiber.Map{"message": "SOAT eliminado"})
}
