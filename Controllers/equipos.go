package Controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Maquinaria/Models"
)

// EquipoController handles equipment endpoints.
type EquipoController struct {
	DB *gorm.DB
}

func NewEquipoController(db *gorm.DB) *EquipoController {
	return &EquipoController{DB: db}
}

type equipoInput struct {
	Codigo            string  `json:"codigo" validate:"required"`
	Tipo              string  `json:"tipo" validate:"required"`
	Marca             string  `json:"marca"`
	Modelo            string  `json:"modelo"`
	Serie             string  `json:"serie"`
	Placa             string  `json:"placa"`
	Anio              int     `json:"anio"`
	HorometroActual   float64 `json:"horometro_actual" validate:"gte=0"`
	KilometrajeActual float64 `json:"kilometraje_actual" validate:"gte=0"`
	TarifaHoraDefault float64 `json:"tarifa_hora_default" validate:"gte=0"`
	Estado            string  `json:"estado"`
	Ubicacion         string  `json:"ubicacion"`
	EmpresaID         *uint   `json:"empresa_id"`
}

// GetEquipos lists equipment, filterable by tipo, estado, empresa and a
// free-text search over código/placa/serie.
func (ec *EquipoController) GetEquipos(ctx *fiber.Ctx) error {
	query := ec.DB.Model(&Models.Equipo{}).Where("activo = ?", true)

	if tipo := ctx.Query("tipo"); tipo != "" {
		query = query.Where("tipo = ?", tipo)
	}
	if estado := ctx.Query("estado"); estado != "" {
		query = query.Where("estado = ?", estado)
	}
	if empresa := ctx.Query("empresa_id"); empresa != "" {
		query = query.Where("empresa_id = ?", empresa)
	}
	if q := ctx.Query("q"); q != "" {
		like := "%" + strings.ToUpper(q) + "%"
		query = query.Where("UPPER(codigo) LIKE ? OR UPPER(placa) LIKE ? OR UPPER(serie) LIKE ?", like, like, like)
	}

	var equipos []Models.Equipo
	if err := query.Order("codigo").Find(&equipos).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron obtener los equipos"})
	}

	return ctx.JSON(equipos)
}

// GetEquipo retrieves a single machine by ID.
func (ec *EquipoController) GetEquipo(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de equipo inválido"})
	}

	var equipo Models.Equipo
	if err := ec.DB.First(&equipo, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Equipo no encontrado"})
	}

	return ctx.JSON(equipo)
}

// CreateEquipo registers a machine.
func (ec *EquipoController) CreateEquipo(ctx *fiber.Ctx) error {
	var input equipoInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if mensajes := Validar(input); mensajes != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": mensajes})
	}

	equipo := Models.Equipo{
		Codigo:            strings.TrimSpace(input.Codigo),
		Tipo:              input.Tipo,
		Marca:             input.Marca,
		Modelo:            input.Modelo,
		Serie:             input.Serie,
		Placa:             input.Placa,
		Anio:              input.Anio,
		HorometroActual:   input.HorometroActual,
		KilometrajeActual: input.KilometrajeActual,
		TarifaHoraDefault: input.TarifaHoraDefault,
		Estado:            input.Estado,
		Ubicacion:         input.Ubicacion,
		EmpresaID:         input.EmpresaID,
		Activo:            true,
	}
	if equipo.Estado == "" {
		equipo.Estado = Models.EstadoOperativo
	}

	if err := ec.DB.Create(&equipo).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "Duplicate entry") {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Ya existe un equipo con este código",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo crear el equipo"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(equipo)
}

// UpdateEquipo updates machine attributes. Código never changes once
// assigned and the hour-meter never moves backward.
func (ec *EquipoController) UpdateEquipo(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de equipo inválido"})
	}

	var equipo Models.Equipo
	if err := ec.DB.First(&equipo, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Equipo no encontrado"})
	}

	var input equipoInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Codigo != "" && strings.TrimSpace(input.Codigo) != equipo.Codigo {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "El código del equipo no puede modificarse",
		})
	}
	if input.HorometroActual < equipo.HorometroActual {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "El horómetro no puede disminuir",
		})
	}

	equipo.Tipo = input.Tipo
	equipo.Marca = input.Marca
	equipo.Modelo = input.Modelo
	equipo.Serie = input.Serie
	equipo.Placa = input.Placa
	equipo.Anio = input.Anio
	equipo.HorometroActual = input.HorometroActual
	equipo.KilometrajeActual = input.KilometrajeActual
	equipo.TarifaHoraDefault = input.TarifaHoraDefault
	equipo.Ubicacion = input.Ubicacion
	equipo.EmpresaID = input.EmpresaID
	if input.Estado != "" {
		equipo.Estado = input.Estado
	}

	if err := ec.DB.Save(&equipo).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo actualizar el equipo"})
	}

	return ctx.JSON(equipo)
}

// DeleteEquipo deactivates a machine; history stays queryable.
func (ec *EquipoController) DeleteEquipo(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de equipo inválido"})
	}

	var equipo Models.Equipo
	if err := ec.DB.First(&equipo, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Equipo no encontrado"})
	}

	if err := ec.DB.Model(&equipo).Update("activo", false).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo desactivar el equipo"})
	}

	return ctx.JSON(fiber.Map{"message": "Equipo desactivado"})
}

// GetEquipoDocumentos returns the machine's insurance and inspection
// history together with the days remaining on the latest of each.
func (ec *EquipoController) GetEquipoDocumentos(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de equipo inválido"})
	}

	var equipo Models.Equipo
	if err := ec.DB.First(&equipo, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Equipo no encontrado"})
	}

	var soat []Models.Soat
	ec.DB.Where("equipo_id = ?", equipo.ID).Order("fecha_vencimiento DESC").Find(&soat)

	var revisiones []Models.RevisionTecnica
	ec.DB.Where("equipo_id = ?", equipo.ID).Order("fecha_vencimiento DESC").Find(&revisiones)

	return ctx.JSON(fiber.Map{
		"equipo":     equipo,
		"soat":       soat,
		"revisiones": revisiones,
	})
}

// GetFiltros returns the filter part numbers catalogued for the machine's
// model, or an empty map for models without a catalogue entry.
func (ec *EquipoController) GetFiltros(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de equipo inválido"})
	}

	var equipo Models.Equipo
	if err := ec.DB.First(&equipo, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Equipo no encontrado"})
	}

	filtros := Models.FiltrosDeModelo(equipo.Modelo)
	return ctx.JSON(fiber.Map{
		"modelo":  equipo.Modelo,
		"filtros": filtros,
	})
}
