package Controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Maquinaria/Models"
)

// RevisionController handles technical inspection endpoints.
type RevisionController struct {
	DB *gorm.DB
}

func NewRevisionController(db *gorm.DB) *RevisionController {
	return &RevisionController{DB: db}
}

type revisionInput struct {
	EquipoID          uint    `json:"equipo_id" validate:"required"`
	NumeroCertificado string  `json:"numero_certificado"`
	Taller            string  `json:"taller"`
	FechaRevision     string  `json:"fecha_revision" validate:"required"`
	FechaVencimiento  string  `json:"fecha_vencimiento" validate:"required"`
	Resultado         string  `json:"resultado" validate:"omitempty,oneof=aprobado observado rechazado"`
	Costo             float64 `json:"costo" validate:"gte=0"`
	ArchivoURL        string  `json:"archivo_url"`
	Observaciones     string  `json:"observaciones"`
}

func (rc *RevisionController) GetRevisiones(ctx *fiber.Ctx) error {
	query := rc.DB.Model(&Models.RevisionTecnica{})

	if equipo := ctx.Query("equipo_id"); equipo != "" {
		query = query.Where("equipo_id = ?", equipo)
	}
	if resultado := ctx.Query("resultado"); resultado != "" {
		query = query.Where("resultado = ?", resultado)
	}

	var revisiones []Models.RevisionTecnica
	if err := query.Order("fecha_vencimiento DESC").Find(&revisiones).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron obtener las revisiones"})
	}
	return ctx.JSON(revisiones)
}

func (rc *RevisionController) GetRevision(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de revisión inválido"})
	}

	var revision Models.RevisionTecnica
	if err := rc.DB.First(&revision, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Revisión no encontrada"})
	}
	return ctx.JSON(revision)
}

func (rc *RevisionController) CreateRevision(ctx *fiber.Ctx) error {
	var input revisionInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if mensajes := Validar(input); mensajes != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": mensajes})
	}

	var equipo Models.Equipo
	if err := rc.DB.First(&equipo, input.EquipoID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Equipo no encontrado"})
	}

	revision := Models.RevisionTecnica{
		EquipoID:          input.EquipoID,
		NumeroCertificado: input.NumeroCertificado,
		Taller:            input.Taller,
		FechaRevision:     input.FechaRevision,
		FechaVencimiento:  input.FechaVencimiento,
		Resultado:         input.Resultado,
		Costo:             input.Costo,
		ArchivoURL:        input.ArchivoURL,
		Observaciones:     input.Observaciones,
	}
	if revision.Resultado == "" {
		revision.Resultado = Models.RevisionAprobada
	}

	if err := rc.DB.Create(&revision).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "Duplicate entry") {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Ya existe una revisión para este equipo con el mismo vencimiento",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo registrar la revisión"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(revision)
}

func (rc *RevisionController) UpdateRevision(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de revisión inválido"})
	}

	var revision Models.RevisionTecnica
	if err := rc.DB.First(&revision, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Revisión no encontrada"})
	}

	var input revisionInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	revision.NumeroCertificado = input.NumeroCertificado
	revision.Taller = input.Taller
	revision.FechaRevision = input.FechaRevision
	revision.FechaVencimiento = input.FechaVencimiento
	revision.Costo = input.Costo
	revision.ArchivoURL = input.ArchivoURL
	revision.Observaciones = input.Observaciones
	if input.Resultado != "" {
		revision.Resultado = input.Resultado
	}

	if err := rc.DB.Save(&revision).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo actualizar la revisión"})
	}
	return ctx.JSON(revision)
}

func (rc *RevisionController) DeleteRevision(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de revisión inválido"})
	}

	var revision Models.RevisionTecnica
	if err := rc.DB.First(&revision, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Revisión no encontrada"})
	}

	rc.DB.Delete(&revision)
	return ctx.JSON(fiber.Map{"message": "Revisión eliminada"})
}
