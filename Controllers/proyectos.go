package Controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Maquinaria/Models"
)

// ProyectoController handles construction-project endpoints.
type ProyectoController struct {
	DB *gorm.DB
}

func NewProyectoController(db *gorm.DB) *ProyectoController {
	return &ProyectoController{DB: db}
}

type proyectoInput struct {
	Nombre      string `json:"nombre" validate:"required"`
	Codigo      string `json:"codigo" validate:"required"`
	Cliente     string `json:"cliente"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
	Ubicacion   string `json:"ubicacion"`
	EmpresaID   *uint  `json:"empresa_id"`
}

func (pc *ProyectoController) GetProyectos(ctx *fiber.Ctx) error {
	query := pc.DB.Model(&Models.Proyecto{}).Where("activo = ?", true)
	if empresa := ctx.Query("empresa_id"); empresa != "" {
		query = query.Where("empresa_id = ?", empresa)
	}

	var proyectos []Models.Proyecto
	if err := query.Order("codigo").Find(&proyectos).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron obtener los proyectos"})
	}
	return ctx.JSON(proyectos)
}

func (pc *ProyectoController) GetProyecto(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de proyecto inválido"})
	}

	var proyecto Models.Proyecto
	if err := pc.DB.First(&proyecto, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Proyecto no encontrado"})
	}
	return ctx.JSON(proyecto)
}

func (pc *ProyectoController) CreateProyecto(ctx *fiber.Ctx) error {
	var input proyectoInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if mensajes := Validar(input); mensajes != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": mensajes})
	}

	proyecto := Models.Proyecto{
		Nombre:      input.Nombre,
		Codigo:      strings.TrimSpace(input.Codigo),
		Cliente:     input.Cliente,
		FechaInicio: input.FechaInicio,
		FechaFin:    input.FechaFin,
		Ubicacion:   input.Ubicacion,
		EmpresaID:   input.EmpresaID,
		Activo:      true,
	}
	if err := pc.DB.Create(&proyecto).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "Duplicate entry") {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Ya existe un proyecto con este código"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo crear el proyecto"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(proyecto)
}

func (pc *ProyectoController) UpdateProyecto(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de proyecto inválido"})
	}

	var proyecto Models.Proyecto
	if err := pc.DB.First(&proyecto, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Proyecto no encontrado"})
	}

	var input proyectoInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	proyecto.Nombre = input.Nombre
	proyecto.Cliente = input.Cliente
	proyecto.FechaInicio = input.FechaInicio
	proyecto.FechaFin = input.FechaFin
	proyecto.Ubicacion = input.Ubicacion
	proyecto.EmpresaID = input.EmpresaID

	if err := pc.DB.Save(&proyecto).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo actualizar el proyecto"})
	}
	return ctx.JSON(proyecto)
}

func (pc *ProyectoController) DeleteProyecto(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de proyecto inválido"})
	}

	var proyecto Models.Proyecto
	if err := pc.DB.First(&proyecto, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Proyecto no encontrado"})
	}

	if err := pc.DB.Model(&proyecto).Update("activo", false).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo desactivar el proyecto"})
	}
	return ctx.JSON(fiber.Map{"message": "Proyecto desactivado"})
}
