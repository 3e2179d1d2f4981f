package Controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Maquinaria/Models"
)

// MantenimientoController handles maintenance job endpoints.
type MantenimientoController struct {
	DB *gorm.DB
}

func NewMantenimientoController(db *gorm.DB) *MantenimientoController {
	return &MantenimientoController{DB: db}
}

type mantenimientoInput struct {
	EquipoID                  uint     `json:"equipo_id" validate:"required"`
	Tipo                      string   `json:"tipo" validate:"omitempty,oneof=preventivo correctivo emergencia"`
	Descripcion               string   `json:"descripcion" validate:"required"`
	FechaProgramada           string   `json:"fecha_programada"`
	HorometroMantenimiento    *float64 `json:"horometro_mantenimiento"`
	Costo                     float64  `json:"costo" validate:"gte=0"`
	Proveedor                 string   `json:"proveedor"`
	ProximoMantenimientoHoras *float64 `json:"proximo_mantenimiento_horas"`
	ProximoMantenimientoFecha string   `json:"proximo_mantenimiento_fecha"`
	Observaciones             string   `json:"observaciones"`
}

type estadoInput struct {
	Estado string `json:"estado" validate:"required,oneof=pendiente en_proceso completado cancelado"`
}

func (mc *MantenimientoController) GetMantenimientos(ctx *fiber.Ctx) error {
	query := mc.DB.Model(&Models.Mantenimiento{})

	if equipo := ctx.Query("equipo_id"); equipo != "" {
		query = query.Where("equipo_id = ?", equipo)
	}
	if estado := ctx.Query("estado"); estado != "" {
		query = query.Where("estado = ?", estado)
	}
	if tipo := ctx.Query("tipo"); tipo != "" {
		query = query.Where("tipo = ?", tipo)
	}

	var mantenimientos []Models.Mantenimiento
	if err := query.Order("fecha_programada DESC, id DESC").Find(&mantenimientos).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron obtener los mantenimientos"})
	}
	return ctx.JSON(mantenimientos)
}

func (mc *MantenimientoController) GetMantenimiento(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de mantenimiento inválido"})
	}

	var mant Models.Mantenimiento
	if err := mc.DB.First(&mant, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mantenimiento no encontrado"})
	}
	return ctx.JSON(mant)
}

func (mc *MantenimientoController) CreateMantenimiento(ctx *fiber.Ctx) error {
	var input mantenimientoInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if mensajes := Validar(input); mensajes != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": mensajes})
	}

	var equipo Models.Equipo
	if err := mc.DB.First(&equipo, input.EquipoID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Equipo no encontrado"})
	}

	mant := Models.Mantenimiento{
		EquipoID:                  input.EquipoID,
		Tipo:                      input.Tipo,
		Descripcion:               input.Descripcion,
		FechaProgramada:           input.FechaProgramada,
		HorometroMantenimiento:    input.HorometroMantenimiento,
		Costo:                     input.Costo,
		Proveedor:                 input.Proveedor,
		ProximoMantenimientoHoras: input.ProximoMantenimientoHoras,
		ProximoMantenimientoFecha: input.ProximoMantenimientoFecha,
		Estado:                    Models.MantenimientoPendiente,
		Observaciones:             input.Observaciones,
	}
	if mant.Tipo == "" {
		mant.Tipo = Models.MantenimientoPreventivo
	}
	if user, ok := ctx.Locals("user").(Models.User); ok {
		id := user.ID
		mant.CreatedBy = &id
	}

	if err := mc.DB.Create(&mant).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo crear el mantenimiento"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(mant)
}

func (mc *MantenimientoController) UpdateMantenimiento(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de mantenimiento inválido"})
	}

	var mant Models.Mantenimiento
	if err := mc.DB.First(&mant, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mantenimiento no encontrado"})
	}
	if mant.Estado == Models.MantenimientoCompletado || mant.Estado == Models.MantenimientoCancelado {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Un mantenimiento completado o cancelado no puede modificarse",
		})
	}

	var input mantenimientoInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	mant.Descripcion = input.Descripcion
	mant.FechaProgramada = input.FechaProgramada
	mant.HorometroMantenimiento = input.HorometroMantenimiento
	mant.Costo = input.Costo
	mant.Proveedor = input.Proveedor
	mant.ProximoMantenimientoHoras = input.ProximoMantenimientoHoras
	mant.ProximoMantenimientoFecha = input.ProximoMantenimientoFecha
	mant.Observaciones = input.Observaciones
	if input.Tipo != "" {
		mant.Tipo = input.Tipo
	}

	if err := mc.DB.Save(&mant).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo actualizar el mantenimiento"})
	}
	return ctx.JSON(mant)
}

// UpdateEstado moves a maintenance job through its lifecycle. Only the
// transitions the state machine allows go through; completion stamps the
// execution date.
func (mc *MantenimientoController) UpdateEstado(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de mantenimiento inválido"})
	}

	var mant Models.Mantenimiento
	if err := mc.DB.First(&mant, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mantenimiento no encontrado"})
	}

	var input estadoInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if mensajes := Validar(input); mensajes != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": mensajes})
	}

	if !Models.EstadoValido(mant.Estado, input.Estado) {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Transición de estado no permitida: de " + mant.Estado + " a " + input.Estado,
		})
	}

	mant.Estado = input.Estado
	if input.Estado == Models.MantenimientoCompletado {
		mant.FechaEjecutada = time.Now().UTC().Format("2006-01-02")
	}

	if err := mc.DB.Save(&mant).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo actualizar el estado"})
	}
	return ctx.JSON(mant)
}

func (mc *MantenimientoController) DeleteMantenimiento(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de mantenimiento inválido"})
	}

	var mant Models.Mantenimiento
	if err := mc.DB.First(&mant, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mantenimiento no encontrado"})
	}

	mc.DB.Delete(&mant)
	return ctx.JSON(fiber.Map{"message": "Mantenimiento eliminado"})
}
