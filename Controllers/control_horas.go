package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Maquinaria/Models"
)

// ControlHorasController handles shift hour-meter entries. Entries are
// append-only: there is no update endpoint, a wrong entry is deleted and
// re-registered.
type ControlHorasController struct {
	DB *gorm.DB
}

func NewControlHorasController(db *gorm.DB) *ControlHorasController {
	return &ControlHorasController{DB: db}
}

type controlHorasInput struct {
	EquipoID        uint    `json:"equipo_id" validate:"required"`
	ProyectoID      *uint   `json:"proyecto_id"`
	Fecha           string  `json:"fecha" validate:"required"`
	Turno           string  `json:"turno" validate:"required,oneof=mañana tarde noche"`
	HorometroInicio float64 `json:"horometro_inicio" validate:"gte=0"`
	HorometroFin    float64 `json:"horometro_fin" validate:"gte=0"`
	Operador        string  `json:"operador"`
	Actividad       string  `json:"actividad"`
	Observaciones   string  `json:"observaciones"`
}

// GetControlHoras lists entries filtered by machine, project and date
// range.
func (cc *ControlHorasController) GetControlHoras(ctx *fiber.Ctx) error {
	query := cc.DB.Model(&Models.ControlHoras{})

	if equipo := ctx.Query("equipo_id"); equipo != "" {
		query = query.Where("equipo_id = ?", equipo)
	}
	if proyecto := ctx.Query("proyecto_id"); proyecto != "" {
		query = query.Where("proyecto_id = ?", proyecto)
	}
	if desde := ctx.Query("desde"); desde != "" {
		query = query.Where("fecha >= ?", desde)
	}
	if hasta := ctx.Query("hasta"); hasta != "" {
		query = query.Where("fecha <= ?", hasta)
	}

	var registros []Models.ControlHoras
	if err := query.Order("fecha DESC, id DESC").Find(&registros).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron obtener los registros"})
	}
	return ctx.JSON(registros)
}

// CreateControlHoras registers one shift. Worked hours are computed
// server side and the machine's hour-meter is raised to the final
// reading.
func (cc *ControlHorasController) CreateControlHoras(ctx *fiber.Ctx) error {
	var input controlHorasInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if mensajes := Validar(input); mensajes != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": mensajes})
	}

	var equipo Models.Equipo
	if err := cc.DB.First(&equipo, input.EquipoID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Equipo no encontrado"})
	}

	horas, err := Models.HorasTrabajadas(input.HorometroInicio, input.HorometroFin)
	if err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	registro := Models.ControlHoras{
		EquipoID:        input.EquipoID,
		ProyectoID:      input.ProyectoID,
		Fecha:           input.Fecha,
		Turno:           input.Turno,
		HorometroInicio: input.HorometroInicio,
		HorometroFin:    input.HorometroFin,
		HorasTrabajadas: horas,
		Operador:        input.Operador,
		Actividad:       input.Actividad,
		Observaciones:   input.Observaciones,
	}
	if user, ok := ctx.Locals("user").(Models.User); ok {
		id := user.ID
		registro.CreatedBy = &id
	}

	if err := cc.DB.Create(&registro).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo registrar el control de horas"})
	}

	if input.HorometroFin > equipo.HorometroActual {
		cc.DB.Model(&equipo).Update("horometro_actual", input.HorometroFin)
	}

	return ctx.Status(fiber.StatusCreated).JSON(registro)
}

// DeleteControlHoras removes an entry. The machine's hour-meter is not
// rolled back; correcting a reading means registering the right one.
func (cc *ControlHorasController) DeleteControlHoras(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de registro inválido"})
	}

	var registro Models.ControlHoras
	if err := cc.DB.First(&registro, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Registro no encontrado"})
	}

	cc.DB.Delete(&registro)
	return ctx.JSON(fiber.Map{"message": "Registro eliminado"})
}

// GetResumenHoras aggregates worked hours per machine over a date range,
// the raw material for a billing document.
func (cc *ControlHorasController) GetResumenHoras(ctx *fiber.Ctx) error {
	desde := ctx.Query("desde")
	hasta := ctx.Query("hasta")
	if desde == "" || hasta == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parámetros desde y hasta requeridos"})
	}

	type resumen struct {
		EquipoID   uint    `json:"equipo_id"`
		Codigo     string  `json:"codigo"`
		TotalHoras float64 `json:"total_horas"`
		Registros  int     `json:"registros"`
	}

	var filas []resumen
	query := cc.DB.Model(&Models.ControlHoras{}).
		Select("control_horas.equipo_id, equipos.codigo, SUM(control_horas.horas_trabajadas) AS total_horas, COUNT(*) AS registros").
		Joins("JOIN equipos ON equipos.id = control_horas.equipo_id").
		Where("control_horas.fecha >= ? AND control_horas.fecha <= ?", desde, hasta).
		Group("control_horas.equipo_id, equipos.codigo")

	if proyecto := ctx.Query("proyecto_id"); proyecto != "" {
		query = query.Where("control_horas.proyecto_id = ?", proyecto)
	}

	if err := query.Scan(&filas).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo generar el resumen"})
	}

	return ctx.JSON(filas)
}
