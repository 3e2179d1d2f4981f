package Controllers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Maquinaria/Models"
)

// ValorizacionController handles billing document endpoints.
type ValorizacionController struct {
	DB *gorm.DB
}

func NewValorizacionController(db *gorm.DB) *ValorizacionController {
	return &ValorizacionController{DB: db}
}

type valorizacionEquipoInput struct {
	EquipoID         uint    `json:"equipo_id" validate:"required"`
	HorometroInicial float64 `json:"horometro_inicial" validate:"gte=0"`
	HorometroFinal   float64 `json:"horometro_final" validate:"gte=0"`
	TarifaHora       float64 `json:"tarifa_hora" validate:"gte=0"`
	Movilizacion     float64 `json:"movilizacion" validate:"gte=0"`
	Desmovilizacion  float64 `json:"desmovilizacion" validate:"gte=0"`
	Observaciones    string  `json:"observaciones"`
}

type valorizacionInput struct {
	ProyectoID    *uint                     `json:"proyecto_id"`
	EmpresaID     *uint                     `json:"empresa_id"`
	PeriodoInicio string                    `json:"periodo_inicio" validate:"required"`
	PeriodoFin    string                    `json:"periodo_fin" validate:"required"`
	Observaciones string                    `json:"observaciones"`
	Equipos       []valorizacionEquipoInput `json:"equipos" validate:"required,min=1,dive"`
}

type pagoInput struct {
	FechaPago     string  `json:"fecha_pago" validate:"required"`
	Monto         float64 `json:"monto" validate:"required,gt=0"`
	MetodoPago    string  `json:"metodo_pago" validate:"required,oneof=transferencia cheque efectivo deposito"`
	Referencia    string  `json:"referencia"`
	Banco         string  `json:"banco"`
	Observaciones string  `json:"observaciones"`
}

func (vc *ValorizacionController) GetValorizaciones(ctx *fiber.Ctx) error {
	query := vc.DB.Model(&Models.Valorizacion{}).Preload("Equipos").Preload("Pagos")

	if estado := ctx.Query("estado"); estado != "" {
		query = query.Where("estado = ?", estado)
	}
	if proyecto := ctx.Query("proyecto_id"); proyecto != "" {
		query = query.Where("proyecto_id = ?", proyecto)
	}

	var valorizaciones []Models.Valorizacion
	if err := query.Order("id DESC").Find(&valorizaciones).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron obtener las valorizaciones"})
	}
	return ctx.JSON(valorizaciones)
}

func (vc *ValorizacionController) GetValorizacion(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de valorización inválido"})
	}

	var val Models.Valorizacion
	if err := vc.DB.Preload("Equipos").Preload("Pagos").First(&val, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Valorización no encontrada"})
	}
	return ctx.JSON(val)
}

// CreateValorizacion builds the billing document. Line item amounts and
// the document total are computed server side; client-provided totals are
// ignored. Document numbers run VAL-YYYY-NNNN per year.
func (vc *ValorizacionController) CreateValorizacion(ctx *fiber.Ctx) error {
	var input valorizacionInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if mensajes := Validar(input); mensajes != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": mensajes})
	}

	lineas := make([]Models.ValorizacionEquipo, 0, len(input.Equipos))
	var total float64
	for _, e := range input.Equipos {
		if e.HorometroFinal < e.HorometroInicial {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": fmt.Sprintf("Equipo %d: el horómetro final no puede ser menor al inicial", e.EquipoID),
			})
		}
		var equipo Models.Equipo
		if err := vc.DB.First(&equipo, e.EquipoID).Error; err != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Equipo %d no encontrado", e.EquipoID),
			})
		}

		linea := Models.ValorizacionEquipo{
			EquipoID:         e.EquipoID,
			HorometroInicial: e.HorometroInicial,
			HorometroFinal:   e.HorometroFinal,
			TarifaHora:       e.TarifaHora,
			Movilizacion:     e.Movilizacion,
			Desmovilizacion:  e.Desmovilizacion,
			Observaciones:    e.Observaciones,
		}
		if linea.TarifaHora == 0 {
			linea.TarifaHora = equipo.TarifaHoraDefault
		}
		linea.Calcular()
		total += linea.Total
		lineas = append(lineas, linea)
	}

	val := Models.Valorizacion{
		NumeroValorizacion: vc.siguienteNumero(),
		ProyectoID:         input.ProyectoID,
		EmpresaID:          input.EmpresaID,
		PeriodoInicio:      input.PeriodoInicio,
		PeriodoFin:         input.PeriodoFin,
		MontoTotal:         total,
		Estado:             Models.ValorizacionBorrador,
		Observaciones:      input.Observaciones,
		Equipos:            lineas,
	}
	if user, ok := ctx.Locals("user").(Models.User); ok {
		id := user.ID
		val.CreatedBy = &id
	}

	if err := vc.DB.Create(&val).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "Duplicate entry") {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Número de valorización duplicado"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo crear la valorización"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(val)
}

// siguienteNumero allocates the next document number for the current
// year.
func (vc *ValorizacionController) siguienteNumero() string {
	anio := time.Now().UTC().Year()
	prefijo := fmt.Sprintf("VAL-%d-", anio)

	var count int64
	vc.DB.Model(&Models.Valorizacion{}).
		Where("numero_valorizacion LIKE ?", prefijo+"%").
		Count(&count)

	return fmt.Sprintf("%s%04d", prefijo, count+1)
}

// UpdateEstado moves a billing document through its lifecycle.
func (vc *ValorizacionController) UpdateEstado(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de valorización inválido"})
	}

	var val Models.Valorizacion
	if err := vc.DB.First(&val, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Valorización no encontrada"})
	}

	var input struct {
		Estado string `json:"estado" validate:"required,oneof=borrador enviada aprobada pagada anulada"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if mensajes := Validar(input); mensajes != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": mensajes})
	}

	if !Models.EstadoValorizacionValido(val.Estado, input.Estado) {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Transición de estado no permitida: de " + val.Estado + " a " + input.Estado,
		})
	}

	val.Estado = input.Estado
	if err := vc.DB.Save(&val).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo actualizar el estado"})
	}
	return ctx.JSON(val)
}

// CreatePago registers a payment against an approved document. When the
// accumulated payments reach the total, the document moves to pagada.
func (vc *ValorizacionController) CreatePago(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de valorización inválido"})
	}

	var val Models.Valorizacion
	if err := vc.DB.First(&val, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Valorización no encontrada"})
	}
	if val.Estado != Models.ValorizacionAprobada {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Solo una valorización aprobada puede recibir pagos",
		})
	}

	var input pagoInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if mensajes := Validar(input); mensajes != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": mensajes})
	}

	pago := Models.PagoValorizacion{
		ValorizacionID: val.ID,
		FechaPago:      input.FechaPago,
		Monto:          input.Monto,
		MetodoPago:     input.MetodoPago,
		Referencia:     input.Referencia,
		Banco:          input.Banco,
		Observaciones:  input.Observaciones,
	}
	if user, ok := ctx.Locals("user").(Models.User); ok {
		uid := user.ID
		pago.CreatedBy = &uid
	}

	if err := vc.DB.Create(&pago).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo registrar el pago"})
	}

	var pagado float64
	vc.DB.Model(&Models.PagoValorizacion{}).
		Where("valorizacion_id = ?", val.ID).
		Select("COALESCE(SUM(monto), 0)").Scan(&pagado)

	if pagado >= val.MontoTotal && Models.EstadoValorizacionValido(val.Estado, Models.ValorizacionPagada) {
		vc.DB.Model(&val).Update("estado", Models.ValorizacionPagada)
	}

	return ctx.Status(fiber.StatusCreated).JSON(pago)
}

// DeleteValorizacion removes a draft. Documents past borrador are
// immutable history and can only be annulled.
func (vc *ValorizacionController) DeleteValorizacion(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de valorización inválido"})
	}

	var val Models.Valorizacion
	if err := vc.DB.First(&val, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Valorización no encontrada"})
	}
	if val.Estado != Models.ValorizacionBorrador {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Solo un borrador puede eliminarse; anule la valorización en su lugar",
		})
	}

	vc.DB.Delete(&val)
	return ctx.JSON(fiber.Map{"message": "Valorización eliminada"})
}
