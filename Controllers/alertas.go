package Controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Maquinaria/CronJobs"
	"Maquinaria/Models"
)

// AlertaController handles expiry alert endpoints.
type AlertaController struct {
	DB *gorm.DB
}

func NewAlertaController(db *gorm.DB) *AlertaController {
	return &AlertaController{DB: db}
}

// GetAlertas lists alerts, filterable by tipo, prioridad and sent state.
func (ac *AlertaController) GetAlertas(ctx *fiber.Ctx) error {
	query := ac.DB.Model(&Models.Alerta{})

	if tipo := ctx.Query("tipo"); tipo != "" {
		query = query.Where("tipo = ?", tipo)
	}
	if prioridad := ctx.Query("prioridad"); prioridad != "" {
		query = query.Where("prioridad = ?", prioridad)
	}
	if enviado := ctx.Query("enviado"); enviado != "" {
		query = query.Where("enviado = ?", enviado == "true")
	}
	if equipo := ctx.Query("equipo_id"); equipo != "" {
		query = query.Where("equipo_id = ?", equipo)
	}

	var alertas []Models.Alerta
	if err := query.Order("fecha_alerta").Find(&alertas).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron obtener las alertas"})
	}
	return ctx.JSON(alertas)
}

// MarcarEnviada flags an alert as delivered and stamps the send date.
func (ac *AlertaController) MarcarEnviada(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de alerta inválido"})
	}

	var alerta Models.Alerta
	if err := ac.DB.First(&alerta, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Alerta no encontrada"})
	}

	alerta.Enviado = true
	alerta.FechaEnvio = time.Now().UTC().Format("2006-01-02")
	if err := ac.DB.Save(&alerta).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo actualizar la alerta"})
	}
	return ctx.JSON(alerta)
}

// DeleteAlerta dismisses an alert.
func (ac *AlertaController) DeleteAlerta(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de alerta inválido"})
	}

	var alerta Models.Alerta
	if err := ac.DB.First(&alerta, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Alerta no encontrada"})
	}

	ac.DB.Delete(&alerta)
	return ctx.JSON(fiber.Map{"message": "Alerta eliminada"})
}

// Verificar triggers the expiry scan on demand, same scan the daily cron
// runs.
func (ac *AlertaController) Verificar(ctx *fiber.Ctx) error {
	creadas, err := CronJobs.RevisarVencimientos(ac.DB)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo ejecutar la verificación"})
	}
	return ctx.JSON(fiber.Map{
		"message":         "Verificación completada",
		"alertas_creadas": creadas,
	})
}
