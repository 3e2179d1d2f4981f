package Controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Maquinaria/Models"
)

// EmpresaController handles owning-company endpoints.
type EmpresaController struct {
	DB *gorm.DB
}

func NewEmpresaController(db *gorm.DB) *EmpresaController {
	return &EmpresaController{DB: db}
}

type empresaInput struct {
	RUC         string `json:"ruc" validate:"required,len=11,numeric"`
	RazonSocial string `json:"razon_social" validate:"required"`
	Direccion   string `json:"direccion"`
	Telefono    string `json:"telefono"`
	Email       string `json:"email" validate:"omitempty,email"`
}

func (ec *EmpresaController) GetEmpresas(ctx *fiber.Ctx) error {
	var empresas []Models.Empresa
	if err := ec.DB.Where("activo = ?", true).Order("razon_social").Find(&empresas).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron obtener las empresas"})
	}
	return ctx.JSON(empresas)
}

func (ec *EmpresaController) GetEmpresa(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de empresa inválido"})
	}

	var empresa Models.Empresa
	if err := ec.DB.First(&empresa, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Empresa no encontrada"})
	}
	return ctx.JSON(empresa)
}

func (ec *EmpresaController) CreateEmpresa(ctx *fiber.Ctx) error {
	var input empresaInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if mensajes := Validar(input); mensajes != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": mensajes})
	}

	empresa := Models.Empresa{
		RUC:         input.RUC,
		RazonSocial: input.RazonSocial,
		Direccion:   input.Direccion,
		Telefono:    input.Telefono,
		Email:       input.Email,
		Activo:      true,
	}
	if err := ec.DB.Create(&empresa).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "Duplicate entry") {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Ya existe una empresa con este RUC"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo crear la empresa"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(empresa)
}

func (ec *EmpresaController) UpdateEmpresa(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de empresa inválido"})
	}

	var empresa Models.Empresa
	if err := ec.DB.First(&empresa, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Empresa no encontrada"})
	}

	var input empresaInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	empresa.RUC = input.RUC
	empresa.RazonSocial = input.RazonSocial
	empresa.Direccion = input.Direccion
	empresa.Telefono = input.Telefono
	empresa.Email = input.Email

	if err := ec.DB.Save(&empresa).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo actualizar la empresa"})
	}
	return ctx.JSON(empresa)
}

func (ec *EmpresaController) DeleteEmpresa(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de empresa inválido"})
	}

	var empresa Models.Empresa
	if err := ec.DB.First(&empresa, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Empresa no encontrada"})
	}

	if err := ec.DB.Model(&empresa).Update("activo", false).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo desactivar la empresa"})
	}
	return ctx.JSON(fiber.Map{"message": "Empresa desactivada"})
}
