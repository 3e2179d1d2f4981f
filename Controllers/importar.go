package Controllers

import (
	"errors"
	"io"
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Maquinaria/Importer"
)

// ImportController handles Excel import endpoints: the four per-category
// templates and the bulk control workbook.
type ImportController struct {
	DB *gorm.DB

	mu        sync.Mutex
	ultimoLog *Importer.ImportLog
}

func NewImportController(db *gorm.DB) *ImportController {
	return &ImportController{DB: db}
}

func (ic *ImportController) guardarLog(lg *Importer.ImportLog) {
	ic.mu.Lock()
	ic.ultimoLog = lg
	ic.mu.Unlock()
}

// leerArchivo pulls the uploaded workbook out of the multipart form.
func leerArchivo(ctx *fiber.Ctx) ([]byte, error) {
	fh, err := ctx.FormFile("archivo")
	if err != nil {
		return nil, errors.New("archivo requerido")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// ImportarCategoria imports a single-category file built from one of the
// downloadable templates.
func (ic *ImportController) ImportarCategoria(ctx *fiber.Ctx) error {
	categoria := ctx.Params("categoria")

	data, err := leerArchivo(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Registered before the run so GET /api/importar/log follows the
	// run in progress, not just its outcome.
	lg := Importer.NewImportLog()
	ic.guardarLog(lg)
	stats, err := Importer.RunCategoryImport(ic.DB, categoria, data, lg)
	if err != nil {
		if errors.Is(err, Importer.ErrCategoriaDesconocida) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Categoría de importación desconocida"})
		}
		log.Printf("Error importando %s: %v\n", categoria, err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo procesar el archivo"})
	}

	return ctx.JSON(fiber.Map{
		"categoria": categoria,
		"stats":     stats,
		"log":       lg.Snapshot(),
	})
}

// PreviewCategoria validates a single-category file without committing,
// returning every row with its verdict so the operator can review before
// importing.
func (ic *ImportController) PreviewCategoria(ctx *fiber.Ctx) error {
	categoria := ctx.Params("categoria")

	data, err := leerArchivo(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := Importer.RunCategoryPreview(ic.DB, categoria, data)
	if err != nil {
		if errors.Is(err, Importer.ErrCategoriaDesconocida) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Categoría de importación desconocida"})
		}
		log.Printf("Error en vista previa de %s: %v\n", categoria, err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo procesar el archivo"})
	}

	return ctx.JSON(res)
}

// ImportarControl imports the bulk control workbook with its four known
// sheets.
func (ic *ImportController) ImportarControl(ctx *fiber.Ctx) error {
	data, err := leerArchivo(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	lg := Importer.NewImportLog()
	ic.guardarLog(lg)
	res, err := Importer.RunControlImport(ic.DB, data, lg)
	if err != nil {
		log.Printf("Error importando archivo de control: %v\n", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo procesar el archivo"})
	}

	return ctx.JSON(res)
}

// GetPlantilla serves the downloadable Excel template for a category.
func (ic *ImportController) GetPlantilla(ctx *fiber.Ctx) error {
	categoria := ctx.Params("categoria")

	data, err := Importer.GenerateTemplate(categoria)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Categoría de plantilla desconocida"})
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="plantilla_`+categoria+`.xlsx"`)
	return ctx.Send(data)
}

// GetLog returns the log of the most recent import run.
func (ic *ImportController) GetLog(ctx *fiber.Ctx) error {
	ic.mu.Lock()
	lg := ic.ultimoLog
	ic.mu.Unlock()

	if lg == nil {
		return ctx.JSON(fiber.Map{"log": []Importer.LogEntry{}})
	}
	return ctx.JSON(fiber.Map{"log": lg.Snapshot()})
}
