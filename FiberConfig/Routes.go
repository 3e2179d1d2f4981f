package FiberConfig

import (
	"fmt"
	"os"

	"Maquinaria/Controllers"
	"Maquinaria/Models"
	"Maquinaria/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	equipoController := Controllers.NewEquipoController(db)
	empresaController := Controllers.NewEmpresaController(db)
	proyectoController := Controllers.NewProyectoController(db)
	controlHorasController := Controllers.NewControlHorasController(db)
	mantenimientoController := Controllers.NewMantenimientoController(db)
	soatController := Controllers.NewSoatController(db)
	revisionController := Controllers.NewRevisionController(db)
	alertaController := Controllers.NewAlertaController(db)
	valorizacionController := Controllers.NewValorizacionController(db)
	importController := Controllers.NewImportController(db)

	api := app.Group("/api")

	// Equipment routes
	equipos := api.Group("/equipos", middleware.Verify(1))
	equipos.Get("/", equipoController.GetEquipos)
	equipos.Post("/", middleware.Verify(2), equipoController.CreateEquipo)
	equipos.Get("/:id", equipoController.GetEquipo)
	equipos.Put("/:id", middleware.Verify(2), equipoController.UpdateEquipo)
	equipos.Delete("/:id", middleware.Verify(3), equipoController.DeleteEquipo)
	equipos.Get("/:id/documentos", equipoController.GetEquipoDocumentos)
	equipos.Get("/:id/filtros", equipoController.GetFiltros)

	// Company routes
	empresas := api.Group("/empresas", middleware.Verify(1))
	empresas.Get("/", empresaController.GetEmpresas)
	empresas.Post("/", middleware.Verify(3), empresaController.CreateEmpresa)
	empresas.Get("/:id", empresaController.GetEmpresa)
	empresas.Put("/:id", middleware.Verify(3), empresaController.UpdateEmpresa)
	empresas.Delete("/:id", middleware.Verify(4), empresaController.DeleteEmpresa)

	// Project routes
	proyectos := api.Group("/proyectos", middleware.Verify(1))
	proyectos.Get("/", proyectoController.GetProyectos)
	proyectos.Post("/", middleware.Verify(2), proyectoController.CreateProyecto)
	proyectos.Get("/:id", proyectoController.GetProyecto)
	proyectos.Put("/:id", middleware.Verify(2), proyectoController.UpdateProyecto)
	proyectos.Delete("/:id", middleware.Verify(3), proyectoController.DeleteProyecto)

	// Shift hour-meter routes; entries are append-only, no PUT
	controlHoras := api.Group("/control-horas", middleware.Verify(1))
	controlHoras.Get("/", controlHorasController.GetControlHoras)
	controlHoras.Get("/resumen", controlHorasController.GetResumenHoras)
	controlHoras.Post("/", middleware.Verify(2), controlHorasController.CreateControlHoras)
	controlHoras.Delete("/:id", middleware.Verify(3), controlHorasController.DeleteControlHoras)

	// Maintenance routes
	mantenimientos := api.Group("/mantenimientos", middleware.Verify(1))
	mantenimientos.Get("/", mantenimientoController.GetMantenimientos)
	mantenimientos.Post("/", middleware.Verify(2), mantenimientoController.CreateMantenimiento)
	mantenimientos.Get("/:id", mantenimientoController.GetMantenimiento)
	mantenimientos.Put("/:id", middleware.Verify(2), mantenimientoController.UpdateMantenimiento)
	mantenimientos.Patch("/:id/estado", middleware.Verify(2), mantenimientoController.UpdateEstado)
	mantenimientos.Delete("/:id", middleware.Verify(3), mantenimientoController.DeleteMantenimiento)

	// Insurance routes
	soat := api.Group("/soat", middleware.Verify(1))
	soat.Get("/", soatController.GetSoats)
	soat.Post("/", middleware.Verify(2), soatController.CreateSoat)
	soat.Get("/:id", soatController.GetSoat)
	soat.Put("/:id", middleware.Verify(2), soatController.UpdateSoat)
	soat.Delete("/:id", middleware.Verify(3), soatController.DeleteSoat)

	// Inspection routes
	revisiones := api.Group("/revisiones", middleware.Verify(1))
	revisiones.Get("/", revisionController.GetRevisiones)
	revisiones.Post("/", middleware.Verify(2), revisionController.CreateRevision)
	revisiones.Get("/:id", revisionController.GetRevision)
	revisiones.Put("/:id", middleware.Verify(2), revisionController.UpdateRevision)
	revisiones.Delete("/:id", middleware.Verify(3), revisionController.DeleteRevision)

	// Alert routes
	alertas := api.Group("/alertas", middleware.Verify(1))
	alertas.Get("/", alertaController.GetAlertas)
	alertas.Post("/verificar", middleware.Verify(2), alertaController.Verificar)
	alertas.Patch("/:id/enviada", middleware.Verify(2), alertaController.MarcarEnviada)
	alertas.Delete("/:id", middleware.Verify(3), alertaController.DeleteAlerta)

	// Billing routes
	valorizaciones := api.Group("/valorizaciones", middleware.Verify(2))
	valorizaciones.Get("/", valorizacionController.GetValorizaciones)
	valorizaciones.Post("/", valorizacionController.CreateValorizacion)
	valorizaciones.Get("/:id", valorizacionController.GetValorizacion)
	valorizaciones.Patch("/:id/estado", middleware.Verify(3), valorizacionController.UpdateEstado)
	valorizaciones.Post("/:id/pagos", middleware.Verify(3), valorizacionController.CreatePago)
	valorizaciones.Delete("/:id", middleware.Verify(3), valorizacionController.DeleteValorizacion)

	// Filter catalogue, read-only
	filtros := api.Group("/filtros", middleware.Verify(1))
	filtros.Get("/", Controllers.GetCatalogoFiltros)
	filtros.Get("/:modelo", Controllers.GetFiltrosPorModelo)

	// Import routes
	importar := api.Group("/importar", middleware.Verify(2))
	importar.Get("/plantilla/:categoria", importController.GetPlantilla)
	importar.Get("/log", importController.GetLog)
	importar.Post("/control", middleware.Verify(3), importController.ImportarControl)
	importar.Post("/:categoria/preview", importController.PreviewCategoria)
	importar.Post("/:categoria", importController.ImportarCategoria)
}

func FiberConfig() {
	fmt.Println("Server Up...")
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // bulk workbooks can be large
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           300,
	}))

	SetupRoutes(app, Models.DB)

	app.Post("/api/Login", Controllers.Login)
	app.Use("/api/User", Controllers.User)
	app.Use("/api/Logout", Controllers.Logout)
	app.Post("/api/RegisterUser", middleware.Verify(4), Controllers.RegisterUser)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	app.Listen(":" + port)
}
