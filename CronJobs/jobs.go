package CronJobs

import (
	"fmt"
	"log"
	"time"

	"Maquinaria/Models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Scan windows in days per alert category.
const (
	ventanaMantenimiento = 15
	ventanaSoat          = 30
	ventanaRevision      = 15
)

// AlertChecker runs the daily expiry scan over maintenance jobs,
// insurance policies and inspection certificates.
type AlertChecker struct {
	db             *gorm.DB
	cronScheduler  *cron.Cron
	runImmediately bool
	jobID          cron.EntryID
}

// NewAlertChecker creates the scheduled scanner.
func NewAlertChecker(db *gorm.DB, runImmediately bool) *AlertChecker {
	return &AlertChecker{
		db:             db,
		cronScheduler:  cron.New(cron.WithSeconds()),
		runImmediately: runImmediately,
	}
}

// Start schedules the daily scan at 6:00 AM.
func (a *AlertChecker) Start() error {
	var err error
	a.jobID, err = a.cronScheduler.AddFunc("0 0 6 * * *", func() {
		log.Println("Ejecutando revisión diaria de vencimientos")
		if _, err := RevisarVencimientos(a.db); err != nil {
			log.Printf("Error en revisión de vencimientos: %v\n", err)
		}
	})
	if err != nil {
		return fmt.Errorf("error programando el cron de alertas: %w", err)
	}

	a.cronScheduler.Start()
	log.Println("Revisión de vencimientos programada para las 6:00 AM")

	if a.runImmediately {
		log.Println("Ejecutando revisión inicial de vencimientos")
		if _, err := RevisarVencimientos(a.db); err != nil {
			log.Printf("Error en revisión de vencimientos: %v\n", err)
		}
	}

	return nil
}

// Stop terminates the scheduler.
func (a *AlertChecker) Stop() {
	if a.cronScheduler != nil {
		a.cronScheduler.Stop()
		log.Println("Revisión de vencimientos detenida")
	}
}

// RevisarVencimientos scans the three expiring categories and creates the
// missing alerts. One alert exists per (tipo, referencia); reruns create
// nothing new. Returns how many alerts were created.
func RevisarVencimientos(db *gorm.DB) (int, error) {
	hoy := time.Now().UTC()
	creadas := 0

	n, err := revisarMantenimientos(db, hoy)
	if err != nil {
		return creadas, err
	}
	creadas += n

	n, err = revisarSoat(db, hoy)
	if err != nil {
		return creadas, err
	}
	creadas += n

	n, err = revisarRevisiones(db, hoy)
	if err != nil {
		return creadas, err
	}
	creadas += n

	if creadas > 0 {
		log.Printf("Revisión de vencimientos: %d alertas nuevas\n", creadas)
	}
	return creadas, nil
}

func revisarMantenimientos(db *gorm.DB, hoy time.Time) (int, error) {
	limite := hoy.AddDate(0, 0, ventanaMantenimiento).Format("2006-01-02")

	var pendientes []Models.Mantenimiento
	err := db.Where("estado = ? AND fecha_programada != '' AND fecha_programada <= ?",
		Models.MantenimientoPendiente, limite).Find(&pendientes).Error
	if err != nil {
		return 0, err
	}

	creadas := 0
	for _, m := range pendientes {
		dias := diasHasta(m.FechaProgramada, hoy)
		alerta := Models.Alerta{
			Tipo:             Models.AlertaMantenimiento,
			EquipoID:         m.EquipoID,
			ReferenciaID:     m.ID,
			Titulo:           "Mantenimiento programado próximo",
			Mensaje:          fmt.Sprintf("Mantenimiento programado para el %s. Faltan %d días.", m.FechaProgramada, dias),
			FechaAlerta:      m.FechaProgramada,
			DiasAnticipacion: dias,
			Prioridad:        Models.PrioridadPorDias(Models.AlertaMantenimiento, dias),
		}
		if crearSiFalta(db, &alerta) {
			creadas++
		}
	}
	return creadas, nil
}

func revisarSoat(db *gorm.DB, hoy time.Time) (int, error) {
	limite := hoy.AddDate(0, 0, ventanaSoat).Format("2006-01-02")

	var soats []Models.Soat
	err := db.Where("activo = ? AND fecha_vencimiento != '' AND fecha_vencimiento <= ?",
		true, limite).Find(&soats).Error
	if err != nil {
		return 0, err
	}

	creadas := 0
	for _, s := range soats {
		dias := diasHasta(s.FechaVencimiento, hoy)
		alerta := Models.Alerta{
			Tipo:             Models.AlertaSoat,
			EquipoID:         s.EquipoID,
			ReferenciaID:     s.ID,
			Titulo:           "SOAT próximo a vencer",
			Mensaje:          fmt.Sprintf("El SOAT %s vence el %s. Faltan %d días.", s.NumeroPoliza, s.FechaVencimiento, dias),
			FechaAlerta:      s.FechaVencimiento,
			DiasAnticipacion: dias,
			Prioridad:        Models.PrioridadPorDias(Models.AlertaSoat, dias),
		}
		if crearSiFalta(db, &alerta) {
			creadas++
		}
	}
	return creadas, nil
}

func revisarRevisiones(db *gorm.DB, hoy time.Time) (int, error) {
	limite := hoy.AddDate(0, 0, ventanaRevision).Format("2006-01-02")

	var revisiones []Models.RevisionTecnica
	err := db.Where("fecha_vencimiento != '' AND fecha_vencimiento <= ?", limite).
		Find(&revisiones).Error
	if err != nil {
		return 0, err
	}

	creadas := 0
	for _, r := range revisiones {
		dias := diasHasta(r.FechaVencimiento, hoy)
		alerta := Models.Alerta{
			Tipo:             Models.AlertaRevision,
			EquipoID:         r.EquipoID,
			ReferenciaID:     r.ID,
			Titulo:           "Revisión técnica próxima a vencer",
			Mensaje:          fmt.Sprintf("La revisión técnica vence el %s. Faltan %d días.", r.FechaVencimiento, dias),
			FechaAlerta:      r.FechaVencimiento,
			DiasAnticipacion: dias,
			Prioridad:        Models.PrioridadPorDias(Models.AlertaRevision, dias),
		}
		if crearSiFalta(db, &alerta) {
			creadas++
		}
	}
	return creadas, nil
}

// crearSiFalta inserts the alert unless one already exists for the same
// (tipo, referencia) pair.
func crearSiFalta(db *gorm.DB, alerta *Models.Alerta) bool {
	var count int64
	err := db.Model(&Models.Alerta{}).
		Where("tipo = ? AND referencia_id = ?", alerta.Tipo, alerta.ReferenciaID).
		Count(&count).Error
	if err != nil {
		log.Printf("Error consultando alerta %s/%d: %v\n", alerta.Tipo, alerta.ReferenciaID, err)
		return false
	}
	if count > 0 {
		return false
	}
	if err := db.Create(alerta).Error; err != nil {
		log.Printf("Error creando alerta %s/%d: %v\n", alerta.Tipo, alerta.ReferenciaID, err)
		return false
	}
	return true
}

func diasHasta(fecha string, hoy time.Time) int {
	t, err := time.Parse("2006-01-02", fecha)
	if err != nil {
		return 0
	}
	return int(t.Sub(hoy.Truncate(24*time.Hour)).Hours() / 24)
}
