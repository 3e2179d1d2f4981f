package Models

import "gorm.io/gorm"

// Maintenance kinds.
const (
	MantenimientoPreventivo = "preventivo"
	MantenimientoCorrectivo = "correctivo"
	MantenimientoEmergencia = "emergencia"
)

// Maintenance states.
const (
	MantenimientoPendiente  = "pendiente"
	MantenimientoEnProceso  = "en_proceso"
	MantenimientoCompletado = "completado"
	MantenimientoCancelado  = "cancelado"
)

// transicionesEstado lists the allowed one-directional state changes.
// Cancellation is the only exit besides completion.
var transicionesEstado = map[string][]string{
	MantenimientoPendiente:  {MantenimientoEnProceso, MantenimientoCompletado, MantenimientoCancelado},
	MantenimientoEnProceso:  {MantenimientoCompletado, MantenimientoCancelado},
	MantenimientoCompletado: {},
	MantenimientoCancelado:  {},
}

// EstadoValido reports whether moving a maintenance record from one state
// to another is allowed.
func EstadoValido(desde, hacia string) bool {
	for _, s := range transicionesEstado[desde] {
		if s == hacia {
			return true
		}
	}
	return false
}

// Mantenimiento is a scheduled or executed maintenance job for a machine.
type Mantenimiento struct {
	gorm.Model
	EquipoID                  uint     `json:"equipo_id" gorm:"index;not null"`
	Tipo                      string   `json:"tipo" gorm:"default:preventivo"`
	Descripcion               string   `json:"descripcion" gorm:"type:text"`
	FechaProgramada           string   `json:"fecha_programada"`
	FechaEjecutada            string   `json:"fecha_ejecutada"`
	HorometroMantenimiento    *float64 `json:"horometro_mantenimiento"`
	Costo                     float64  `json:"costo"`
	Proveedor                 string   `json:"proveedor"`
	ProximoMantenimientoHoras *float64 `json:"proximo_mantenimiento_horas"`
	ProximoMantenimientoFecha string   `json:"proximo_mantenimiento_fecha"`
	Estado                    string   `json:"estado" gorm:"default:pendiente"`
	Observaciones             string   `json:"observaciones" gorm:"type:text"`
	CreatedBy                 *uint    `json:"created_by"`
}

func (Mantenimiento) TableName() string {
	return "mantenimientos"
}
