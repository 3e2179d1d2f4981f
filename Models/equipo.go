package Models

import "gorm.io/gorm"

// Equipment operating states.
const (
	EstadoOperativo       = "OPERATIVO"
	EstadoEnMantenimiento = "EN_MANTENIMIENTO"
)

// Equipo is a single machine. Codigo is the natural key and never changes
// once assigned; HorometroActual only moves forward.
type Equipo struct {
	gorm.Model
	Codigo            string  `json:"codigo" gorm:"uniqueIndex;size:50"`
	Tipo              string  `json:"tipo"`
	Marca             string  `json:"marca"`
	Modelo            string  `json:"modelo"`
	Serie             string  `json:"serie"`
	Placa             string  `json:"placa"`
	Anio              int     `json:"anio"`
	HorometroActual   float64 `json:"horometro_actual"`
	KilometrajeActual float64 `json:"kilometraje_actual"`
	TarifaHoraDefault float64 `json:"tarifa_hora_default"`
	Estado            string  `json:"estado" gorm:"default:OPERATIVO"`
	Ubicacion         string  `json:"ubicacion"`
	EmpresaID         *uint   `json:"empresa_id"`
	Activo            bool    `json:"activo" gorm:"default:true"`
}

func (Equipo) TableName() string {
	return "equipos"
}
