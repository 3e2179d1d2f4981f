package Models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Alert types.
const (
	AlertaMantenimiento = "mantenimiento"
	AlertaSoat          = "soat"
	AlertaRevision      = "revision_tecnica"
	AlertaHorometro     = "horometro"
)

// Alert priorities.
const (
	PrioridadBaja    = "baja"
	PrioridadNormal  = "normal"
	PrioridadAlta    = "alta"
	PrioridadUrgente = "urgente"
)

// Alerta is a derived expiry warning. At most one alert exists per
// (tipo, referencia_id) pair.
type Alerta struct {
	gorm.Model
	Tipo             string         `json:"tipo" gorm:"uniqueIndex:idx_alerta_tipo_ref;size:30"`
	EquipoID         uint           `json:"equipo_id" gorm:"index"`
	ReferenciaID     uint           `json:"referencia_id" gorm:"uniqueIndex:idx_alerta_tipo_ref"`
	Titulo           string         `json:"titulo"`
	Mensaje          string         `json:"mensaje" gorm:"type:text"`
	FechaAlerta      string         `json:"fecha_alerta"`
	DiasAnticipacion int            `json:"dias_anticipacion"`
	Prioridad        string         `json:"prioridad" gorm:"default:normal"`
	Enviado          bool           `json:"enviado" gorm:"default:false"`
	FechaEnvio       string         `json:"fecha_envio"`
	Destinatarios    datatypes.JSON `json:"destinatarios"`
}

func (Alerta) TableName() string {
	return "alertas"
}

// PrioridadPorDias maps days-remaining to an alert tier for a given alert
// type. SOAT gets a longer runway than the rest.
func PrioridadPorDias(tipo string, dias int) string {
	switch tipo {
	case AlertaSoat:
		if dias <= 15 {
			return PrioridadUrgente
		}
		if dias <= 30 {
			return PrioridadAlta
		}
		return PrioridadNormal
	case AlertaRevision:
		if dias <= 7 {
			return PrioridadUrgente
		}
		return PrioridadAlta
	default:
		if dias <= 7 {
			return PrioridadUrgente
		}
		return PrioridadNormal
	}
}
