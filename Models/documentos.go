package Models

import "gorm.io/gorm"

// Soat is an insurance policy for a machine. Historical records coexist;
// the (equipo_id, fecha_vencimiento) pair is unique so reimports stay
// idempotent.
type Soat struct {
	gorm.Model
	EquipoID         uint    `json:"equipo_id" gorm:"not null;uniqueIndex:idx_soat_equipo_venc"`
	NumeroPoliza     string  `json:"numero_poliza"`
	Aseguradora      string  `json:"aseguradora"`
	FechaInicio      string  `json:"fecha_inicio"`
	FechaVencimiento string  `json:"fecha_vencimiento" gorm:"size:10;uniqueIndex:idx_soat_equipo_venc"`
	Monto            float64 `json:"monto"`
	ArchivoURL       string  `json:"archivo_url"`
	Activo           bool    `json:"activo" gorm:"default:true"`
}

func (Soat) TableName() string {
	return "soat"
}

// Inspection results.
const (
	RevisionAprobada  = "aprobado"
	RevisionObservada = "observado"
	RevisionRechazada = "rechazado"
)

// RevisionTecnica is a technical inspection certificate. Same dedup key
// pattern as Soat.
type RevisionTecnica struct {
	gorm.Model
	EquipoID          uint    `json:"equipo_id" gorm:"not null;uniqueIndex:idx_revision_equipo_venc"`
	NumeroCertificado string  `json:"numero_certificado"`
	Taller            string  `json:"taller"`
	FechaRevision     string  `json:"fecha_revision"`
	FechaVencimiento  string  `json:"fecha_vencimiento" gorm:"size:10;uniqueIndex:idx_revision_equipo_venc"`
	Resultado         string  `json:"resultado" gorm:"default:aprobado"`
	Costo             float64 `json:"costo"`
	ArchivoURL        string  `json:"archivo_url"`
	Observaciones     string  `json:"observaciones" gorm:"type:text"`
}

func (RevisionTecnica) TableName() string {
	return "revisiones_tecnicas"
}
