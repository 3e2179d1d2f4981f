package Models

import "gorm.io/gorm"

// Proyecto is a construction project equipment gets assigned to.
type Proyecto struct {
	gorm.Model
	Nombre      string `json:"nombre"`
	Codigo      string `json:"codigo" gorm:"uniqueIndex;size:50"`
	Cliente     string `json:"cliente"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
	Ubicacion   string `json:"ubicacion"`
	EmpresaID   *uint  `json:"empresa_id"`
	Activo      bool   `json:"activo" gorm:"default:true"`
}

func (Proyecto) TableName() string {
	return "proyectos"
}
