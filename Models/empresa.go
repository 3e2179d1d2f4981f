package Models

import "gorm.io/gorm"

// Empresa is an owning company. Equipment, projects and billing documents
// all reference one.
type Empresa struct {
	gorm.Model
	RUC         string `json:"ruc" gorm:"uniqueIndex;size:20"`
	RazonSocial string `json:"razon_social"`
	Direccion   string `json:"direccion"`
	Telefono    string `json:"telefono"`
	Email       string `json:"email"`
	Activo      bool   `json:"activo" gorm:"default:true"`
}

func (Empresa) TableName() string {
	return "empresas"
}
