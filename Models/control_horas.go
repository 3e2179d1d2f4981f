package Models

import (
	"fmt"

	"gorm.io/gorm"
)

// Work shifts.
const (
	TurnoManana = "mañana"
	TurnoTarde  = "tarde"
	TurnoNoche  = "noche"
)

// ControlHoras is one shift's hour-meter entry for a machine. Records are
// immutable once created; there is no update path.
type ControlHoras struct {
	gorm.Model
	EquipoID        uint    `json:"equipo_id" gorm:"index;not null"`
	ProyectoID      *uint   `json:"proyecto_id" gorm:"index"`
	Fecha           string  `json:"fecha"`
	Turno           string  `json:"turno"`
	HorometroInicio float64 `json:"horometro_inicio"`
	HorometroFin    float64 `json:"horometro_fin"`
	HorasTrabajadas float64 `json:"horas_trabajadas"`
	Operador        string  `json:"operador"`
	Actividad       string  `json:"actividad"`
	Observaciones   string  `json:"observaciones" gorm:"type:text"`
	CreatedBy       *uint   `json:"created_by"`
}

func (ControlHoras) TableName() string {
	return "control_horas"
}

// HorasTrabajadas computes worked hours for a shift. A final reading below
// the initial one is rejected, never recorded as negative hours.
func HorasTrabajadas(inicio, fin float64) (float64, error) {
	if fin < inicio {
		return 0, fmt.Errorf("el horómetro final (%.2f) no puede ser menor al inicial (%.2f)", fin, inicio)
	}
	return fin - inicio, nil
}
