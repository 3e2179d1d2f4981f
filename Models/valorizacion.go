package Models

import "gorm.io/gorm"

// Billing document states.
const (
	ValorizacionBorrador = "borrador"
	ValorizacionEnviada  = "enviada"
	ValorizacionAprobada = "aprobada"
	ValorizacionPagada   = "pagada"
	ValorizacionAnulada  = "anulada"
)

var transicionesValorizacion = map[string][]string{
	ValorizacionBorrador: {ValorizacionEnviada, ValorizacionAnulada},
	ValorizacionEnviada:  {ValorizacionAprobada, ValorizacionAnulada},
	ValorizacionAprobada: {ValorizacionPagada, ValorizacionAnulada},
	ValorizacionPagada:   {},
	ValorizacionAnulada:  {},
}

// EstadoValorizacionValido reports whether a billing state change is allowed.
func EstadoValorizacionValido(desde, hacia string) bool {
	for _, s := range transicionesValorizacion[desde] {
		if s == hacia {
			return true
		}
	}
	return false
}

// Valorizacion is a billing document for a project period.
type Valorizacion struct {
	gorm.Model
	NumeroValorizacion string  `json:"numero_valorizacion" gorm:"uniqueIndex;size:50"`
	ProyectoID         *uint   `json:"proyecto_id" gorm:"index"`
	EmpresaID          *uint   `json:"empresa_id"`
	PeriodoInicio      string  `json:"periodo_inicio"`
	PeriodoFin         string  `json:"periodo_fin"`
	MontoTotal         float64 `json:"monto_total"`
	Estado             string  `json:"estado" gorm:"default:borrador"`
	Observaciones      string  `json:"observaciones" gorm:"type:text"`
	CreatedBy          *uint   `json:"created_by"`

	Equipos []ValorizacionEquipo `json:"equipos" gorm:"foreignKey:ValorizacionID;constraint:OnDelete:CASCADE"`
	Pagos   []PagoValorizacion   `json:"pagos" gorm:"foreignKey:ValorizacionID"`
}

func (Valorizacion) TableName() string {
	return "valorizaciones"
}

// ValorizacionEquipo is one machine's line item inside a Valorizacion.
// Subtotal and Total are computed server side, never trusted from input.
type ValorizacionEquipo struct {
	gorm.Model
	ValorizacionID   uint    `json:"valorizacion_id" gorm:"index;not null"`
	EquipoID         uint    `json:"equipo_id" gorm:"not null"`
	HorometroInicial float64 `json:"horometro_inicial"`
	HorometroFinal   float64 `json:"horometro_final"`
	TotalHoras       float64 `json:"total_horas"`
	TarifaHora       float64 `json:"tarifa_hora"`
	Subtotal         float64 `json:"subtotal"`
	Movilizacion     float64 `json:"movilizacion"`
	Desmovilizacion  float64 `json:"desmovilizacion"`
	Total            float64 `json:"total"`
	Observaciones    string  `json:"observaciones"`
}

func (ValorizacionEquipo) TableName() string {
	return "valorizacion_equipos"
}

// Calcular fills the derived amounts from the raw readings.
func (v *ValorizacionEquipo) Calcular() {
	v.TotalHoras = v.HorometroFinal - v.HorometroInicial
	v.Subtotal = v.TotalHoras * v.TarifaHora
	v.Total = v.Subtotal + v.Movilizacion + v.Desmovilizacion
}

// Payment methods.
const (
	PagoTransferencia = "transferencia"
	PagoCheque        = "cheque"
	PagoEfectivo      = "efectivo"
	PagoDeposito      = "deposito"
)

// PagoValorizacion is a payment against a billing document.
type PagoValorizacion struct {
	gorm.Model
	ValorizacionID uint    `json:"valorizacion_id" gorm:"index;not null"`
	FechaPago      string  `json:"fecha_pago"`
	Monto          float64 `json:"monto"`
	MetodoPago     string  `json:"metodo_pago"`
	Referencia     string  `json:"referencia"`
	Banco          string  `json:"banco"`
	Observaciones  string  `json:"observaciones"`
	CreatedBy      *uint   `json:"created_by"`
}

func (PagoValorizacion) TableName() string {
	return "pagos_valorizaciones"
}
