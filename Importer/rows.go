package Importer

import (
	"time"

	"Maquinaria/Models"
)

// Header aliases per field. Each list is tried in order and the first
// non-missing value wins; the originating spreadsheets mix Spanish
// casing and accents freely.
var (
	aliasCodigo       = []string{"Código", "codigo", "CODIGO", "CÓDIGO"}
	aliasCodigoEquipo = []string{"Código Equipo", "codigo_equipo", "Equipo", "equipo", "CÓDIGO", "CODIGO"}
	aliasTipo         = []string{"Tipo", "tipo", "TIPO"}
	aliasMarca        = []string{"Marca", "marca", "MARCA"}
	aliasModelo       = []string{"Modelo", "modelo", "MODELO"}
	aliasSerie        = []string{"Serie", "serie", "SERIE"}
	aliasPlaca        = []string{"Placa", "placa", "PLACA"}
	aliasAnio         = []string{"Año", "año", "AÑO", "anio"}
	aliasHorometro    = []string{"Horómetro", "horometro", "Horometro", "HOROMETRO", "HORAS ACTUALES"}
	aliasTarifa       = []string{"Tarifa", "tarifa", "TARIFA", "Tarifa/Hora"}
	aliasEmpresa      = []string{"Empresa", "empresa", "EMPRESA"}
	aliasEstado       = []string{"Estado", "estado", "ESTADO"}
	aliasUbicacion    = []string{"Ubicación", "ubicacion", "TRAMO"}

	aliasPoliza      = []string{"Número Póliza", "numero_poliza", "Poliza", "N° Póliza", "PLACA/SERIE"}
	aliasAseguradora = []string{"Aseguradora", "aseguradora", "ASEGURADORA"}
	aliasFechaInicio = []string{"Fecha Inicio", "fecha_inicio", "FECHA INICIO"}
	aliasFechaVenc   = []string{"Fecha Vencimiento", "fecha_vencimiento", "Vencimiento", "FECHA VENCIMIENTO"}
	aliasMonto       = []string{"Monto", "monto", "MONTO"}

	aliasCertificado   = []string{"Número Certificado", "numero_certificado", "Certificado", "CERTIFICADO"}
	aliasTaller        = []string{"Taller", "taller", "Centro", "TALLER"}
	aliasFechaRevision = []string{"Fecha Revisión", "fecha_revision", "FECHA REVISION"}
	aliasResultado     = []string{"Resultado", "resultado", "RESULTADO"}

	aliasDescripcion     = []string{"Descripción", "descripcion", "DESCRIPCION"}
	aliasFechaProgramada = []string{"Fecha Programada", "fecha_programada", "Fecha", "FECHA PROGRAMADA"}
	aliasCosto           = []string{"Costo", "costo", "COSTO"}
	aliasProveedor       = []string{"Proveedor", "proveedor", "PROVEEDOR"}

	aliasUltimoMant  = []string{"MANTENIMIENTO", "Mantenimiento", "mantenimiento"}
	aliasProximoMant = []string{"MANTENIMIENTO PROX", "Mantenimiento Prox", "PROXIMO MANTENIMIENTO"}
	aliasHoraActual  = []string{"HORA ACTUAL", "Hora Actual", "HORAS ACTUALES"}
	aliasOperador    = []string{"OPERADOR", "Operador", "operador"}
)

// EquipoRow is one parsed equipment row, either from the user-facing
// template or from the BD MAQUINARIA sheet of the bulk workbook.
type EquipoRow struct {
	Codigo          string  `json:"codigo"`
	Tipo            string  `json:"tipo"`
	Marca           string  `json:"marca"`
	Modelo          string  `json:"modelo"`
	Serie           string  `json:"serie"`
	Placa           string  `json:"placa"`
	Anio            int     `json:"anio"`
	Horometro       float64 `json:"horometro_actual"`
	Tarifa          float64 `json:"tarifa_hora_default"`
	Empresa         string  `json:"empresa"`
	Estado          string  `json:"estado"`
	Ubicacion       string  `json:"ubicacion"`
	AsignarEmpresa  bool    `json:"-"`
	Valid           bool    `json:"valid"`
	Error           string  `json:"error,omitempty"`
}

// ParseEquipoRow maps a template row into an EquipoRow. Horómetro and
// tarifa default to 0 when absent or unparseable; everything else stays
// empty.
func ParseEquipoRow(r Row) EquipoRow {
	e := EquipoRow{}
	e.Codigo, _ = r.String(aliasCodigo...)
	e.Tipo, _ = r.String(aliasTipo...)
	e.Marca, _ = r.String(aliasMarca...)
	e.Modelo, _ = r.String(aliasModelo...)
	e.Serie, _ = r.String(aliasSerie...)
	e.Placa, _ = r.String(aliasPlaca...)
	e.Anio, _ = r.Int(aliasAnio...)
	e.Horometro, _ = r.Float(aliasHorometro...)
	e.Tarifa, _ = r.Float(aliasTarifa...)
	return e
}

// ParseControlEquipoRow maps a BD MAQUINARIA row. The bulk source lacks
// tipo/marca for some machines, so the known defaults apply, and the
// ESTADO column collapses to OPERATIVO / EN_MANTENIMIENTO.
func ParseControlEquipoRow(r Row) EquipoRow {
	e := ParseEquipoRow(r)
	e.AsignarEmpresa = true
	e.Empresa, _ = r.String(aliasEmpresa...)
	e.Ubicacion, _ = r.String(aliasUbicacion...)
	if e.Tipo == "" {
		e.Tipo = "DESCONOCIDO"
	}
	if e.Marca == "" {
		e.Marca = "CATERPILLAR"
	}
	if estado, _ := r.String(aliasEstado...); estado == Models.EstadoOperativo {
		e.Estado = Models.EstadoOperativo
	} else {
		e.Estado = Models.EstadoEnMantenimiento
	}
	return e
}

// Validate applies the equipment rule list in order and records the first
// failure.
func (e *EquipoRow) Validate() {
	switch {
	case e.Codigo == "":
		e.Error = "Código requerido"
	case e.Tipo == "":
		e.Error = "Tipo requerido"
	default:
		e.Valid = true
	}
}

// SoatRow is one parsed insurance row.
type SoatRow struct {
	EquipoCodigo     string     `json:"equipo_codigo"`
	EquipoID         uint       `json:"equipo_id,omitempty"`
	EmpresaID        *uint      `json:"empresa_id,omitempty"`
	NumeroPoliza     string     `json:"numero_poliza"`
	Aseguradora      string     `json:"aseguradora"`
	FechaInicio      *time.Time `json:"fecha_inicio"`
	FechaVencimiento *time.Time `json:"fecha_vencimiento"`
	Monto            float64    `json:"monto"`
	Valid            bool       `json:"valid"`
	Error            string     `json:"error,omitempty"`
}

// ParseSoatRow maps a template row into a SoatRow.
func ParseSoatRow(r Row) SoatRow {
	s := SoatRow{}
	s.EquipoCodigo, _ = r.String(aliasCodigoEquipo...)
	s.NumeroPoliza, _ = r.String(aliasPoliza...)
	s.Aseguradora, _ = r.String(aliasAseguradora...)
	s.Monto, _ = r.Float(aliasMonto...)
	if v, ok := r.String(aliasFechaInicio...); ok {
		s.FechaInicio = ParseCellDate(v)
	}
	if v, ok := r.String(aliasFechaVenc...); ok {
		s.FechaVencimiento = ParseCellDate(v)
	}
	return s
}

// ParseControlSoatRow maps a CONTROL SOAT row. The bulk sheet only
// carries the expiry date and the plate/serial used as policy number, so
// the missing attributes take placeholder values and the start date is
// the import date.
func ParseControlSoatRow(r Row) SoatRow {
	s := SoatRow{}
	s.EquipoCodigo, _ = r.String(aliasCodigo...)
	s.NumeroPoliza, _ = r.String(aliasPoliza...)
	if s.NumeroPoliza == "" {
		s.NumeroPoliza = "S/N"
	}
	s.Aseguradora = "NO ESPECIFICADO"
	hoy := time.Now().UTC()
	s.FechaInicio = &hoy
	if v, ok := r.String(aliasFechaVenc...); ok {
		s.FechaVencimiento = ParseCellDate(v)
	}
	return s
}

// Validate applies the insurance rule list; equipment resolution matches
// by code or plate.
func (s *SoatRow) Validate(ref *RefData) {
	equipo := ref.FindEquipo(s.EquipoCodigo)
	switch {
	case equipo == nil:
		s.Error = "Equipo no encontrado"
	case s.NumeroPoliza == "":
		s.Error = "N° Póliza requerido"
	case s.Aseguradora == "":
		s.Error = "Aseguradora requerida"
	case s.FechaInicio == nil || s.FechaVencimiento == nil:
		s.Error = "Fechas requeridas"
	default:
		s.EquipoID = equipo.ID
		s.EmpresaID = equipo.EmpresaID
		s.Valid = true
	}
}

// RevisionRow is one parsed technical-inspection row.
type RevisionRow struct {
	EquipoCodigo      string     `json:"equipo_codigo"`
	EquipoID          uint       `json:"equipo_id,omitempty"`
	NumeroCertificado string     `json:"numero_certificado"`
	Taller            string     `json:"taller"`
	FechaRevision     *time.Time `json:"fecha_revision"`
	FechaVencimiento  *time.Time `json:"fecha_vencimiento"`
	Resultado         string     `json:"resultado"`
	Costo             float64    `json:"costo"`
	Valid             bool       `json:"valid"`
	Error             string     `json:"error,omitempty"`
}

// ParseRevisionRow maps a template row into a RevisionRow.
func ParseRevisionRow(r Row) RevisionRow {
	rv := RevisionRow{Resultado: Models.RevisionAprobada}
	rv.EquipoCodigo, _ = r.String(aliasCodigoEquipo...)
	rv.NumeroCertificado, _ = r.String(aliasCertificado...)
	rv.Taller, _ = r.String(aliasTaller...)
	rv.Costo, _ = r.Float(aliasCosto...)
	if v, ok := r.String(aliasResultado...); ok && v != "" {
		rv.Resultado = normalizar(v)
	}
	if v, ok := r.String(aliasFechaRevision...); ok {
		rv.FechaRevision = ParseCellDate(v)
	}
	if v, ok := r.String(aliasFechaVenc...); ok {
		rv.FechaVencimiento = ParseCellDate(v)
	}
	return rv
}

// ParseControlRevisionRow maps a REVISIONES TECNICAS row; only the expiry
// date is reliable in the bulk sheet.
func ParseControlRevisionRow(r Row) RevisionRow {
	rv := RevisionRow{
		NumeroCertificado: "S/N",
		Taller:            "NO ESPECIFICADO",
		Resultado:         Models.RevisionAprobada,
	}
	rv.EquipoCodigo, _ = r.String(aliasCodigo...)
	hoy := time.Now().UTC()
	rv.FechaRevision = &hoy
	if v, ok := r.String(aliasFechaVenc...); ok {
		rv.FechaVencimiento = ParseCellDate(v)
	}
	return rv
}

// Validate applies the inspection rule list.
func (rv *RevisionRow) Validate(ref *RefData) {
	equipo := ref.FindEquipo(rv.EquipoCodigo)
	switch {
	case equipo == nil:
		rv.Error = "Equipo no encontrado"
	case rv.FechaRevision == nil || rv.FechaVencimiento == nil:
		rv.Error = "Fechas requeridas"
	default:
		rv.EquipoID = equipo.ID
		rv.Valid = true
	}
}

// MantenimientoRow is one parsed maintenance row from the user-facing
// template.
type MantenimientoRow struct {
	EquipoCodigo    string     `json:"equipo_codigo"`
	EquipoID        uint       `json:"equipo_id,omitempty"`
	Tipo            string     `json:"tipo"`
	Descripcion     string     `json:"descripcion"`
	FechaProgramada *time.Time `json:"fecha_programada"`
	Costo           float64    `json:"costo"`
	Proveedor       string     `json:"proveedor"`
	Valid           bool       `json:"valid"`
	Error           string     `json:"error,omitempty"`
}

// ParseMantenimientoRow maps a template row; tipo defaults to preventivo.
func ParseMantenimientoRow(r Row) MantenimientoRow {
	m := MantenimientoRow{Tipo: Models.MantenimientoPreventivo}
	m.EquipoCodigo, _ = r.String(aliasCodigoEquipo...)
	m.Descripcion, _ = r.String(aliasDescripcion...)
	m.Proveedor, _ = r.String(aliasProveedor...)
	m.Costo, _ = r.Float(aliasCosto...)
	if v, ok := r.String(aliasTipo...); ok && v != "" {
		m.Tipo = normalizar(v)
	}
	if v, ok := r.String(aliasFechaProgramada...); ok {
		m.FechaProgramada = ParseCellDate(v)
	}
	return m
}

// Validate applies the maintenance rule list.
func (m *MantenimientoRow) Validate(ref *RefData) {
	equipo := ref.FindEquipo(m.EquipoCodigo)
	switch {
	case equipo == nil:
		m.Error = "Equipo no encontrado"
	case m.Descripcion == "":
		m.Error = "Descripción requerida"
	default:
		m.EquipoID = equipo.ID
		m.Valid = true
	}
}

// ControlMantenimientoRow is one CONTROL MANTENIMIENTOS row from the bulk
// workbook: a "last known maintenance" snapshot rather than a scheduled
// job.
type ControlMantenimientoRow struct {
	EquipoCodigo         string   `json:"equipo_codigo"`
	EquipoID             uint     `json:"equipo_id,omitempty"`
	UltimoMantenimiento  float64  `json:"horometro_mantenimiento"`
	TieneUltimo          bool     `json:"-"`
	ProximoMantenimiento *float64 `json:"proximo_mantenimiento_horas"`
	HoraActual           float64  `json:"hora_actual"`
	Operador             string   `json:"operador"`
	Tramo                string   `json:"tramo"`
	Valid                bool     `json:"valid"`
	Error                string   `json:"error,omitempty"`
}

// ParseControlMantenimientoRow maps a bulk maintenance row.
func ParseControlMantenimientoRow(r Row) ControlMantenimientoRow {
	m := ControlMantenimientoRow{}
	m.EquipoCodigo, _ = r.String(aliasCodigo...)
	m.UltimoMantenimiento, m.TieneUltimo = r.Float(aliasUltimoMant...)
	if prox, ok := r.Float(aliasProximoMant...); ok {
		m.ProximoMantenimiento = &prox
	}
	m.HoraActual, _ = r.Float(aliasHoraActual...)
	m.Operador, _ = r.String(aliasOperador...)
	m.Tramo, _ = r.String(aliasUbicacion...)
	return m
}

// Validate requires a resolvable equipment and a numeric last-maintenance
// reading; rows without one carry nothing importable.
func (m *ControlMantenimientoRow) Validate(ref *RefData) {
	equipo := ref.FindEquipo(m.EquipoCodigo)
	switch {
	case equipo == nil:
		m.Error = "Equipo no encontrado"
	case !m.TieneUltimo:
		m.Error = "Horómetro de mantenimiento requerido"
	default:
		m.EquipoID = equipo.ID
		m.Valid = true
	}
}
