package Importer

import (
	"errors"
	"fmt"
	"time"

	"Maquinaria/Models"

	"gorm.io/gorm"
)

// Days-until-expiry below which a committed SOAT row also emits an alert.
const umbralAlertaSoat = 30

// Committer writes validated rows to the store one at a time. A failing
// row is logged and skipped, never aborts the run; there is no rollback
// across rows and a partially imported run is an accepted outcome.
type Committer struct {
	DB  *gorm.DB
	Ref *RefData
	Log *ImportLog
}

func NewCommitter(db *gorm.DB, ref *RefData, lg *ImportLog) *Committer {
	return &Committer{DB: db, Ref: ref, Log: lg}
}

// CommitEquipos upserts equipment rows keyed on codigo. Reimporting the
// same code overwrites the stored attributes instead of appending a
// duplicate. The hour-meter never moves backward: an imported reading
// below the stored one keeps the stored value, and the decision is
// logged.
func (c *Committer) CommitEquipos(rows []EquipoRow) Stats {
	var st Stats
	for _, row := range rows {
		st.Leidos++
		if !row.Valid {
			c.Log.Logf("Equipo %q: %s", row.Codigo, row.Error)
			continue
		}
		st.Validos++

		var empresaID *uint
		if row.AsignarEmpresa {
			id, matched := c.Ref.ResolveEmpresa(row.Empresa)
			if !matched && id != nil {
				c.Log.Logf("Equipo %s: empresa %q no reconocida, se asigna la empresa por defecto", row.Codigo, row.Empresa)
			}
			empresaID = id
		}

		var existente Models.Equipo
		err := c.DB.Where("codigo = ?", row.Codigo).First(&existente).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			equipo := Models.Equipo{
				Codigo:            row.Codigo,
				Tipo:              row.Tipo,
				Marca:             row.Marca,
				Modelo:            row.Modelo,
				Serie:             row.Serie,
				Placa:             row.Placa,
				Anio:              row.Anio,
				HorometroActual:   row.Horometro,
				TarifaHoraDefault: row.Tarifa,
				Estado:            row.Estado,
				Ubicacion:         row.Ubicacion,
				EmpresaID:         empresaID,
				Activo:            true,
			}
			if equipo.Estado == "" {
				equipo.Estado = Models.EstadoOperativo
			}
			if err := c.DB.Create(&equipo).Error; err != nil {
				st.Fallidos++
				c.Log.Logf("Error en %s: %v", row.Codigo, err)
				continue
			}
			c.Ref.AddEquipo(EquipoRef{
				ID:        equipo.ID,
				Codigo:    equipo.Codigo,
				Placa:     equipo.Placa,
				EmpresaID: equipo.EmpresaID,
				Horometro: equipo.HorometroActual,
			})
			st.Importados++

		case err != nil:
			st.Fallidos++
			c.Log.Logf("Error en %s: %v", row.Codigo, err)

		default:
			horometro := row.Horometro
			if horometro < existente.HorometroActual {
				c.Log.Logf("Equipo %s: horómetro importado (%.2f) menor al registrado (%.2f), se conserva el registrado",
					row.Codigo, horometro, existente.HorometroActual)
				horometro = existente.HorometroActual
			}
			existente.Tipo = row.Tipo
			existente.Marca = row.Marca
			existente.Modelo = row.Modelo
			existente.Serie = row.Serie
			existente.Placa = row.Placa
			existente.Anio = row.Anio
			existente.HorometroActual = horometro
			existente.TarifaHoraDefault = row.Tarifa
			existente.Ubicacion = row.Ubicacion
			existente.Activo = true
			if row.Estado != "" {
				existente.Estado = row.Estado
			}
			if empresaID != nil {
				existente.EmpresaID = empresaID
			}
			if err := c.DB.Save(&existente).Error; err != nil {
				st.Fallidos++
				c.Log.Logf("Error en %s: %v", row.Codigo, err)
				continue
			}
			c.Ref.AddEquipo(EquipoRef{
				ID:        existente.ID,
				Codigo:    existente.Codigo,
				Placa:     existente.Placa,
				EmpresaID: existente.EmpresaID,
				Horometro: existente.HorometroActual,
			})
			st.Importados++
		}
	}
	return st
}

// CommitSoat inserts insurance rows keyed on (equipo, fecha de
// vencimiento). A row whose pair already exists is skipped, which makes
// re-running an import after a partial failure safe. Committed rows
// expiring within 30 days additionally emit one alert; skipped rows never
// do.
func (c *Committer) CommitSoat(rows []SoatRow) Stats {
	var st Stats
	for _, row := range rows {
		st.Leidos++
		if !row.Valid {
			c.Log.Logf("SOAT %q: %s", row.EquipoCodigo, row.Error)
			continue
		}
		st.Validos++

		venc := FechaISO(row.FechaVencimiento)
		var count int64
		if err := c.DB.Model(&Models.Soat{}).
			Where("equipo_id = ? AND fecha_vencimiento = ?", row.EquipoID, venc).
			Count(&count).Error; err != nil {
			st.Fallidos++
			c.Log.Logf("Error SOAT %s: %v", row.EquipoCodigo, err)
			continue
		}
		if count > 0 {
			st.Omitidos++
			c.Log.Logf("SOAT %s: ya existe un registro con vencimiento %s", row.EquipoCodigo, venc)
			continue
		}

		dias := DiasRestantes(*row.FechaVencimiento)
		soat := Models.Soat{
			EquipoID:         row.EquipoID,
			NumeroPoliza:     row.NumeroPoliza,
			Aseguradora:      row.Aseguradora,
			FechaInicio:      FechaISO(row.FechaInicio),
			FechaVencimiento: venc,
			Monto:            row.Monto,
			Activo:           dias > 0,
		}
		if err := c.DB.Create(&soat).Error; err != nil {
			st.Fallidos++
			c.Log.Logf("Error SOAT %s: %v", row.EquipoCodigo, err)
			continue
		}
		st.Importados++

		if dias < umbralAlertaSoat {
			c.emitirAlertaSoat(&soat, row.EquipoCodigo, dias)
		}
	}
	return st
}

func (c *Committer) emitirAlertaSoat(soat *Models.Soat, codigo string, dias int) {
	alerta := Models.Alerta{
		Tipo:             Models.AlertaSoat,
		EquipoID:         soat.EquipoID,
		ReferenciaID:     soat.ID,
		Titulo:           "SOAT próximo a vencer",
		Mensaje:          fmt.Sprintf("El SOAT del equipo %s vence el %s. Faltan %d días.", codigo, soat.FechaVencimiento, dias),
		FechaAlerta:      soat.FechaVencimiento,
		DiasAnticipacion: dias,
		Prioridad:        Models.PrioridadPorDias(Models.AlertaSoat, dias),
	}
	if err := c.DB.Create(&alerta).Error; err != nil {
		c.Log.Logf("Error alerta SOAT %s: %v", codigo, err)
		return
	}
	c.Log.Logf("Alerta generada: SOAT de %s vence en %d días", codigo, dias)
}

// CommitRevisiones inserts inspection rows with the same dedup key
// pattern as CommitSoat.
func (c *Committer) CommitRevisiones(rows []RevisionRow) Stats {
	var st Stats
	for _, row := range rows {
		st.Leidos++
		if !row.Valid {
			c.Log.Logf("Revisión %q: %s", row.EquipoCodigo, row.Error)
			continue
		}
		st.Validos++

		venc := FechaISO(row.FechaVencimiento)
		var count int64
		if err := c.DB.Model(&Models.RevisionTecnica{}).
			Where("equipo_id = ? AND fecha_vencimiento = ?", row.EquipoID, venc).
			Count(&count).Error; err != nil {
			st.Fallidos++
			c.Log.Logf("Error revisión %s: %v", row.EquipoCodigo, err)
			continue
		}
		if count > 0 {
			st.Omitidos++
			c.Log.Logf("Revisión %s: ya existe un registro con vencimiento %s", row.EquipoCodigo, venc)
			continue
		}

		revision := Models.RevisionTecnica{
			EquipoID:          row.EquipoID,
			NumeroCertificado: row.NumeroCertificado,
			Taller:            row.Taller,
			FechaRevision:     FechaISO(row.FechaRevision),
			FechaVencimiento:  venc,
			Resultado:         row.Resultado,
			Costo:             row.Costo,
		}
		if err := c.DB.Create(&revision).Error; err != nil {
			st.Fallidos++
			c.Log.Logf("Error revisión %s: %v", row.EquipoCodigo, err)
			continue
		}
		st.Importados++
	}
	return st
}

// CommitMantenimientos inserts scheduled maintenance rows from the
// user-facing template as pending jobs.
func (c *Committer) CommitMantenimientos(rows []MantenimientoRow) Stats {
	var st Stats
	for _, row := range rows {
		st.Leidos++
		if !row.Valid {
			c.Log.Logf("Mantenimiento %q: %s", row.EquipoCodigo, row.Error)
			continue
		}
		st.Validos++

		mant := Models.Mantenimiento{
			EquipoID:        row.EquipoID,
			Tipo:            row.Tipo,
			Descripcion:     row.Descripcion,
			FechaProgramada: FechaISO(row.FechaProgramada),
			Costo:           row.Costo,
			Proveedor:       row.Proveedor,
			Estado:          Models.MantenimientoPendiente,
		}
		if err := c.DB.Create(&mant).Error; err != nil {
			st.Fallidos++
			c.Log.Logf("Error mantenimiento %s: %v", row.EquipoCodigo, err)
			continue
		}
		st.Importados++
	}
	return st
}

// CommitControlMantenimientos imports "last known maintenance" rows from
// the bulk workbook: insert-if-absent keyed on (equipo, horómetro de
// mantenimiento), plus an explicit cross-entity side effect — the
// equipment's current hour-meter is raised to the row's reported reading.
// The update is logged so the mutation stays auditable.
func (c *Committer) CommitControlMantenimientos(rows []ControlMantenimientoRow) Stats {
	var st Stats
	for _, row := range rows {
		st.Leidos++
		if !row.Valid {
			c.Log.Logf("Mantenimiento %q: %s", row.EquipoCodigo, row.Error)
			continue
		}
		st.Validos++

		c.actualizarHorometro(row.EquipoID, row.EquipoCodigo, row.HoraActual)

		var count int64
		if err := c.DB.Model(&Models.Mantenimiento{}).
			Where("equipo_id = ? AND horometro_mantenimiento = ?", row.EquipoID, row.UltimoMantenimiento).
			Count(&count).Error; err != nil {
			st.Fallidos++
			c.Log.Logf("Error mantenimiento %s: %v", row.EquipoCodigo, err)
			continue
		}
		if count > 0 {
			st.Omitidos++
			continue
		}

		horometro := row.UltimoMantenimiento
		mant := Models.Mantenimiento{
			EquipoID:                  row.EquipoID,
			Tipo:                      Models.MantenimientoPreventivo,
			Descripcion:               "Importación Inicial - Último Mantenimiento Registrado",
			HorometroMantenimiento:    &horometro,
			ProximoMantenimientoHoras: row.ProximoMantenimiento,
			Estado:                    Models.MantenimientoCompletado,
			FechaEjecutada:            time.Now().UTC().Format("2006-01-02"),
			Proveedor:                 "INTERNO",
			Observaciones:             fmt.Sprintf("Importado. Operador: %s. Ubicación: %s", valorODash(row.Operador), valorODash(row.Tramo)),
		}
		if err := c.DB.Create(&mant).Error; err != nil {
			st.Fallidos++
			c.Log.Logf("Error mantenimiento %s: %v", row.EquipoCodigo, err)
			continue
		}
		st.Importados++
	}
	return st
}

// actualizarHorometro raises the equipment hour-meter to the imported
// reading. Readings below the stored value are ignored; the hour-meter
// never moves backward.
func (c *Committer) actualizarHorometro(equipoID uint, codigo string, horas float64) {
	var equipo Models.Equipo
	if err := c.DB.First(&equipo, equipoID).Error; err != nil {
		c.Log.Logf("Error horómetro %s: %v", codigo, err)
		return
	}
	if horas <= equipo.HorometroActual {
		return
	}
	if err := c.DB.Model(&equipo).Update("horometro_actual", horas).Error; err != nil {
		c.Log.Logf("Error horómetro %s: %v", codigo, err)
		return
	}
	c.Log.Logf("Equipo %s: horómetro actualizado a %.2f", codigo, horas)
}

func valorODash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
