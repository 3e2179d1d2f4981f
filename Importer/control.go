package Importer

import (
	"gorm.io/gorm"
)

// Sheet names of the bulk control workbook. Headers sit on the third row;
// the two rows above carry the workbook title.
const (
	SheetMaquinaria     = "BD MAQUINARIA"
	SheetSoat           = "CONTROL SOAT"
	SheetRevisiones     = "REVISIONES TECNICAS"
	SheetMantenimientos = "CONTROL MANTENIMIENTOS"

	controlHeaderOffset = 2
)

// ControlResult is the outcome of one bulk workbook import: per-category
// counters plus the run log.
type ControlResult struct {
	Equipos        Stats      `json:"equipos"`
	Soat           Stats      `json:"soat"`
	Revisiones     Stats      `json:"revisiones"`
	Mantenimientos Stats      `json:"mantenimientos"`
	Log            []LogEntry `json:"log"`
}

// RunControlImport processes the four known sheets of the bulk control
// workbook in dependency order: equipment first, so the categories keyed
// on it resolve rows inserted in the same run. Sheets missing from the
// workbook are skipped, not errors.
func RunControlImport(db *gorm.DB, data []byte, lg *ImportLog) (*ControlResult, error) {
	ref, err := LoadRefData(db)
	if err != nil {
		return nil, err
	}
	com := NewCommitter(db, ref, lg)
	res := &ControlResult{}

	equipos, err := ReadSheet(data, SheetMaquinaria, controlHeaderOffset)
	if err != nil {
		return nil, err
	}
	if len(equipos) > 0 {
		rows := make([]EquipoRow, 0, len(equipos))
		for _, r := range equipos {
			row := ParseControlEquipoRow(r)
			if row.Codigo == "" {
				continue
			}
			row.Validate()
			rows = append(rows, row)
		}
		lg.Logf("Leídos %d equipos de %s", len(rows), SheetMaquinaria)
		res.Equipos = com.CommitEquipos(rows)
	}

	soat, err := ReadSheet(data, SheetSoat, controlHeaderOffset)
	if err != nil {
		return nil, err
	}
	if len(soat) > 0 {
		rows := make([]SoatRow, 0, len(soat))
		for _, r := range soat {
			row := ParseControlSoatRow(r)
			if row.EquipoCodigo == "" {
				continue
			}
			row.Validate(ref)
			rows = append(rows, row)
		}
		lg.Logf("Leídos %d registros de %s", len(rows), SheetSoat)
		res.Soat = com.CommitSoat(rows)
	}

	revisiones, err := ReadSheet(data, SheetRevisiones, controlHeaderOffset)
	if err != nil {
		return nil, err
	}
	if len(revisiones) > 0 {
		rows := make([]RevisionRow, 0, len(revisiones))
		for _, r := range revisiones {
			row := ParseControlRevisionRow(r)
			if row.EquipoCodigo == "" {
				continue
			}
			row.Validate(ref)
			rows = append(rows, row)
		}
		lg.Logf("Leídos %d registros de %s", len(rows), SheetRevisiones)
		res.Revisiones = com.CommitRevisiones(rows)
	}

	mantenimientos, err := ReadSheet(data, SheetMantenimientos, controlHeaderOffset)
	if err != nil {
		return nil, err
	}
	if len(mantenimientos) > 0 {
		rows := make([]ControlMantenimientoRow, 0, len(mantenimientos))
		for _, r := range mantenimientos {
			row := ParseControlMantenimientoRow(r)
			if row.EquipoCodigo == "" {
				continue
			}
			row.Validate(ref)
			rows = append(rows, row)
		}
		lg.Logf("Leídos %d registros de %s", len(rows), SheetMantenimientos)
		res.Mantenimientos = com.CommitControlMantenimientos(rows)
	}

	res.Log = lg.Snapshot()
	return res, nil
}

// PreviewResult is the dry-run outcome for a single-category file: the
// parsed rows with their validation verdicts, nothing committed.
type PreviewResult struct {
	Leidos    int         `json:"leidos"`
	Validos   int         `json:"validos"`
	Invalidos int         `json:"invalidos"`
	Filas     interface{} `json:"filas"`
}

// RunCategoryPreview parses and validates a single-category file without
// writing anything, so the operator can inspect the rows before
// confirming the import.
func RunCategoryPreview(db *gorm.DB, categoria string, data []byte) (*PreviewResult, error) {
	ref, err := LoadRefData(db)
	if err != nil {
		return nil, err
	}

	raw, err := ReadFirstSheet(data)
	if err != nil {
		return nil, err
	}

	res := &PreviewResult{}
	marcar := func(valid bool) {
		res.Leidos++
		if valid {
			res.Validos++
		} else {
			res.Invalidos++
		}
	}

	switch categoria {
	case CategoriaEquipos:
		rows := make([]EquipoRow, 0, len(raw))
		for _, r := range raw {
			row := ParseEquipoRow(r)
			row.Validate()
			marcar(row.Valid)
			rows = append(rows, row)
		}
		res.Filas = rows

	case CategoriaSoat:
		rows := make([]SoatRow, 0, len(raw))
		for _, r := range raw {
			row := ParseSoatRow(r)
			row.Validate(ref)
			marcar(row.Valid)
			rows = append(rows, row)
		}
		res.Filas = rows

	case CategoriaRevisiones:
		rows := make([]RevisionRow, 0, len(raw))
		for _, r := range raw {
			row := ParseRevisionRow(r)
			row.Validate(ref)
			marcar(row.Valid)
			rows = append(rows, row)
		}
		res.Filas = rows

	case CategoriaMantenimientos:
		rows := make([]MantenimientoRow, 0, len(raw))
		for _, r := range raw {
			row := ParseMantenimientoRow(r)
			row.Validate(ref)
			marcar(row.Valid)
			rows = append(rows, row)
		}
		res.Filas = rows

	default:
		return nil, ErrCategoriaDesconocida
	}

	return res, nil
}

// RunCategoryImport processes a single-category file produced from one of
// the downloadable templates: first sheet, headers on row one.
func RunCategoryImport(db *gorm.DB, categoria string, data []byte, lg *ImportLog) (Stats, error) {
	ref, err := LoadRefData(db)
	if err != nil {
		return Stats{}, err
	}
	com := NewCommitter(db, ref, lg)

	raw, err := ReadFirstSheet(data)
	if err != nil {
		return Stats{}, err
	}

	switch categoria {
	case CategoriaEquipos:
		rows := make([]EquipoRow, 0, len(raw))
		for _, r := range raw {
			row := ParseEquipoRow(r)
			row.Validate()
			rows = append(rows, row)
		}
		return com.CommitEquipos(rows), nil

	case CategoriaSoat:
		rows := make([]SoatRow, 0, len(raw))
		for _, r := range raw {
			row := ParseSoatRow(r)
			row.Validate(ref)
			rows = append(rows, row)
		}
		return com.CommitSoat(rows), nil

	case CategoriaRevisiones:
		rows := make([]RevisionRow, 0, len(raw))
		for _, r := range raw {
			row := ParseRevisionRow(r)
			row.Validate(ref)
			rows = append(rows, row)
		}
		return com.CommitRevisiones(rows), nil

	case CategoriaMantenimientos:
		rows := make([]MantenimientoRow, 0, len(raw))
		for _, r := range raw {
			row := ParseMantenimientoRow(r)
			row.Validate(ref)
			rows = append(rows, row)
		}
		return com.CommitMantenimientos(rows), nil
	}

	return Stats{}, ErrCategoriaDesconocida
}
