package Importer

import (
	"strings"

	"Maquinaria/Models"

	"gorm.io/gorm"
)

// EquipoRef is the slice of an equipment record the pipeline needs for
// lookups and foreign keys.
type EquipoRef struct {
	ID        uint
	Codigo    string
	Placa     string
	EmpresaID *uint
	Horometro float64
}

// EmpresaRef is a company the resolver can match rows against.
type EmpresaRef struct {
	ID          uint
	RazonSocial string
}

// RefData is the reference snapshot loaded once per import run: equipment
// keyed by normalized code and plate, and the company list for name
// matching. Read-only for the rest of the run except for equipment added
// by the run itself.
type RefData struct {
	porCodigo map[string]*EquipoRef
	porPlaca  map[string]*EquipoRef
	empresas  []EmpresaRef
}

// Spreadsheet authors write company names that differ from the registered
// razón social; known nicknames map to a fragment of the real name.
// Nicknames that already appear in the razón social (JLMX, JOMEX) need no
// entry, the fragment loop matches them directly.
var empresaAlias = map[string]string{
	"cusma": "jorge",
}

func normalizar(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// LoadRefData takes the once-per-run snapshot of active equipment and
// companies.
func LoadRefData(db *gorm.DB) (*RefData, error) {
	ref := &RefData{
		porCodigo: map[string]*EquipoRef{},
		porPlaca:  map[string]*EquipoRef{},
	}

	var equipos []Models.Equipo
	if err := db.Where("activo = ?", true).Find(&equipos).Error; err != nil {
		return nil, err
	}
	for _, e := range equipos {
		ref.AddEquipo(EquipoRef{
			ID:        e.ID,
			Codigo:    e.Codigo,
			Placa:     e.Placa,
			EmpresaID: e.EmpresaID,
			Horometro: e.HorometroActual,
		})
	}

	var empresas []Models.Empresa
	if err := db.Order("id").Find(&empresas).Error; err != nil {
		return nil, err
	}
	for _, em := range empresas {
		ref.empresas = append(ref.empresas, EmpresaRef{ID: em.ID, RazonSocial: em.RazonSocial})
	}

	return ref, nil
}

// AddEquipo registers an equipment record in the lookup maps. The
// committer calls this for rows it inserts so later categories in the
// same run resolve them.
func (r *RefData) AddEquipo(e EquipoRef) {
	ref := e
	if c := normalizar(e.Codigo); c != "" {
		r.porCodigo[c] = &ref
	}
	if p := normalizar(e.Placa); p != "" {
		r.porPlaca[p] = &ref
	}
}

// FindEquipo resolves an equipment row key against code first, then
// license plate, case-insensitively.
func (r *RefData) FindEquipo(key string) *EquipoRef {
	k := normalizar(key)
	if k == "" {
		return nil
	}
	if e, ok := r.porCodigo[k]; ok {
		return e
	}
	if e, ok := r.porPlaca[k]; ok {
		return e
	}
	return nil
}

// ResolveEmpresa matches a free-text company field against the registered
// companies by shared name fragment. The second return value reports
// whether a real match was found; when it is false the first company is
// returned as the default and the caller must log that decision.
func (r *RefData) ResolveEmpresa(nombre string) (*uint, bool) {
	if len(r.empresas) == 0 {
		return nil, false
	}

	n := normalizar(nombre)
	for alias, fragmento := range empresaAlias {
		if strings.Contains(n, alias) {
			n = fragmento
			break
		}
	}

	if n != "" {
		for i := range r.empresas {
			for _, palabra := range strings.Fields(normalizar(r.empresas[i].RazonSocial)) {
				if len(palabra) < 4 {
					continue
				}
				if strings.Contains(n, palabra) {
					id := r.empresas[i].ID
					return &id, true
				}
			}
		}
	}

	// No fragment matched: fall back to the first registered company.
	id := r.empresas[0].ID
	return &id, false
}

// Empresas returns how many companies the snapshot holds.
func (r *RefData) Empresas() int {
	return len(r.empresas)
}
