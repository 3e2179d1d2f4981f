package Models

import "strings"

// Filtro is one replacement filter part for a machine model.
type Filtro struct {
	Codigo      string `json:"codigo"`
	Descripcion string `json:"descripcion"`
}

// FiltrosPorModelo is the static filter-part catalogue per CAT model,
// keyed by model then by filter slot. Served read-only; never persisted.
var FiltrosPorModelo = map[string]map[string]Filtro{
	"320D": {
		"aceite_motor":           {Codigo: "1R-0739", Descripcion: "Filtro de Aceite Motor"},
		"combustible":            {Codigo: "1R-0750", Descripcion: "Filtro de Combustible"},
		"combustible_secundario": {Codigo: "326-1644", Descripcion: "Filtro Combustible Secundario"},
		"aire":                   {Codigo: "142-1339", Descripcion: "Filtro de Aire Primario"},
		"aire_secundario":        {Codigo: "142-1340", Descripcion: "Filtro de Aire Secundario"},
		"hidraulico":             {Codigo: "5I-8670", Descripcion: "Filtro Hidráulico"},
		"piloto":                 {Codigo: "093-7521", Descripcion: "Filtro Piloto Hidráulico"},
	},
	"320D2L": {
		"aceite_motor":    {Codigo: "1R-0739", Descripcion: "Filtro de Aceite Motor"},
		"combustible":     {Codigo: "360-8960", Descripcion: "Filtro de Combustible"},
		"aire":            {Codigo: "142-1339", Descripcion: "Filtro de Aire Primario"},
		"aire_secundario": {Codigo: "142-1340", Descripcion: "Filtro de Aire Secundario"},
		"hidraulico":      {Codigo: "5I-8670", Descripcion: "Filtro Hidráulico"},
		"piloto":          {Codigo: "093-7521", Descripcion: "Filtro Piloto Hidráulico"},
	},
	"320D3": {
		"aceite_motor":    {Codigo: "462-1171", Descripcion: "Filtro de Aceite Motor"},
		"combustible":     {Codigo: "502-2643", Descripcion: "Filtro de Combustible"},
		"aire":            {Codigo: "346-6687", Descripcion: "Filtro de Aire Primario"},
		"aire_secundario": {Codigo: "346-6688", Descripcion: "Filtro de Aire Secundario"},
		"hidraulico":      {Codigo: "337-5270", Descripcion: "Filtro Hidráulico"},
	},
	"329DL": {
		"aceite_motor":    {Codigo: "1R-0739", Descripcion: "Filtro de Aceite Motor"},
		"combustible":     {Codigo: "1R-0750", Descripcion: "Filtro de Combustible"},
		"aire":            {Codigo: "142-1339", Descripcion: "Filtro de Aire Primario"},
		"aire_secundario": {Codigo: "142-1340", Descripcion: "Filtro de Aire Secundario"},
		"hidraulico":      {Codigo: "5I-8670", Descripcion: "Filtro Hidráulico"},
	},
	"336D2L": {
		"aceite_motor":    {Codigo: "1R-1808", Descripcion: "Filtro de Aceite Motor"},
		"combustible":     {Codigo: "360-8960", Descripcion: "Filtro de Combustible"},
		"aire":            {Codigo: "346-6687", Descripcion: "Filtro de Aire Primario"},
		"aire_secundario": {Codigo: "346-6688", Descripcion: "Filtro de Aire Secundario"},
		"hidraulico":      {Codigo: "337-5270", Descripcion: "Filtro Hidráulico"},
	},
	"140K": {
		"aceite_motor":    {Codigo: "1R-0739", Descripcion: "Filtro de Aceite Motor"},
		"combustible":     {Codigo: "1R-0750", Descripcion: "Filtro de Combustible"},
		"transmision":     {Codigo: "1R-0719", Descripcion: "Filtro de Transmisión"},
		"aire":            {Codigo: "6I-2501", Descripcion: "Filtro de Aire Primario"},
		"aire_secundario": {Codigo: "6I-2502", Descripcion: "Filtro de Aire Secundario"},
		"hidraulico":      {Codigo: "1R-0777", Descripcion: "Filtro Hidráulico"},
	},
	"140M": {
		"aceite_motor": {Codigo: "1R-0739", Descripcion: "Filtro de Aceite Motor"},
		"combustible":  {Codigo: "1R-0750", Descripcion: "Filtro de Combustible"},
		"transmision":  {Codigo: "1R-0719", Descripcion: "Filtro de Transmisión"},
		"aire":         {Codigo: "6I-2501", Descripcion: "Filtro de Aire Primario"},
		"hidraulico":   {Codigo: "1R-0777", Descripcion: "Filtro Hidráulico"},
	},
	"950H": {
		"aceite_motor":    {Codigo: "1R-0716", Descripcion: "Filtro de Aceite Motor"},
		"combustible":     {Codigo: "1R-0750", Descripcion: "Filtro de Combustible"},
		"transmision":     {Codigo: "9T-0973", Descripcion: "Filtro de Transmisión"},
		"aire":            {Codigo: "6I-2501", Descripcion: "Filtro de Aire Primario"},
		"aire_secundario": {Codigo: "6I-2502", Descripcion: "Filtro de Aire Secundario"},
		"hidraulico":      {Codigo: "1G-8878", Descripcion: "Filtro Hidráulico"},
	},
	"CS-533E": {
		"aceite_motor": {Codigo: "1R-0714", Descripcion: "Filtro de Aceite Motor"},
		"combustible":  {Codigo: "1R-0749", Descripcion: "Filtro de Combustible"},
		"aire":         {Codigo: "6I-0273", Descripcion: "Filtro de Aire"},
		"hidraulico":   {Codigo: "1R-0777", Descripcion: "Filtro Hidráulico"},
	},
	"420F": {
		"aceite_motor": {Codigo: "7W-2326", Descripcion: "Filtro de Aceite Motor"},
		"combustible":  {Codigo: "1R-0749", Descripcion: "Filtro de Combustible"},
		"transmision":  {Codigo: "3T-0434", Descripcion: "Filtro de Transmisión"},
		"aire":         {Codigo: "6I-0273", Descripcion: "Filtro de Aire Primario"},
		"hidraulico":   {Codigo: "1G-8878", Descripcion: "Filtro Hidráulico"},
	},
	"D6TXL": {
		"aceite_motor": {Codigo: "1R-0739", Descripcion: "Filtro de Aceite Motor"},
		"combustible":  {Codigo: "1R-0750", Descripcion: "Filtro de Combustible"},
		"transmision":  {Codigo: "1R-0719", Descripcion: "Filtro de Transmisión"},
		"aire":         {Codigo: "142-1339", Descripcion: "Filtro de Aire Primario"},
		"hidraulico":   {Codigo: "5I-8670", Descripcion: "Filtro Hidráulico"},
	},
}

// FiltrosDeModelo looks up the catalogue case-insensitively. Unknown
// models return an empty map, not nil.
func FiltrosDeModelo(modelo string) map[string]Filtro {
	m := strings.ToUpper(strings.TrimSpace(modelo))
	if filtros, ok := FiltrosPorModelo[m]; ok {
		return filtros
	}
	return map[string]Filtro{}
}
