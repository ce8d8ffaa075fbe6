package recurso

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// plegar normaliza una cadena para búsqueda: minúsculas y sin tildes
// (NFD, remoción de marcas combinantes, NFC). Los nombres del dominio vienen
// en español, así que "Pérez" debe coincidir con "perez".
func plegar(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Coincide evalúa una búsqueda por subcadena insensible a mayúsculas y tildes
// sobre los campos indicados. Un término vacío coincide siempre: la lista
// completa se devuelve sin alterar su orden.
func Coincide(termino string, campos ...string) bool {
	t := plegar(strings.TrimSpace(termino))
	if t == "" {
		return true
	}
	for _, c := range campos {
		if strings.Contains(plegar(c), t) {
			return true
		}
	}
	return false
}
