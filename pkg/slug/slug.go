// Package slug deriva identificadores estables a partir de nombres para
// mostrar: "Apple Inc.!" → "apple-inc". La derivación es determinista e
// idempotente (el slug de un slug es él mismo).
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Make convierte un nombre en un code apto para clave primaria y URL:
// minúsculas, se eliminan los literales '#' y '!', se pliegan los
// diacríticos a ASCII y cada corrida de caracteres no alfanuméricos se
// colapsa en un único guion, sin guiones en los bordes.
func Make(name string) string {
	s := strings.ToLower(name)
	s = strings.NewReplacer("#", "", "!", "").Replace(s)
	s = foldDiacritics(s)

	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

// foldDiacritics descompone (NFD), elimina las marcas combinantes y
// recompone, de modo que "Telefónica" aporta "telefonica" al slug.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
