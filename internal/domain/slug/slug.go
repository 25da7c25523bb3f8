// Package slug deriva el código de una empresa a partir de su nombre legible.
//
// El código resultante es URL-safe: minúsculas, sin tildes, con las rachas de
// caracteres no alfanuméricos colapsadas a un solo guion y sin guiones en los
// extremos. La derivación es determinista (sin aleatoriedad ni reloj); la
// unicidad del código la garantiza el store al insertar, no este paquete.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/biztime-api/internal/domain"
)

// Derive normaliza name a un código URL-safe.
// Devuelve domain.ErrInvalidInput si name está vacío o no contiene ningún
// carácter alfanumérico (el código derivado quedaría vacío).
func Derive(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", domain.ErrInvalidInput
	}

	// Descomponer (NFD) y eliminar marcas diacríticas: "Ñandú" -> "Nandu".
	// El transformer mantiene estado interno, se construye por llamada.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		// Cualquier otra runa separa: se colapsa la racha a un solo guion,
		// y solo si ya hay contenido (sin guion inicial ni final).
		pendingHyphen = true
	}

	code := b.String()
	if code == "" {
		return "", domain.ErrInvalidInput
	}
	return code, nil
}
