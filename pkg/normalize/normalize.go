// Package normalize canonicaliza nombres de equipos y medicamentos para usarlos
// como llave de cruce entre almacén, unidades y estándares.
//
// La llave se deriva solo de [a-z0-9_]: cualquier otro carácter, acentos
// incluidos, cuenta como separador. Ejemplos: "Angio #20" → "angio_20",
// "ANGIO 20" → "angio_20", "Inmovilización" → "inmovilizaci_n".
package normalize

import "strings"

// Name devuelve la forma canónica de un nombre: minúsculas, toda corrida de
// caracteres fuera de [a-z0-9_] colapsada a un solo '_', sin '_' al inicio ni
// al final. Es pura, determinista e idempotente; entrada vacía devuelve
// cadena vacía.
func Name(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	lastUnderscore := false
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_':
			if r == '_' {
				if lastUnderscore {
					continue
				}
				lastUnderscore = true
			} else {
				lastUnderscore = false
			}
			b.WriteRune(r)
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}

// Equal compara dos nombres por su forma normalizada.
func Equal(a, b string) bool {
	return Name(a) == Name(b)
}
