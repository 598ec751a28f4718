package prompt

import (
	_ "embed"
	"strings"
)

//go:embed template/persona.txt
var personaRaw string

// Persona returns the trimmed assistant persona prompt. The embed is
// compile-time, so this is safe to call concurrently.
func Persona() string {
	return strings.TrimSpace(personaRaw)
}
