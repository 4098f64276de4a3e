package service

import (
	"crypto/rand"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// generateConfirmationCode builds a booking reference in the
// "SALAO-A7B2" format: the environment's first word, uppercased and
// stripped to plain letters, plus a random suffix.
func generateConfirmationCode(environmentName string) string {
	prefix := codePrefix(environmentName)

	bytes := make([]byte, 4)
	if _, err := rand.Read(bytes); err != nil {
		return prefix + "-" + strings.ToUpper(uuid.New().String()[:4])
	}
	suffix := make([]byte, len(bytes))
	for i, b := range bytes {
		suffix[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return prefix + "-" + string(suffix)
}

func codePrefix(name string) string {
	first := name
	if i := strings.IndexRune(name, ' '); i > 0 {
		first = name[:i]
	}
	var sb strings.Builder
	for _, r := range strings.ToUpper(first) {
		switch {
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r)
		case unicode.IsLetter(r):
			// Accented letters fold to their base form (Ç -> C).
			if folded, ok := foldLetter(r); ok {
				sb.WriteRune(folded)
			}
		}
	}
	if sb.Len() == 0 {
		return "RESERVA"
	}
	return sb.String()
}

func foldLetter(r rune) (rune, bool) {
	switch r {
	case 'Á', 'À', 'Â', 'Ã', 'Ä':
		return 'A', true
	case 'É', 'È', 'Ê', 'Ë':
		return 'E', true
	case 'Í', 'Ì', 'Î', 'Ï':
		return 'I', true
	case 'Ó', 'Ò', 'Ô', 'Õ', 'Ö':
		return 'O', true
	case 'Ú', 'Ù', 'Û', 'Ü':
		return 'U', true
	case 'Ç':
		return 'C', true
	}
	return 0, false
}
