package service

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodePrefix(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Salão de Festas", "SALAO"},
		{"Churrasqueira", "CHURRASQUEIRA"},
		{"Academia", "ACADEMIA"},
		{"Espaço Gourmet", "ESPACO"},
		{"quadra poliesportiva", "QUADRA"},
		{"", "RESERVA"},
		{"123", "RESERVA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codePrefix(tt.name))
		})
	}
}

func TestGenerateConfirmationCode(t *testing.T) {
	pattern := regexp.MustCompile(`^SALAO-[A-Z2-9]{4}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := generateConfirmationCode("Salão de Festas")
		assert.Regexp(t, pattern, code)
		// Ambiguous characters never appear in the suffix.
		suffix := strings.TrimPrefix(code, "SALAO-")
		assert.NotContains(t, suffix, "O")
		assert.NotContains(t, suffix, "I")
		assert.NotContains(t, suffix, "0")
		assert.NotContains(t, suffix, "1")
		seen[code] = true
	}
	// 50 draws over a 32^4 space should not all collide.
	assert.Greater(t, len(seen), 1)
}
