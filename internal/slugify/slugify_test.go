package slugify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"punctuation", "Hello, World!", "hello-world"},
		{"numbers", "Annual Report 2025", "annual-report-2025"},
		{"accents", "Café résumé", "cafe-resume"},
		{"multiple spaces", "Hello   World", "hello-world"},
		{"existing hyphens", "Hello - World", "hello-world"},
		{"surrounding whitespace", "  Hello World  ", "hello-world"},
		{"only punctuation", "!@#$%", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}
