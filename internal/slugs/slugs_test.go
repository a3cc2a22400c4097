package slugs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake_Normalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"punctuation runs collapse", "Hello,   World!!!", "hello-world"},
		{"leading and trailing separators stripped", "  --Hello World--  ", "hello-world"},
		{"mixed case", "GoLang Tips & Tricks", "golang-tips-and-tricks"},
		{"unicode transliterated", "Café au lait", "cafe-au-lait"},
		{"numbers preserved", "Top 10 Posts of 2025", "top-10-posts-of-2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestMake_Deterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Make("Stable Input"), Make("Stable Input"))
}

func TestMake_ChangesWithSource(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, Make("Original Title"), Make("Renamed Title"))
}
