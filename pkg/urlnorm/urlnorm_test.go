package urlnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare host", "shopee.vn/x", "https://shopee.vn/x"},
		{"https untouched", "https://example.com", "https://example.com"},
		{"http untouched", "http://example.com", "http://example.com"},
		{"host with path and query", "example.com/a?b=c", "https://example.com/a?b=c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	once := Normalize("shopee.vn/x")
	twice := Normalize(once)

	assert.Equal(t, once, twice, "normalizing twice must never double-prefix")
}
