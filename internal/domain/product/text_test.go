package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Classic Tee", want: "classic tee"},
		{in: "  Áo   Thun  Đẹp ", want: "ao thun dep"},
		{in: "Crème Brûlée", want: "creme brulee"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Classic Tee", want: "classic-tee"},
		{in: "Áo Thun Đẹp!", want: "ao-thun-dep"},
		{in: "  100% Cotton -- Shirt ", want: "100-cotton-shirt"},
		{in: "???", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.in))
		})
	}
}
