package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt32(t *testing.T) {
	tests := []struct {
		name   string
		val    any
		want   int32
		wantOK bool
	}{
		{name: "float whole", val: float64(-3), want: -3, wantOK: true},
		{name: "float fraction", val: 1.5, wantOK: false},
		{name: "float infinite", val: math.Inf(1), wantOK: false},
		{name: "float overflow", val: float64(1 << 40), wantOK: false},
		{name: "float max", val: float64(math.MaxInt32), want: math.MaxInt32, wantOK: true},
		{name: "string", val: " 12 ", want: 12, wantOK: true},
		{name: "string overflow", val: "4294967296", wantOK: false},
		{name: "int", val: 100, wantOK: false},
		{name: "garbage", val: "fx", wantOK: false},
		{name: "bool", val: true, wantOK: false},
		{name: "nil", val: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToInt32(tt.val)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
