package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadInt32(t *testing.T) {
	buf := []byte{0x2A, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}

	tests := []struct {
		name   string
		buf    []byte
		offset int64
		want   int32
	}{
		{name: "first word", buf: buf, offset: 0, want: 42},
		{name: "negative word", buf: buf, offset: 4, want: -1},
		{name: "unaligned", buf: buf, offset: 5, want: 0x01FFFFFF},
		{name: "one byte short", buf: buf, offset: 6, want: NoValue},
		{name: "past end", buf: buf, offset: 100, want: NoValue},
		{name: "negative offset", buf: buf, offset: -1, want: NoValue},
		{name: "empty buffer", buf: nil, offset: 0, want: NoValue},
		{name: "exactly four bytes", buf: []byte{1, 0, 0, 0}, offset: 0, want: 1},
		{name: "three bytes", buf: []byte{1, 0, 0}, offset: 0, want: NoValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadInt32(tt.buf, tt.offset))
		})
	}
}

func TestReadInt32_SentinelBoundary(t *testing.T) {
	// -1 iff len <= offset+3
	for length := 0; length < 12; length++ {
		buf := make([]byte, length)
		for i := range buf {
			buf[i] = byte(i + 1)
		}
		for offset := int64(0); offset < 12; offset++ {
			got := ReadInt32(buf, offset)
			if int64(length) <= offset+3 {
				assert.Equal(t, NoValue, got, "len=%d offset=%d", length, offset)
				continue
			}
			want := int32(buf[offset]) | int32(buf[offset+1])<<8 | int32(buf[offset+2])<<16 | int32(buf[offset+3])<<24
			assert.Equal(t, want, got, "len=%d offset=%d", length, offset)
		}
	}

	// Offsets from dump data can be arbitrarily large.
	buf := []byte{1, 2, 3, 4}
	for _, offset := range []int64{math.MaxInt64, math.MaxInt64 - 1, math.MaxInt64 - 3, math.MinInt64} {
		assert.NotPanics(t, func() {
			assert.Equal(t, NoValue, ReadInt32(buf, offset), "offset=%d", offset)
		})
	}
}

func TestReadInt32Endian(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x01, 0x2C, 0x00}

	assert.Equal(t, int32(300), ReadInt32Endian(buf, 0, true))
	assert.Equal(t, int32(0x2C010000), ReadInt32Endian(buf, 0, false))
	assert.Equal(t, NoValue, ReadInt32Endian(buf, 2, true))
}
