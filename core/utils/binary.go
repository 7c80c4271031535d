package utils

import "encoding/binary"

// NoValue is returned by the bounded readers when the buffer does not hold
// four bytes at the requested offset.
const NoValue int32 = -1

// ReadInt32 reads a little-endian int32 at offset.
// A short buffer or a negative offset yields NoValue instead of an error.
func ReadInt32(buf []byte, offset int64) int32 {
	return ReadInt32Endian(buf, offset, false)
}

// ReadInt32Endian is ReadInt32 with a selectable byte order. Only timeline
// parameters can be big-endian.
func ReadInt32Endian(buf []byte, offset int64, bigEndian bool) int32 {
	if offset < 0 || offset > int64(len(buf))-4 {
		return NoValue
	}
	word := buf[offset : offset+4]
	if bigEndian {
		return int32(binary.BigEndian.Uint32(word))
	}
	return int32(binary.LittleEndian.Uint32(word))
}
