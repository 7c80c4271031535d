package tae

import (
	"encoding/binary"
	"testing"

	"fxr-query/core/reconcile"

	"github.com/stretchr/testify/assert"
)

func le(words ...int32) []byte {
	buf := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(w))
	}
	return buf
}

func be(words ...int32) []byte {
	buf := make([]byte, 4*len(words))
	for i, w := range words {
		binary.BigEndian.PutUint32(buf[4*i:], uint32(w))
	}
	return buf
}

// collect is a Sink that keeps every id in call order.
type collect []int32

func (c *collect) Record(id int32) {
	*c = append(*c, id)
}

var darkSouls3 = EffectEvents{
	Types: []int32{95, 96, 99, 100, 101, 108, 110, 112, 114, 115, 116, 118, 119, 120, 121, 122},
	Multi: MultiEvent{Type: 120, Count: 3, Stride: 4},
}

func TestScan(t *testing.T) {
	tl := &Timeline{Animations: []Animation{
		{ID: 0, Events: []Event{
			{Type: 96, Params: le(1001, 5, 6)},
			{Type: 0, Params: le(9999)},
			{Type: 120, Params: le(2001, 2002, 2003, 2004)},
		}},
		{ID: 1, Events: []Event{
			{Type: 122, Params: le(3001)},
		}},
	}}

	var got collect
	matched := Scan(tl, darkSouls3, &got)

	assert.Equal(t, 3, matched)
	assert.Equal(t, collect{1001, 2001, 2002, 2003, 3001}, got)
}

func TestScan_BigEndian(t *testing.T) {
	tl := &Timeline{BigEndian: true, Animations: []Animation{{Events: []Event{
		{Type: 95, Params: be(300)},
		{Type: 120, Params: be(1, 2, 3)},
	}}}}

	var got collect
	Scan(tl, darkSouls3, &got)

	assert.Equal(t, collect{300, 1, 2, 3}, got)
}

func TestScan_ShortParamsYieldSentinel(t *testing.T) {
	tl := &Timeline{Animations: []Animation{{Events: []Event{
		{Type: 120, Params: le(7)},
		{Type: 96, Params: nil},
	}}}}

	var got collect
	Scan(tl, darkSouls3, &got)
	assert.Equal(t, collect{7, -1, -1, -1}, got)

	sets := reconcile.NewSets(reconcile.NewIDSet(7))
	Scan(tl, darkSouls3, sets)
	assert.Equal(t, reconcile.NewIDSet(7), sets.Used)
	assert.Empty(t, sets.Extra)
}

func TestEffectEvents_Offsets(t *testing.T) {
	assert.Equal(t, []int64{0, 4, 8}, darkSouls3.Offsets(120))
	assert.Equal(t, []int64{0}, darkSouls3.Offsets(96))
	assert.Equal(t, []int64{0}, EffectEvents{}.Offsets(0))
}

func TestScanBinder(t *testing.T) {
	b := &Binder{Timelines: []Timeline{
		{Name: "a00.tae", Animations: []Animation{{Events: []Event{{Type: 110, Params: le(11)}}}}},
		{Name: "a01.tae", Animations: []Animation{{Events: []Event{{Type: 104, Params: le(12)}}}}},
	}}

	var got collect
	assert.Equal(t, 1, ScanBinder(b, darkSouls3, &got))
	assert.Equal(t, collect{11}, got)
}
