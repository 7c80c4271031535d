package tae

import (
	"fxr-query/core/reconcile"
	"fxr-query/core/utils"
)

// Event is one decoded timeline event.
type Event struct {
	Type   int32   `json:"type"`
	Start  float32 `json:"start"`
	End    float32 `json:"end"`
	Params []byte  `json:"params"`
}

// Animation is a list of events.
type Animation struct {
	ID     int64   `json:"id"`
	Events []Event `json:"events"`
}

// Timeline is one decoded TAE file.
type Timeline struct {
	Name       string      `json:"name"`
	BigEndian  bool        `json:"big_endian"`
	Animations []Animation `json:"animations"`
}

// Binder is a decoded animation binder holding several timelines.
type Binder struct {
	Timelines []Timeline `json:"timelines"`
}

// MultiEvent describes the event type that carries several ids.
type MultiEvent struct {
	Type   int32 `yaml:"type"`
	Count  int   `yaml:"count"`
	Stride int64 `yaml:"stride"`
}

// EffectEvents is the per-game set of effect-spawning event types.
type EffectEvents struct {
	Types []int32    `yaml:"types"`
	Multi MultiEvent `yaml:"multi"`
}

// Has reports whether typ spawns effects.
func (fx EffectEvents) Has(typ int32) bool {
	for _, t := range fx.Types {
		if t == typ {
			return true
		}
	}
	return false
}

// Offsets returns the parameter offsets holding effect ids for typ.
func (fx EffectEvents) Offsets(typ int32) []int64 {
	if typ == fx.Multi.Type && fx.Multi.Count > 0 {
		offsets := make([]int64, fx.Multi.Count)
		for i := range offsets {
			offsets[i] = int64(i) * fx.Multi.Stride
		}
		return offsets
	}
	return []int64{0}
}

// Scan records the effect ids of every matching event of tl into sink and
// returns the number of matching events.
func Scan(tl *Timeline, fx EffectEvents, sink reconcile.Sink) int {
	matched := 0
	for _, anim := range tl.Animations {
		for _, ev := range anim.Events {
			if !fx.Has(ev.Type) {
				continue
			}
			matched++
			for _, offset := range fx.Offsets(ev.Type) {
				sink.Record(utils.ReadInt32Endian(ev.Params, offset, tl.BigEndian))
			}
		}
	}
	return matched
}

// ScanBinder scans every timeline of a binder.
func ScanBinder(b *Binder, fx EffectEvents, sink reconcile.Sink) int {
	matched := 0
	for i := range b.Timelines {
		matched += Scan(&b.Timelines[i], fx, sink)
	}
	return matched
}
