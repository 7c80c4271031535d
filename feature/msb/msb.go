package msb

import (
	"fmt"

	"fxr-query/core/reconcile"
)

// Format names the scene layout a map was decoded from.
type Format string

const (
	// FormatMSB3 is the Dark Souls 3 scene layout.
	FormatMSB3 Format = "MSB3"
	// FormatMSBE is the Elden Ring scene layout.
	FormatMSBE Format = "MSBE"
)

// SFXRegion places one effect.
type SFXRegion struct {
	Name     string `json:"name"`
	EffectID int32  `json:"effect_id"`
}

// WindSFXRegion places one wind-driven effect.
type WindSFXRegion struct {
	Name     string `json:"name"`
	EffectID int32  `json:"effect_id"`
}

// Regions holds the effect-placing regions of a map.
type Regions struct {
	SFX     []SFXRegion     `json:"sfx"`
	WindSFX []WindSFXRegion `json:"wind_sfx"`
}

// Map is one decoded scene.
type Map struct {
	Format  Format  `json:"format"`
	Regions Regions `json:"regions"`
}

// Scan records every region effect id of m into sink and returns the number
// of regions visited. Maps in a format other than want are rejected.
func Scan(m *Map, want Format, sink reconcile.Sink) (int, error) {
	if m.Format != want {
		return 0, fmt.Errorf("unexpected scene format %q, want %q", m.Format, want)
	}
	for _, r := range m.Regions.SFX {
		sink.Record(r.EffectID)
	}
	for _, r := range m.Regions.WindSFX {
		sink.Record(r.EffectID)
	}
	return len(m.Regions.SFX) + len(m.Regions.WindSFX), nil
}
