package emevd

// SFXBank is the instruction bank holding effect emission instructions.
const SFXBank int32 = 2006

// SFXOpcode is one of the effect emission instructions of SFXBank.
type SFXOpcode int32

const (
	// OpSpawnOneshotSFX carries its effect id at byte 12.
	OpSpawnOneshotSFX SFXOpcode = 3
	// OpCreateObjectSFX carries its effect id at byte 8.
	OpCreateObjectSFX SFXOpcode = 4
	// OpCreateSFX carries its effect id at byte 0.
	OpCreateSFX SFXOpcode = 6
)

// IDOffset returns the byte offset of the effect id argument.
func (op SFXOpcode) IDOffset() int64 {
	switch op {
	case OpSpawnOneshotSFX:
		return 12
	case OpCreateObjectSFX:
		return 8
	default:
		return 0
	}
}

// AsSFX reports whether the instruction emits an effect.
func (i Instruction) AsSFX() (SFXOpcode, bool) {
	if i.Bank != SFXBank {
		return 0, false
	}
	switch op := SFXOpcode(i.ID); op {
	case OpSpawnOneshotSFX, OpCreateObjectSFX, OpCreateSFX:
		return op, true
	}
	return 0, false
}
