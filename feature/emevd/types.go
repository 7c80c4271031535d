package emevd

// Opcode identifies an instruction by bank and id.
type Opcode struct {
	Bank int32 `json:"bank" yaml:"bank"`
	ID   int32 `json:"id" yaml:"id"`
}

// Instruction is one decoded instruction. Its position is its index in the
// owning Event.
type Instruction struct {
	Bank int32  `json:"bank"`
	ID   int32  `json:"id"`
	Args []byte `json:"args"`
}

// Opcode returns the instruction's bank and id.
func (i Instruction) Opcode() Opcode {
	return Opcode{Bank: i.Bank, ID: i.ID}
}

// Parameter redirects the four bytes at TargetStartByte of instruction
// InstructionIndex to SourceStartByte of the initializer's parameter block.
type Parameter struct {
	InstructionIndex int   `json:"instruction_index"`
	SourceStartByte  int64 `json:"source_start_byte"`
	TargetStartByte  int64 `json:"target_start_byte"`
	ByteCount        int   `json:"byte_count"`
}

// Event is an ordered instruction list with its parameters.
type Event struct {
	ID           int64         `json:"id"`
	Instructions []Instruction `json:"instructions"`
	Parameters   []Parameter   `json:"parameters"`
}

// Script is one decoded event script.
type Script struct {
	Name   string  `json:"name"`
	Events []Event `json:"events"`
}

// Event returns the first event with the given id, or nil.
func (s *Script) Event(id int64) *Event {
	if s == nil {
		return nil
	}
	for i := range s.Events {
		if s.Events[i].ID == id {
			return &s.Events[i]
		}
	}
	return nil
}
