package emevd

import (
	"fxr-query/core/reconcile"
	"fxr-query/core/utils"
)

// Overlay returns the parameter targeting exactly (index, targetOffset).
func (e *Event) Overlay(index int, targetOffset int64) (Parameter, bool) {
	for _, p := range e.Parameters {
		if p.InstructionIndex == index && p.TargetStartByte == targetOffset {
			return p, true
		}
	}
	return Parameter{}, false
}

// ResolveArg returns the effective int32 argument at targetOffset of the
// instruction at index. With a parameter at exactly that offset the value is
// read from invokerArgs at paramBase+SourceStartByte; otherwise the
// instruction's own bytes are read.
func (e *Event) ResolveArg(index int, targetOffset int64, invokerArgs []byte, paramBase int64) int32 {
	if p, ok := e.Overlay(index, targetOffset); ok {
		return utils.ReadInt32(invokerArgs, paramBase+p.SourceStartByte)
	}
	if index < 0 || index >= len(e.Instructions) {
		return utils.NoValue
	}
	return utils.ReadInt32(e.Instructions[index].Args, targetOffset)
}

// NestedReferences collects effect ids of events started from initializer.
//
// Every instruction of initializer matching invoke is an initializer call.
// The started event id is read at eventIDOffset of its arguments and looked
// up in target; unknown ids are skipped. Effect ids inside the started
// event are resolved with ResolveArg against the initializer call's
// arguments, with parameters starting at paramBase.
func NestedReferences(initializer, target *Script, invoke Opcode, eventIDOffset, paramBase int64) reconcile.IDSet {
	ids := make(reconcile.IDSet)
	if initializer == nil || target == nil {
		return ids
	}

	for ei := range initializer.Events {
		for _, call := range initializer.Events[ei].Instructions {
			if call.Opcode() != invoke {
				continue
			}
			ev := target.Event(int64(utils.ReadInt32(call.Args, eventIDOffset)))
			if ev == nil {
				continue
			}
			for index, ins := range ev.Instructions {
				op, ok := ins.AsSFX()
				if !ok {
					continue
				}
				if id := ev.ResolveArg(index, op.IDOffset(), call.Args, paramBase); id > 0 {
					ids.Add(id)
				}
			}
		}
	}

	return ids
}

// LooseReferences collects effect ids of one event read literally.
// Parameters are never consulted, so a parameterized id field yields
// whatever placeholder bytes the instruction carries.
func LooseReferences(script *Script, eventID int64) reconcile.IDSet {
	ids := make(reconcile.IDSet)

	ev := script.Event(eventID)
	if ev == nil {
		return ids
	}
	for _, ins := range ev.Instructions {
		op, ok := ins.AsSFX()
		if !ok {
			continue
		}
		if id := utils.ReadInt32(ins.Args, op.IDOffset()); id > 0 {
			ids.Add(id)
		}
	}

	return ids
}
