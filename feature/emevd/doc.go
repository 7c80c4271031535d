// Package emevd extracts effect ids from decoded event scripts.
//
// An event script maps event ids to events. Each event is an ordered list of
// instructions plus a list of parameters. A parameter says that four bytes
// of one instruction's arguments are not authoritative: the real value is
// copied from the arguments of whichever instruction initialized the event.
//
// Two extraction paths exist and they are deliberately different:
//
//   - NestedReferences follows initializer instructions into the events they
//     start and resolves parameters against the initializer's arguments.
//   - LooseReferences reads an event directly and never consults parameters.
//
// Neither path returns errors. Short argument buffers, unknown event ids and
// missing parameters all degrade to "no id contributed".
package emevd
