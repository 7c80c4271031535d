// Package reconcile classifies discovered effect identifiers against an
// expected reference list.
//
// A reconciliation run owns three sets:
//
//   - Unused: ids from the reference list that no scanned asset referenced (yet).
//   - Used: every referenced id, whether or not it was in the reference list.
//   - Extra: referenced ids that were never in the reference list.
//
// Unused starts as the reference list; Used and Extra start empty. Every
// discovered id is folded in with Sets.Record, which keeps the invariants
//
//	Unused ∩ Used = ∅
//	Extra ⊆ Used
//	Used = (Initial \ Unused) ∪ Extra
//
// regardless of the order or number of Record calls.
//
// # Concurrency
//
// Sets is not safe for concurrent use. Scanners running in parallel share a
// Recorder, which serializes Record calls behind a mutex, or build their own
// id sets and fold them in afterwards with RecordAll.
//
// # Usage
//
//	sets := reconcile.NewSets(referenceIDs)
//	for _, id := range discovered {
//	    sets.Record(id)
//	}
//	summary := sets.Summary()
package reconcile
