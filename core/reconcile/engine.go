package reconcile

import "sort"

// Sets holds the three reconciliation sets of one run.
type Sets struct {
	Unused IDSet
	Used   IDSet
	Extra  IDSet

	reference int
}

// NewSets starts a run from the reference ids. Non-positive ids are dropped,
// they can never be confirmed by Record.
func NewSets(reference IDSet) *Sets {
	unused := make(IDSet, len(reference))
	for id := range reference {
		if id > 0 {
			unused.Add(id)
		}
	}
	return &Sets{
		Unused:    unused,
		Used:      make(IDSet),
		Extra:     make(IDSet),
		reference: len(unused),
	}
}

// Record folds one discovered id into the sets.
//
//   - id <= 0 is the "no reference" sentinel and is ignored.
//   - An id still in Unused moves to Used.
//   - An id seen for the first time outside the reference list goes to Used and Extra.
//   - An id already in Used is ignored.
func (s *Sets) Record(id int32) {
	if id <= 0 {
		return
	}
	if s.Unused.Has(id) {
		delete(s.Unused, id)
		s.Used.Add(id)
		return
	}
	if !s.Used.Has(id) {
		s.Used.Add(id)
		s.Extra.Add(id)
	}
}

// RecordAll records every id of a set.
func (s *Sets) RecordAll(ids IDSet) {
	for id := range ids {
		s.Record(id)
	}
}

// Summary returns the current counts.
func (s *Sets) Summary() Summary {
	return Summary{
		Reference: s.reference,
		Unused:    len(s.Unused),
		Used:      len(s.Used),
		Extra:     len(s.Extra),
	}
}

// Sorted returns the ids of one bucket in ascending order.
func (s *Sets) Sorted(class Classification) []int32 {
	var set IDSet
	switch class {
	case ClassUnused:
		set = s.Unused
	case ClassUsed:
		set = s.Used
	case ClassExtra:
		set = s.Extra
	}
	return SortedIDs(set)
}

// SortedIDs returns the ids of set in ascending order.
func SortedIDs(set IDSet) []int32 {
	ids := make([]int32, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})
	return ids
}
