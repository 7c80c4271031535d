package reconcile

// IDSet is a set of effect identifiers.
type IDSet map[int32]struct{}

// NewIDSet builds a set from ids.
func NewIDSet(ids ...int32) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Has reports whether id is in the set.
func (s IDSet) Has(id int32) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id.
func (s IDSet) Add(id int32) {
	s[id] = struct{}{}
}

// Classification names the report bucket an id belongs to.
type Classification string

const (
	// ClassUnused marks reference ids that were never found.
	ClassUnused Classification = "unused"
	// ClassUsed marks every found id, including extras.
	ClassUsed Classification = "used"
	// ClassExtra marks found ids missing from the reference list.
	ClassExtra Classification = "extra"
)

// Classifications lists the buckets in report order.
var Classifications = []Classification{ClassUnused, ClassUsed, ClassExtra}

// Summary provides aggregate counts for a reconciliation run.
type Summary struct {
	// Reference is the size of the initial reference set.
	Reference int `json:"reference"`

	// Unused counts reference ids that were never referenced.
	Unused int `json:"unused"`

	// Used counts every referenced id (includes Extra).
	Used int `json:"used"`

	// Extra counts referenced ids absent from the reference list.
	Extra int `json:"extra"`
}

// Sink receives discovered ids. Sets and Recorder both satisfy it.
type Sink interface {
	Record(id int32)
}
