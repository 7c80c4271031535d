package reconcile

import "sync"

// Recorder serializes Record calls from concurrent scanners onto one Sets.
type Recorder struct {
	mu   sync.Mutex
	sets *Sets
}

// NewRecorder wraps sets.
func NewRecorder(sets *Sets) *Recorder {
	return &Recorder{sets: sets}
}

// Record folds one id into the guarded sets.
func (r *Recorder) Record(id int32) {
	r.mu.Lock()
	r.sets.Record(id)
	r.mu.Unlock()
}

// RecordAll folds a whole set while holding the lock once.
func (r *Recorder) RecordAll(ids IDSet) {
	r.mu.Lock()
	r.sets.RecordAll(ids)
	r.mu.Unlock()
}

// Summary returns the current counts.
func (r *Recorder) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sets.Summary()
}

// Sets returns the guarded sets. Callers must not use it while scanners are
// still recording.
func (r *Recorder) Sets() *Sets {
	return r.sets
}
