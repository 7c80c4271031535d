package reconcile

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder_ConcurrentMatchesSequential(t *testing.T) {
	initial := NewIDSet(1, 2, 3, 4, 5, 6, 7, 8)

	sequential := NewSets(initial)
	rec := NewRecorder(NewSets(initial))

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		ids := make([]int32, 0, 200)
		for i := 0; i < 200; i++ {
			ids = append(ids, int32((worker*31+i*7)%50-3))
		}
		for _, id := range ids {
			sequential.Record(id)
		}

		wg.Add(1)
		go func(ids []int32) {
			defer wg.Done()
			for _, id := range ids {
				rec.Record(id)
			}
		}(ids)
	}
	wg.Wait()

	assert.Equal(t, sequential.Unused, rec.Sets().Unused)
	assert.Equal(t, sequential.Used, rec.Sets().Used)
	assert.Equal(t, sequential.Extra, rec.Sets().Extra)
	assert.Equal(t, sequential.Summary(), rec.Summary())
}

func TestRecorder_RecordAll(t *testing.T) {
	rec := NewRecorder(NewSets(NewIDSet(10)))
	rec.RecordAll(NewIDSet(10, 11))

	assert.Equal(t, Summary{Reference: 1, Unused: 0, Used: 2, Extra: 1}, rec.Summary())
}
