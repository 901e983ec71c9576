package discovery

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer(t *testing.T) {
	t.Run("Coalesces Per Path", func(t *testing.T) {
		d := newDebouncer(30 * time.Millisecond)
		var mu sync.Mutex
		var got []Event
		fire := func(e Event) {
			mu.Lock()
			got = append(got, e)
			mu.Unlock()
		}

		d.add(Event{Type: EventCreate, Path: "a.jpg"}, fire)
		d.add(Event{Type: EventModify, Path: "a.jpg"}, fire)
		d.add(Event{Type: EventModify, Path: "b.jpg"}, fire)

		assert.Eventually(t, func() bool {
			mu.Lock()
			defer mu.Unlock()
			return len(got) == 2
		}, 2*time.Second, 10*time.Millisecond)

		mu.Lock()
		defer mu.Unlock()
		for _, e := range got {
			if e.Path == "a.jpg" {
				assert.Equal(t, EventCreate, e.Type)
			}
		}
	})

	t.Run("Stop Drops Pending", func(t *testing.T) {
		d := newDebouncer(time.Hour)
		fired := false
		d.add(Event{Type: EventCreate, Path: "a.jpg"}, func(Event) { fired = true })

		assert.True(t, d.stopAndWait(time.Second))
		d.add(Event{Type: EventCreate, Path: "b.jpg"}, func(Event) { fired = true })
		assert.False(t, fired)
	})
}
