package biztrack

import (
	"context"
	"sync"
	"sync/atomic"
)

// eventDispatcher fans session lifecycle events out to the configured sink
// from a single goroutine, so a slow sink cannot stall a login or a logout.
// The buffer is bounded; when full, events are dropped and counted.
type eventDispatcher struct {
	sink      EventSink
	ch        chan Event
	done      chan struct{}
	wg        sync.WaitGroup
	dropped   atomic.Uint64
	closed    atomic.Bool
	closeOnce sync.Once
}

func newEventDispatcher(sink EventSink, buffer int) *eventDispatcher {
	if sink == nil {
		return nil
	}
	if buffer <= 0 {
		buffer = 64
	}

	d := &eventDispatcher{
		sink: sink,
		ch:   make(chan Event, buffer),
		done: make(chan struct{}),
	}

	d.wg.Add(1)
	go d.run()

	return d
}

func (d *eventDispatcher) run() {
	defer d.wg.Done()

	for {
		select {
		case event := <-d.ch:
			d.sink.Emit(context.Background(), event)
		case <-d.done:
			// Drain whatever was queued before Close.
			for {
				select {
				case event := <-d.ch:
					d.sink.Emit(context.Background(), event)
				default:
					return
				}
			}
		}
	}
}

// emit enqueues without blocking; a full buffer drops the event.
func (d *eventDispatcher) emit(event Event) {
	if d == nil || d.closed.Load() {
		return
	}

	select {
	case d.ch <- event:
	case <-d.done:
	default:
		d.dropped.Add(1)
	}
}

// Dropped reports how many events were lost to a full buffer.
func (d *eventDispatcher) Dropped() uint64 {
	if d == nil {
		return 0
	}
	return d.dropped.Load()
}

// Close stops the dispatcher after draining queued events.
func (d *eventDispatcher) Close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() {
		d.closed.Store(true)
		close(d.done)
		d.wg.Wait()
	})
}
