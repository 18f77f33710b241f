// Package observer implements the fan-out broadcaster described in spec
// §4.5: arbitrary subscribers are notified of every record in attach
// order, with copy-on-read snapshotting so Notify tolerates concurrent
// Attach/Detach without holding a lock across user callbacks.
package observer

import (
	"log/slog"
	"sync"

	"nrgchamp/sensormon/internal/record"
)

// Observer receives every record the coordinator processes.
type Observer interface {
	OnRecord(r record.Record)
}

// Broadcaster fans records out to attached observers sequentially, in
// attach order. An observer that panics is logged and skipped; it never
// aborts delivery to the remaining observers (spec §7 ObserverFailure).
type Broadcaster struct {
	mu        sync.RWMutex
	observers []Observer
	lg        *slog.Logger
}

// New returns an empty Broadcaster.
func New(lg *slog.Logger) *Broadcaster {
	if lg == nil {
		lg = slog.Default()
	}
	return &Broadcaster{lg: lg}
}

// Attach registers obs if it isn't already attached (set-like de-dup by
// identity).
func (b *Broadcaster) Attach(obs Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, o := range b.observers {
		if o == obs {
			return
		}
	}
	b.observers = append(b.observers, obs)
}

// Detach removes obs if present.
func (b *Broadcaster) Detach(obs Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, o := range b.observers {
		if o == obs {
			b.observers = append(b.observers[:i], b.observers[i+1:]...)
			return
		}
	}
}

// Notify invokes every attached observer, in attach order, with a
// copy-on-read snapshot taken at entry so Attach/Detach from another
// goroutine never races with in-flight delivery.
func (b *Broadcaster) Notify(r record.Record) {
	b.mu.RLock()
	snapshot := make([]Observer, len(b.observers))
	copy(snapshot, b.observers)
	b.mu.RUnlock()

	for _, obs := range snapshot {
		b.safeNotify(obs, r)
	}
}

func (b *Broadcaster) safeNotify(obs Observer, r record.Record) {
	defer func() {
		if rec := recover(); rec != nil {
			b.lg.Error("observer panicked", "panic", rec)
		}
	}()
	obs.OnRecord(r)
}
