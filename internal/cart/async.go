package cart

import (
	"sync"

	"github.com/jacksmith/larder/internal/model"
)

// AsyncPersister hands writes to a background goroutine so Save never
// blocks on the backend. Pending writes for the same list are coalesced:
// only the latest contents are written.
type AsyncPersister struct {
	p *Persister

	mu      sync.Mutex
	pending map[List][]model.LineItem
	closed  bool

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
}

// NewAsyncPersister starts the background writer. Call Close to flush
// pending writes and stop it.
func NewAsyncPersister(p *Persister) *AsyncPersister {
	a := &AsyncPersister{
		p:       p,
		pending: make(map[List][]model.LineItem),
		wake:    make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go a.run()
	return a
}

// Save queues items for writing. Writes queued after Close are dropped.
func (a *AsyncPersister) Save(list List, items []model.LineItem) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		a.p.logger.Warn("write after close dropped")
		return
	}
	a.pending[list] = items
	a.mu.Unlock()

	select {
	case a.wake <- struct{}{}:
	default:
	}
}

// Attach hydrates s synchronously and registers a as its change hook.
func (a *AsyncPersister) Attach(s *Store) {
	a.p.Hydrate(s)
	s.OnChange(a.Save)
}

// Close writes anything still pending and stops the background goroutine.
// It is safe to call more than once.
func (a *AsyncPersister) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		<-a.done
		return nil
	}
	a.closed = true
	a.mu.Unlock()

	close(a.stop)
	<-a.done
	return nil
}

func (a *AsyncPersister) run() {
	defer close(a.done)
	for {
		select {
		case <-a.wake:
			a.flush()
		case <-a.stop:
			a.flush()
			return
		}
	}
}

func (a *AsyncPersister) flush() {
	a.mu.Lock()
	batch := a.pending
	a.pending = make(map[List][]model.LineItem)
	a.mu.Unlock()

	for _, list := range []List{ListCart, ListSaved} {
		if items, ok := batch[list]; ok {
			a.p.Save(list, items)
		}
	}
}
