// Package view fans out invalidation of logical view paths after mutating
// operations, so cached or rendered listings are refreshed.
package view

import (
	"log"
	"sync"
)

type Notifier struct {
	mu   sync.Mutex
	subs []func(path string)
}

func NewNotifier() *Notifier { return &Notifier{} }

// Subscribe registers a callback invoked once per invalidated path.
func (n *Notifier) Subscribe(fn func(path string)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = append(n.subs, fn)
}

// Invalidate notifies subscribers. It never fails; a mutation must not be
// blocked by its view refresh.
func (n *Notifier) Invalidate(paths ...string) {
	n.mu.Lock()
	subs := append(([]func(string))(nil), n.subs...)
	n.mu.Unlock()

	for _, p := range paths {
		log.Printf("[views] invalidate %s", p)
		for _, fn := range subs {
			fn(p)
		}
	}
}
