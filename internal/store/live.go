// ABOUTME: Live query helper: re-runs a query whenever its tables change.
// ABOUTME: Delivery is eventually consistent; stale results are replaced.
package store

import "sync"

// LiveQuery re-evaluates a query function whenever a write touches one of
// the tables it subscribed to. The latest result is available on C; if the
// consumer lags, intermediate results are dropped in favor of fresh ones.
type LiveQuery[R any] struct {
	C chan R

	sub  *Subscription
	done chan struct{}
	once sync.Once
}

// Live runs the query once immediately and then again after every relevant
// write. Query errors go to onErr (which may be nil) and the previous result
// stands until a later run succeeds.
func Live[R any](bus *Bus, run func() (R, error), onErr func(error), tables ...string) *LiveQuery[R] {
	lq := &LiveQuery[R]{
		C:    make(chan R, 1),
		sub:  bus.Subscribe(tables...),
		done: make(chan struct{}),
	}

	go func() {
		lq.deliver(run, onErr)
		for {
			select {
			case _, ok := <-lq.sub.C:
				if !ok {
					return
				}
				lq.drain()
				lq.deliver(run, onErr)
			case <-lq.done:
				return
			}
		}
	}()

	return lq
}

// Close stops re-evaluation and releases the subscription.
func (lq *LiveQuery[R]) Close() {
	lq.once.Do(func() {
		close(lq.done)
		lq.sub.Close()
	})
}

// drain coalesces bursts of events into a single re-query.
func (lq *LiveQuery[R]) drain() {
	for {
		select {
		case <-lq.sub.C:
		default:
			return
		}
	}
}

func (lq *LiveQuery[R]) deliver(run func() (R, error), onErr func(error)) {
	result, err := run()
	if err != nil {
		if onErr != nil {
			onErr(err)
		}
		return
	}
	// Replace a stale undelivered result rather than blocking.
	select {
	case <-lq.C:
	default:
	}
	select {
	case lq.C <- result:
	default:
	}
}
