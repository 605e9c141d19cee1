package processor

import "context"

// slots bounds how many transcriptions run at once.
type slots struct {
	ch chan struct{}
}

// newSlots returns a limiter with n slots, at least one.
func newSlots(n int) *slots {
	if n <= 0 {
		n = 1
	}
	return &slots{ch: make(chan struct{}, n)}
}

// acquire blocks until a slot is free or ctx is done. The returned func
// gives the slot back and must be called exactly once.
func (s *slots) acquire(ctx context.Context) (func(), error) {
	select {
	case s.ch <- struct{}{}:
		return func() { <-s.ch }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// busy reports whether every slot is taken.
func (s *slots) busy() bool {
	return len(s.ch) == cap(s.ch)
}
