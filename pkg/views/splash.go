package views

import (
	"sync"
	"time"
)

// Splash is the intro overlay state. It is visible from creation until delay
// has passed; Close stops the pending flip when the owner goes away first.
type Splash struct {
	mu       sync.Mutex
	visible  bool
	closed   bool
	deadline time.Time
	timer    *time.Timer
}

func NewSplash(delay time.Duration) *Splash {
	s := &Splash{
		visible:  delay > 0,
		deadline: time.Now().Add(delay),
	}
	if s.visible {
		s.timer = time.AfterFunc(delay, s.hide)
	}
	return s
}

func (s *Splash) hide() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.visible = false
}

func (s *Splash) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// Remaining is how long the overlay still has to stay up, 0 once hidden.
func (s *Splash) Remaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.visible {
		return 0
	}
	if d := time.Until(s.deadline); d > 0 {
		return d
	}
	return 0
}

func (s *Splash) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
}
