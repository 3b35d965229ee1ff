package services

import (
	"sync"
	"time"
)

// Clock abstracts wall-clock reads so timer-driven logic can be tested
// with fixed times
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real wall clock
func SystemClock() Clock { return systemClock{} }

// TaskID identifies a scheduled task for cancellation
type TaskID int

// Scheduler runs delayed and repeating tasks. Every task carries a cancel
// handle; Stop cancels everything outstanding. Callbacks run on their own
// goroutines in timer-scheduled order.
type Scheduler struct {
	mu      sync.Mutex
	nextID  TaskID
	cancels map[TaskID]func()
	stopped bool
}

// NewScheduler creates a new Scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{cancels: make(map[TaskID]func())}
}

// After runs fn once after d. The returned id cancels the task if it has
// not fired yet.
func (s *Scheduler) After(d time.Duration, fn func()) TaskID {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return 0
	}
	s.nextID++
	id := s.nextID

	timer := time.AfterFunc(d, func() {
		s.remove(id)
		fn()
	})
	s.cancels[id] = func() { timer.Stop() }
	return id
}

// Every runs fn repeatedly at interval d until cancelled
func (s *Scheduler) Every(d time.Duration, fn func()) TaskID {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return 0
	}
	s.nextID++
	id := s.nextID

	ticker := time.NewTicker(d)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	s.cancels[id] = func() {
		ticker.Stop()
		once.Do(func() { close(done) })
	}
	return id
}

// Cancel stops a task by id. Cancelling an unknown or finished id is a no-op.
func (s *Scheduler) Cancel(id TaskID) {
	s.mu.Lock()
	cancel, ok := s.cancels[id]
	delete(s.cancels, id)
	s.mu.Unlock()

	if ok {
		cancel()
	}
}

// Stop cancels all outstanding tasks and rejects new ones
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	cancels := s.cancels
	s.cancels = make(map[TaskID]func())
	s.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}

func (s *Scheduler) remove(id TaskID) {
	s.mu.Lock()
	delete(s.cancels, id)
	s.mu.Unlock()
}
