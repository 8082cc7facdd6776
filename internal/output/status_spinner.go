// internal/output/status_spinner.go
package output

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var statusSpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// StatusSpinner displays an animated spinner with a status message on a
// single terminal line. Thread-safe for concurrent updates.
type StatusSpinner struct {
	out      io.Writer
	interval time.Duration
	frameIdx int
	message  string
	stop     chan struct{}
	done     chan struct{}
	mu       sync.Mutex
	running  bool
}

// NewStatusSpinner creates a new StatusSpinner writing to stderr.
func NewStatusSpinner() *StatusSpinner {
	return NewStatusSpinnerTo(os.Stderr)
}

// NewStatusSpinnerTo creates a StatusSpinner writing to out.
func NewStatusSpinnerTo(out io.Writer) *StatusSpinner {
	return &StatusSpinner{out: out, interval: 100 * time.Millisecond}
}

// Start begins the spinner animation with the given message. Calling Start
// on a running spinner only replaces the message.
func (s *StatusSpinner) Start(message string) {
	s.mu.Lock()
	if s.running {
		s.message = message
		s.mu.Unlock()
		return
	}
	s.running = true
	s.message = message
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.mu.Unlock()

	s.render()

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		defer close(s.done)

		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				s.render()
			}
		}
	}()
}

// Update changes the spinner message.
func (s *StatusSpinner) Update(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
	s.render()
}

// Running reports whether the animation is active.
func (s *StatusSpinner) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Stop stops the spinner and clears the line. Safe to call when stopped.
func (s *StatusSpinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	s.mu.Unlock()

	<-s.done
	s.mu.Lock()
	fmt.Fprintf(s.out, "\r%80s\r", "") // Clear line
	s.mu.Unlock()
}

func (s *StatusSpinner) render() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	fmt.Fprintf(s.out, "\r%s %s          ", statusSpinnerFrames[s.frameIdx], s.message)
	s.frameIdx = (s.frameIdx + 1) % len(statusSpinnerFrames)
}
