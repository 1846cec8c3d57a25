package cli

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// Spinner animates a progress indicator on stderr while a long request
// is in flight. When stderr is not a terminal the spinner stays silent,
// keeping piped diagnostics clean.
type Spinner struct {
	message string
	active  bool
	once    sync.Once
	done    chan struct{}
	cleared chan struct{}
}

// StartSpinner starts a spinner with the given message.
func StartSpinner(message string) *Spinner {
	s := &Spinner{
		message: message,
		active:  isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()),
		done:    make(chan struct{}),
		cleared: make(chan struct{}),
	}
	if !s.active {
		close(s.cleared)
		return s
	}
	go s.run()
	return s
}

func (s *Spinner) run() {
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()
	defer close(s.cleared)

	for i := 0; ; i++ {
		select {
		case <-s.done:
			fmt.Fprint(os.Stderr, "\r\033[K")
			return
		case <-ticker.C:
			frame := styles.Success.Render(spinnerFrames[i%len(spinnerFrames)])
			fmt.Fprintf(os.Stderr, "\r%s %s", frame, s.message)
		}
	}
}

// Stop halts the animation and clears the spinner line. Safe to call
// more than once.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		if s.active {
			close(s.done)
		}
	})
	<-s.cleared
}
