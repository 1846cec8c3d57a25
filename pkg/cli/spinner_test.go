package cli

import "testing"

func TestSpinner_StopIdempotent(t *testing.T) {
	s := StartSpinner("working")

	// Stop must be safe to call repeatedly, including via defer after
	// an explicit stop.
	s.Stop()
	s.Stop()
}

func TestSpinner_SilentWhenNotTerminal(t *testing.T) {
	// Under the test harness stderr is a pipe, so the spinner must not
	// emit any frames.
	out := captureStderr(t, func() {
		s := StartSpinner("working")
		s.Stop()
	})

	if out != "" {
		t.Errorf("Spinner wrote to non-terminal stderr: %q", out)
	}
}
