package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		want       int
		wantStderr bool
	}{
		{"no error", nil, 0, false},
		{"not confirmed exits silently", errNotConfirmed, 1, false},
		{"wrapped not confirmed exits silently", fmt.Errorf("confirm: %w", errNotConfirmed), 1, false},
		{"other errors are reported", errors.New("boom"), 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var stderr bytes.Buffer

			if got := exitCode(&stderr, tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
			if gotStderr := stderr.Len() > 0; gotStderr != tt.wantStderr {
				t.Errorf("stderr output = %q, want output: %v", stderr.String(), tt.wantStderr)
			}
		})
	}
}
