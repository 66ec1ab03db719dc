package main

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/ayusman/palmtrace/internal/capture"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestRootCmd_Flags(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cmd := newRootCmd(logger)

	flag := cmd.Flags().Lookup("max-hands")
	if flag == nil {
		t.Fatal("expected --max-hands flag")
	}
	if flag.DefValue != "2" {
		t.Errorf("--max-hands default = %s, want 2", flag.DefValue)
	}

	if err := cmd.Flags().Parse([]string{"--max-hands", "1"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if flag.Value.String() != "1" {
		t.Errorf("--max-hands = %s, want 1", flag.Value.String())
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cmd := newRootCmd(logger)
	if err := cmd.Args(cmd, []string{"extra"}); err == nil {
		t.Error("expected positional arguments to be rejected")
	}
}

func TestReport(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantLogs int
	}{
		{
			name:     "session error already logged",
			err:      fmt.Errorf("%w: %w", errSessionFailed, capture.ErrDeviceUnavailable),
			wantLogs: 0,
		},
		{
			name:     "command error",
			err:      errors.New(`unknown flag: --bogus`),
			wantLogs: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()

			report(logger, tt.err)

			if n := len(hook.AllEntries()); n != tt.wantLogs {
				t.Errorf("logged %d entries, want %d", n, tt.wantLogs)
			}
		})
	}
}

func TestSessionErrorKeepsCause(t *testing.T) {
	err := fmt.Errorf("%w: %w", errSessionFailed, capture.ErrReadFailure)

	if !errors.Is(err, capture.ErrReadFailure) {
		t.Errorf("wrapped error %v lost its cause", err)
	}
}
