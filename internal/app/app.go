// Package app runs the capture, detection, annotation and display loop.
package app

import (
	"errors"
	"sync"

	"github.com/ayusman/palmtrace/internal/annotate"
	"github.com/ayusman/palmtrace/internal/capture"
	"github.com/ayusman/palmtrace/internal/detector"
	"github.com/ayusman/palmtrace/internal/display"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Defaults for a session.
const (
	DefaultWindowTitle = "Hand Detection"
	DefaultExitKey     = 'q'
	DefaultKeyDelayMs  = 1
)

// State is the lifecycle state of a Session.
type State int

const (
	StateInit State = iota
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Config holds configuration options for a session.
// Nil collaborators are replaced with the real implementations by New.
type Config struct {
	CameraID    int
	MaxHands    int
	WindowTitle string
	ExitKey     byte
	KeyDelayMs  int

	Camera   capture.Camera
	Detector detector.Detector
	Display  display.Sink
	Logger   logrus.FieldLogger
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		CameraID:    0,
		MaxHands:    detector.DefaultConfig().MaxHands,
		WindowTitle: DefaultWindowTitle,
		ExitKey:     DefaultExitKey,
		KeyDelayMs:  DefaultKeyDelayMs,
	}
}

// Session owns every resource used by one run of the loop.
type Session struct {
	id        string
	config    Config
	camera    capture.Camera
	detector  detector.Detector
	display   display.Sink
	annotator *annotate.Annotator
	log       *logrus.Entry

	state     State
	frames    int
	closeOnce sync.Once
	closeErr  error
}

// New creates a Session in the Init state.
func New(config Config) *Session {
	defaults := DefaultConfig()
	if config.MaxHands <= 0 {
		config.MaxHands = defaults.MaxHands
	}
	if config.WindowTitle == "" {
		config.WindowTitle = defaults.WindowTitle
	}
	if config.ExitKey == 0 {
		config.ExitKey = defaults.ExitKey
	}
	if config.KeyDelayMs <= 0 {
		config.KeyDelayMs = defaults.KeyDelayMs
	}

	var logger logrus.FieldLogger = logrus.StandardLogger()
	if config.Logger != nil {
		logger = config.Logger
	}

	s := &Session{
		id:        uuid.NewString(),
		config:    config,
		camera:    config.Camera,
		detector:  config.Detector,
		display:   config.Display,
		annotator: annotate.New(annotate.DefaultStyle()),
		state:     StateInit,
	}
	s.log = logger.WithFields(logrus.Fields{
		"session": s.id,
		"camera":  config.CameraID,
	})

	if s.camera == nil {
		s.camera = capture.NewCamera(config.CameraID)
	}

	if s.display == nil {
		s.display = display.NewWindow(config.WindowTitle)
	}

	// Try MediaPipe first, fall back to mock detector
	if s.detector == nil {
		detCfg := detector.DefaultConfig()
		detCfg.MaxHands = config.MaxHands
		if mp, err := detector.NewMediaPipeDetector(detCfg, s.log); err == nil {
			s.detector = mp
			s.log.Info("Using MediaPipe hand detection")
		} else {
			s.log.WithError(err).Warn("MediaPipe not available, frames will not be annotated")
			s.detector = detector.NewMockDetector()
		}
	}

	return s
}

// ID returns the session identifier used in log fields.
func (s *Session) ID() string {
	return s.id
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Frames returns the number of frames processed so far.
func (s *Session) Frames() int {
	return s.frames
}

// Close releases the camera, detector and window. It is safe to call more
// than once; resources are released only on the first call.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.state = StateTerminated

		var errs []error
		if err := s.camera.Close(); err != nil {
			s.log.WithError(err).Error("Error closing camera")
			errs = append(errs, err)
		}
		if err := s.detector.Close(); err != nil {
			s.log.WithError(err).Error("Error closing detector")
			errs = append(errs, err)
		}
		if err := s.display.Close(); err != nil {
			s.log.WithError(err).Error("Error closing window")
			errs = append(errs, err)
		}
		s.closeErr = errors.Join(errs...)

		s.log.WithField("frames", s.frames).Info("Session closed")
	})
	return s.closeErr
}
