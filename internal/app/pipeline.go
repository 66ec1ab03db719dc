package app

import (
	"errors"
	"fmt"

	"github.com/ayusman/palmtrace/internal/annotate"
	"github.com/ayusman/palmtrace/internal/capture"
	"github.com/ayusman/palmtrace/internal/display"
	"github.com/sirupsen/logrus"
)

// Run opens the camera and processes frames until the exit key is pressed
// or a frame cannot be read. Resources are released before Run returns,
// whichever way the loop ends, and a failed release is joined into the
// returned error. Fatal errors are logged here with the session fields.
//
// Per frame:
// 1. Read a BGR frame from the camera
// 2. Mirror it horizontally
// 3. Convert a copy to RGB and run hand detection on it
// 4. Annotate the mirrored BGR frame in place
// 5. Show it and poll the keyboard
func (s *Session) Run() (err error) {
	defer func() {
		if closeErr := s.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if err := s.camera.Open(); err != nil {
		s.state = StateTerminated
		s.log.WithError(err).Error("Cannot open camera")
		return err
	}

	s.state = StateRunning
	s.log.WithField("max_hands", s.config.MaxHands).Info("Capture started")

	for {
		exit, err := s.step()
		if err != nil {
			s.log.WithError(err).Error("Stopping capture")
			return err
		}
		if exit {
			s.log.Info("Exit key pressed")
			return nil
		}
	}
}

// step processes a single frame. It reports whether the exit key was pressed.
func (s *Session) step() (bool, error) {
	frame, err := s.camera.ReadFrame()
	if err != nil {
		return false, err
	}

	mirrored := capture.Mirror(frame)
	frame.Close()
	defer mirrored.Close()

	rgb := capture.ToRGB(&mirrored)
	hands, err := s.detector.Detect(&rgb)
	rgb.Close()
	if err != nil {
		return false, fmt.Errorf("detect hands: %w", err)
	}

	located := s.annotator.Annotate(annotate.NewMatCanvas(&mirrored), hands)
	s.frames++

	if len(located) > 0 {
		sides := make([]string, len(located))
		for i, h := range located {
			sides[i] = h.Side.String()
		}
		s.log.WithFields(logrus.Fields{
			"frame": s.frames,
			"hands": len(located),
			"sides": sides,
		}).Debug("Hands annotated")
	}

	s.display.Show(&mirrored)

	key := s.display.PollKey(s.config.KeyDelayMs)
	return display.IsExitKey(key, s.config.ExitKey), nil
}
