package detector

import (
	"errors"

	"gocv.io/x/gocv"
)

var (
	// ErrInvalidFrame is returned when a frame is empty or not a 3-channel image.
	ErrInvalidFrame = errors.New("invalid frame")

	// ErrMalformedHand is returned when the detector reports a hand without
	// exactly NumLandmarks keypoints.
	ErrMalformedHand = errors.New("malformed hand")

	// ErrScriptNotFound is returned when the landmark service script cannot be located.
	ErrScriptNotFound = errors.New("landmark_service.py not found")
)

// Detector defines the interface for hand detection implementations.
type Detector interface {
	// Detect analyzes an RGB frame and returns detected hands with
	// normalized keypoints. Returns an empty slice if no hands are detected.
	// No ordering between hands is guaranteed.
	Detect(frame *gocv.Mat) ([]Hand, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for hand detection.
type Config struct {
	// MaxHands is the maximum number of hands to detect (default: 2).
	MaxHands int

	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64

	// ScriptPath overrides the landmark service lookup when set.
	ScriptPath string

	// PythonPath overrides the interpreter lookup when set.
	PythonPath string
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MaxHands:        2,
		MinConfidence:   0.5,
		MinTrackingConf: 0.5,
	}
}
