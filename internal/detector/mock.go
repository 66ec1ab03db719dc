package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands  []Hand
	err    error
	calls  int
	closed bool
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []Hand) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]Hand, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Calls returns how many times Detect has been called.
func (m *MockDetector) Calls() int {
	return m.calls
}

// Closed reports whether Close has been called.
func (m *MockDetector) Closed() bool {
	return m.closed
}

// Close marks the mock as closed.
func (m *MockDetector) Close() error {
	m.closed = true
	return nil
}

// SyntheticHand returns a hand with the wrist and thumb tip at the given
// normalized positions. Remaining keypoints are spread between the two.
func SyntheticHand(wrist, thumbTip Point) Hand {
	var h Hand
	for i := 0; i < NumLandmarks; i++ {
		t := float64(i) / float64(NumLandmarks-1)
		h.Points[i] = Point{
			X: wrist.X + (thumbTip.X-wrist.X)*t,
			Y: wrist.Y - 0.2*t,
		}
	}
	h.Points[Wrist] = wrist
	h.Points[ThumbTip] = thumbTip
	return h
}

// LeftFacingHand returns a preset hand whose thumb tip lies to the right of
// the wrist in image space.
func LeftFacingHand() Hand {
	var h Hand

	h.Points[Wrist] = Point{X: 0.30, Y: 0.80}

	h.Points[ThumbCMC] = Point{X: 0.35, Y: 0.75}
	h.Points[ThumbMCP] = Point{X: 0.40, Y: 0.70}
	h.Points[ThumbIP] = Point{X: 0.44, Y: 0.65}
	h.Points[ThumbTip] = Point{X: 0.47, Y: 0.60}

	h.Points[IndexMCP] = Point{X: 0.36, Y: 0.62}
	h.Points[IndexPIP] = Point{X: 0.37, Y: 0.52}
	h.Points[IndexDIP] = Point{X: 0.38, Y: 0.45}
	h.Points[IndexTip] = Point{X: 0.38, Y: 0.38}

	h.Points[MiddleMCP] = Point{X: 0.31, Y: 0.61}
	h.Points[MiddlePIP] = Point{X: 0.31, Y: 0.49}
	h.Points[MiddleDIP] = Point{X: 0.31, Y: 0.41}
	h.Points[MiddleTip] = Point{X: 0.31, Y: 0.34}

	h.Points[RingMCP] = Point{X: 0.26, Y: 0.62}
	h.Points[RingPIP] = Point{X: 0.25, Y: 0.52}
	h.Points[RingDIP] = Point{X: 0.24, Y: 0.45}
	h.Points[RingTip] = Point{X: 0.24, Y: 0.39}

	h.Points[PinkyMCP] = Point{X: 0.22, Y: 0.65}
	h.Points[PinkyPIP] = Point{X: 0.20, Y: 0.58}
	h.Points[PinkyDIP] = Point{X: 0.19, Y: 0.53}
	h.Points[PinkyTip] = Point{X: 0.18, Y: 0.48}

	return h
}

// RightFacingHand returns LeftFacingHand mirrored around the vertical center
// line, so its thumb tip lies to the left of the wrist.
func RightFacingHand() Hand {
	h := LeftFacingHand()
	for i := range h.Points {
		h.Points[i].X = 1.0 - h.Points[i].X
	}
	return h
}
