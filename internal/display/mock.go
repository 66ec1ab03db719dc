package display

import (
	"gocv.io/x/gocv"
)

// Mock is a Sink for tests. It returns queued keys and keeps copies of the
// frames it was shown.
type Mock struct {
	keys   []int
	frames []gocv.Mat
	shown  int
	keep   bool
	closed bool
}

// NewMock creates a Mock. When keep is true, shown frames are cloned and
// retained until Release.
func NewMock(keep bool) *Mock {
	return &Mock{keep: keep}
}

// QueueKeys appends key codes returned by successive PollKey calls.
func (m *Mock) QueueKeys(keys ...int) {
	m.keys = append(m.keys, keys...)
}

func (m *Mock) Show(frame *gocv.Mat) {
	m.shown++
	if m.keep {
		m.frames = append(m.frames, frame.Clone())
	}
}

func (m *Mock) PollKey(delayMs int) int {
	if len(m.keys) == 0 {
		return NoKey
	}
	key := m.keys[0]
	m.keys = m.keys[1:]
	return key
}

// Shown returns the number of frames shown.
func (m *Mock) Shown() int {
	return m.shown
}

// Frames returns the retained frames. They stay valid after Close.
func (m *Mock) Frames() []gocv.Mat {
	return m.frames
}

// Closed reports whether Close has been called.
func (m *Mock) Closed() bool {
	return m.closed
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Release frees the retained frames.
func (m *Mock) Release() {
	for i := range m.frames {
		m.frames[i].Close()
	}
	m.frames = nil
}
